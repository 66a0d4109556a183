package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewGormLogger(zap.New(core), level), logs
}

func TestGormLogger_Trace(t *testing.T) {
	stmt := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("failed queries carry the request and tenant from the context", func(t *testing.T) {
		log, logs := newObservedGormLogger(gormlogger.Error)
		ctx := WithShopID(WithRequestID(context.Background(), "req-42"), "shop-7")

		log.Trace(ctx, time.Now(), stmt, assert.AnError)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "query failed", entry.Message)
		fields := entry.ContextMap()
		assert.Equal(t, "req-42", fields["request_id"])
		assert.Equal(t, "shop-7", fields["shop_id"])
	})

	t.Run("record-not-found is not logged as a failure", func(t *testing.T) {
		log, logs := newObservedGormLogger(gormlogger.Error)

		log.Trace(context.Background(), time.Now(), stmt, gormlogger.ErrRecordNotFound)

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("slow queries are warned about", func(t *testing.T) {
		log, logs := newObservedGormLogger(gormlogger.Warn)

		log.Trace(context.Background(), time.Now().Add(-time.Second), stmt, nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "slow query", logs.All()[0].Message)
	})

	t.Run("silent level suppresses everything", func(t *testing.T) {
		log, logs := newObservedGormLogger(gormlogger.Silent)

		log.Trace(context.Background(), time.Now(), stmt, assert.AnError)

		assert.Equal(t, 0, logs.Len())
	})
}

func TestContextStamps(t *testing.T) {
	t.Run("values round-trip and absent values read empty", func(t *testing.T) {
		ctx := context.Background()
		assert.Empty(t, RequestIDFrom(ctx))
		assert.Empty(t, ShopIDFrom(ctx))
		assert.Empty(t, UserIDFrom(ctx))

		ctx = WithUserID(WithShopID(WithRequestID(ctx, "r1"), "s1"), "u1")
		assert.Equal(t, "r1", RequestIDFrom(ctx))
		assert.Equal(t, "s1", ShopIDFrom(ctx))
		assert.Equal(t, "u1", UserIDFrom(ctx))
	})
}
