package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelerp/backend/internal/domain/catalog"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// newRateRepository backs the repository with an in-memory sqlite database,
// which is enough for rate queries (no postgres-specific SQL on this path)
func newRateRepository(t *testing.T) *GormRateMasterRepository {
	t.Helper()
	db := newSqliteDB(t, &catalog.RateMaster{})
	return NewGormRateMasterRepository(db)
}

func publishRate(t *testing.T, repo *GormRateMasterRepository, shopID uuid.UUID, metal catalog.MetalType, purity string, price int64) *catalog.RateMaster {
	t.Helper()
	rate, err := catalog.NewRateMaster(shopID, metal, purity, decimal.NewFromInt(price))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), rate))
	return rate
}

func TestGormRateMasterRepository_FindActiveRate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ErrNotFound when no rate was ever published", func(t *testing.T) {
		repo := newRateRepository(t)

		_, err := repo.FindActiveRate(ctx, uuid.New(), catalog.MetalGold, "22K")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("publishing a new rate retires the previous one", func(t *testing.T) {
		repo := newRateRepository(t)
		shopID := uuid.New()

		old := publishRate(t, repo, shopID, catalog.MetalGold, "22K", 6000)
		require.NoError(t, repo.RetireActiveRates(ctx, shopID, catalog.MetalGold, "22K"))
		current := publishRate(t, repo, shopID, catalog.MetalGold, "22K", 6150)

		active, err := repo.FindActiveRate(ctx, shopID, catalog.MetalGold, "22K")
		require.NoError(t, err)
		assert.Equal(t, current.ID, active.ID)
		assert.True(t, active.PricePerGram.Equal(decimal.NewFromInt(6150)))

		retired, err := repo.FindByIDForShop(ctx, old.ID, shopID)
		require.NoError(t, err)
		assert.False(t, retired.IsActive)
		assert.NotNil(t, retired.RetiredAt)
	})

	t.Run("rates are scoped per shop and per metal and purity", func(t *testing.T) {
		repo := newRateRepository(t)
		shopA := uuid.New()
		shopB := uuid.New()

		publishRate(t, repo, shopA, catalog.MetalGold, "22K", 6000)
		publishRate(t, repo, shopA, catalog.MetalSilver, "925", 90)

		_, err := repo.FindActiveRate(ctx, shopB, catalog.MetalGold, "22K")
		assert.ErrorIs(t, err, shared.ErrNotFound)

		silver, err := repo.FindActiveRate(ctx, shopA, catalog.MetalSilver, "925")
		require.NoError(t, err)
		assert.True(t, silver.PricePerGram.Equal(decimal.NewFromInt(90)))
	})
}

func TestGormRateMasterRepository_FindHistoryForShop(t *testing.T) {
	ctx := context.Background()

	t.Run("lists every published rate newest first", func(t *testing.T) {
		repo := newRateRepository(t)
		shopID := uuid.New()

		first := publishRate(t, repo, shopID, catalog.MetalGold, "22K", 6000)
		require.NoError(t, repo.RetireActiveRates(ctx, shopID, catalog.MetalGold, "22K"))
		second, err := catalog.NewRateMaster(shopID, catalog.MetalGold, "22K", decimal.NewFromInt(6150))
		require.NoError(t, err)
		second.EffectiveFrom = first.EffectiveFrom.Add(time.Hour)
		require.NoError(t, repo.Save(ctx, second))

		history, err := repo.FindHistoryForShop(ctx, shopID, catalog.MetalGold, "22K", shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, second.ID, history[0].ID)
		assert.Equal(t, first.ID, history[1].ID)
	})
}
