package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func createTestItem(t *testing.T) *StockItem {
	shopID := uuid.New()
	productID := uuid.New()
	item, err := NewStockItem(shopID, productID, "TAG-0001", "BC-0001", decimal.NewFromInt(100), time.Now())
	require.NoError(t, err)
	return item
}

// ============================================
// StockStatus Tests
// ============================================

func TestStockStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  StockStatus
		isValid bool
	}{
		{StockAvailable, true},
		{StockReserved, true},
		{StockSold, true},
		{StockStatus("INVALID"), false},
		{StockStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

// ============================================
// NewStockItem Tests
// ============================================

func TestNewStockItem(t *testing.T) {
	shopID := uuid.New()
	productID := uuid.New()

	t.Run("creates available item", func(t *testing.T) {
		item, err := NewStockItem(shopID, productID, "TAG-1", "BC-1", decimal.NewFromInt(250), time.Now())
		require.NoError(t, err)
		assert.Equal(t, StockAvailable, item.Status)
		assert.Equal(t, shopID, item.ShopID)
		assert.True(t, item.IsAvailable())
		assert.Nil(t, item.SaleDate)
	})

	t.Run("rejects empty tag", func(t *testing.T) {
		_, err := NewStockItem(shopID, productID, "", "BC-1", decimal.NewFromInt(250), time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects negative cost", func(t *testing.T) {
		_, err := NewStockItem(shopID, productID, "TAG-1", "BC-1", decimal.NewFromInt(-1), time.Now())
		assert.Error(t, err)
	})

	t.Run("defaults zero purchase date to now", func(t *testing.T) {
		item, err := NewStockItem(shopID, productID, "TAG-1", "BC-1", decimal.NewFromInt(250), time.Time{})
		require.NoError(t, err)
		assert.False(t, item.PurchaseDate.IsZero())
	})
}

// ============================================
// Transition Tests
// ============================================

func TestStockItem_Reserve(t *testing.T) {
	t.Run("reserves available item", func(t *testing.T) {
		item := createTestItem(t)
		orderID := uuid.New()
		require.NoError(t, item.Reserve(orderID))
		assert.Equal(t, StockReserved, item.Status)
		require.NotNil(t, item.SalesOrderID)
		assert.Equal(t, orderID, *item.SalesOrderID)
	})

	t.Run("rejects reserving a reserved item", func(t *testing.T) {
		item := createTestItem(t)
		require.NoError(t, item.Reserve(uuid.New()))
		err := item.Reserve(uuid.New())
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "STOCK_UNAVAILABLE", domainErr.Code)
		assert.Contains(t, domainErr.Message, "RESERVED")
	})

	t.Run("rejects reserving a sold item naming its status", func(t *testing.T) {
		item := createTestItem(t)
		require.NoError(t, item.MarkSold(uuid.New(), time.Now()))
		err := item.Reserve(uuid.New())
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "STOCK_UNAVAILABLE", domainErr.Code)
		assert.Contains(t, domainErr.Message, "SOLD")
	})
}

func TestStockItem_Release(t *testing.T) {
	t.Run("releases reserved item back to available", func(t *testing.T) {
		item := createTestItem(t)
		require.NoError(t, item.Reserve(uuid.New()))
		require.NoError(t, item.Release())
		assert.Equal(t, StockAvailable, item.Status)
		assert.Nil(t, item.SalesOrderID)
	})

	t.Run("rejects releasing an available item", func(t *testing.T) {
		item := createTestItem(t)
		assert.Error(t, item.Release())
	})

	t.Run("rejects releasing a sold item", func(t *testing.T) {
		item := createTestItem(t)
		require.NoError(t, item.MarkSold(uuid.New(), time.Now()))
		assert.Error(t, item.Release())
	})
}

func TestStockItem_MarkSold(t *testing.T) {
	t.Run("sells available item directly", func(t *testing.T) {
		item := createTestItem(t)
		orderID := uuid.New()
		saleDate := time.Now()
		require.NoError(t, item.MarkSold(orderID, saleDate))
		assert.Equal(t, StockSold, item.Status)
		require.NotNil(t, item.SaleDate)
		assert.Equal(t, saleDate, *item.SaleDate)
	})

	t.Run("sells reserved item", func(t *testing.T) {
		item := createTestItem(t)
		orderID := uuid.New()
		require.NoError(t, item.Reserve(orderID))
		require.NoError(t, item.MarkSold(orderID, time.Now()))
		assert.Equal(t, StockSold, item.Status)
	})

	t.Run("sold is terminal", func(t *testing.T) {
		item := createTestItem(t)
		require.NoError(t, item.MarkSold(uuid.New(), time.Now()))
		err := item.MarkSold(uuid.New(), time.Now())
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "STOCK_UNAVAILABLE", domainErr.Code)
	})

	t.Run("defaults zero sale date to now", func(t *testing.T) {
		item := createTestItem(t)
		require.NoError(t, item.MarkSold(uuid.New(), time.Time{}))
		require.NotNil(t, item.SaleDate)
		assert.False(t, item.SaleDate.IsZero())
	})
}
