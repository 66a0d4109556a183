package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jewelerp/backend/internal/domain/inventory"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// newMockStockItemRepository creates a GormStockItemRepository with a mocked SQL connection
func newMockStockItemRepository(t *testing.T) (*GormStockItemRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormStockItemRepository(gormDB), mock, mockDB
}

func TestGormStockItemRepository_FindByIDForShop(t *testing.T) {
	t.Run("returns ErrNotFound for a missing or foreign-shop row", func(t *testing.T) {
		repo, mock, mockDB := newMockStockItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		shopID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "stock_items"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByIDForShop(context.Background(), itemID, shopID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStockItemRepository_TransitionStatus(t *testing.T) {
	t.Run("updates the row when the current status matches", func(t *testing.T) {
		repo, mock, mockDB := newMockStockItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		shopID := uuid.New()

		mock.ExpectExec(`UPDATE "stock_items" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.TransitionStatus(context.Background(), itemID, shopID,
			inventory.StockAvailable, inventory.StockReserved)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports a lost race when no row matches the expected status", func(t *testing.T) {
		repo, mock, mockDB := newMockStockItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		shopID := uuid.New()

		mock.ExpectExec(`UPDATE "stock_items" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.TransitionStatus(context.Background(), itemID, shopID,
			inventory.StockAvailable, inventory.StockSold)
		assert.ErrorIs(t, err, shared.ErrStockUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func newStockItemRepository(t *testing.T) *GormStockItemRepository {
	t.Helper()
	return NewGormStockItemRepository(newSqliteDB(t, &inventory.StockItem{}))
}

func seedStockItem(t *testing.T, repo *GormStockItemRepository, shopID, productID uuid.UUID, tag string, cost int64, purchased time.Time) *inventory.StockItem {
	t.Helper()
	item, err := inventory.NewStockItem(shopID, productID, tag, "SKU-"+tag,
		decimal.NewFromInt(cost), purchased)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), item))
	return item
}

func TestGormStockItemRepository_FindAvailableFIFO(t *testing.T) {
	t.Run("returns oldest available units first, skipping claimed ones", func(t *testing.T) {
		repo := newStockItemRepository(t)
		ctx := context.Background()
		shopID := uuid.New()
		productID := uuid.New()
		base := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

		oldest := seedStockItem(t, repo, shopID, productID, "TAG-A", 50000, base)
		middle := seedStockItem(t, repo, shopID, productID, "TAG-B", 51000, base.AddDate(0, 0, 5))
		newest := seedStockItem(t, repo, shopID, productID, "TAG-C", 52000, base.AddDate(0, 0, 9))
		reserved := seedStockItem(t, repo, shopID, productID, "TAG-D", 53000, base.AddDate(0, 0, 1))
		require.NoError(t, reserved.Reserve(uuid.New()))
		require.NoError(t, repo.Save(ctx, reserved))
		seedStockItem(t, repo, uuid.New(), productID, "TAG-E", 54000, base)

		items, err := repo.FindAvailableFIFO(ctx, productID, shopID, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, oldest.ID, items[0].ID)
		assert.Equal(t, middle.ID, items[1].ID)

		rest, err := repo.FindAvailableFIFO(ctx, productID, shopID, 10)
		require.NoError(t, err)
		require.Len(t, rest, 3)
		assert.Equal(t, newest.ID, rest[2].ID)
	})
}

func TestGormStockItemRepository_InventoryValueForShop(t *testing.T) {
	t.Run("sums available and reserved cost, excluding sold units", func(t *testing.T) {
		repo := newStockItemRepository(t)
		ctx := context.Background()
		shopID := uuid.New()
		productID := uuid.New()
		base := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

		seedStockItem(t, repo, shopID, productID, "TAG-A", 40000, base)
		reserved := seedStockItem(t, repo, shopID, productID, "TAG-B", 35000, base)
		require.NoError(t, reserved.Reserve(uuid.New()))
		require.NoError(t, repo.Save(ctx, reserved))
		sold := seedStockItem(t, repo, shopID, productID, "TAG-C", 60000, base)
		require.NoError(t, sold.MarkSold(uuid.New(), time.Now()))
		require.NoError(t, repo.Save(ctx, sold))

		value, err := repo.InventoryValueForShop(ctx, shopID)
		require.NoError(t, err)
		assert.True(t, value.Equal(decimal.NewFromInt(75000)),
			"expected 75000, got %s", value)
	})

	t.Run("an empty shop values at zero", func(t *testing.T) {
		repo := newStockItemRepository(t)

		value, err := repo.InventoryValueForShop(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.True(t, value.IsZero())
	})
}
