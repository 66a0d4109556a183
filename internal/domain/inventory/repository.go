package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockItemRepository defines the interface for stock item persistence
type StockItemRepository interface {
	// FindByIDForShop finds a stock item by ID within a shop
	FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*StockItem, error)

	// FindByTagIDForShop finds a stock item by its tag within a shop
	FindByTagIDForShop(ctx context.Context, tagID string, shopID uuid.UUID) (*StockItem, error)

	// FindAllForShop finds stock items with filtering
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]StockItem, error)

	// FindByProductForShop finds stock items of a product, optionally by status
	FindByProductForShop(ctx context.Context, productID, shopID uuid.UUID, status *StockStatus) ([]StockItem, error)

	// FindAvailableFIFO returns up to limit AVAILABLE items of a product
	// ordered by purchase date ascending, oldest first
	FindAvailableFIFO(ctx context.Context, productID, shopID uuid.UUID, limit int) ([]StockItem, error)

	// InventoryValueForShop sums purchase cost over AVAILABLE and RESERVED
	// items. Sold units are excluded; selling price is never persisted.
	InventoryValueForShop(ctx context.Context, shopID uuid.UUID) (decimal.Decimal, error)

	// CountByStatusForShop counts a product's items in a given status
	CountByStatusForShop(ctx context.Context, productID, shopID uuid.UUID, status StockStatus) (int64, error)

	// ExistsByTagIDForShop checks tag uniqueness within a shop
	ExistsByTagIDForShop(ctx context.Context, tagID string, shopID uuid.UUID) (bool, error)

	// Save creates or updates a stock item
	Save(ctx context.Context, item *StockItem) error

	// SaveAll persists a batch of stock items
	SaveAll(ctx context.Context, items []*StockItem) error

	// TransitionStatus performs a conditional status update. The row is only
	// written when its current status equals from; returns
	// shared.ErrStockUnavailable when another writer got there first.
	TransitionStatus(ctx context.Context, id, shopID uuid.UUID, from, to StockStatus) error

	// DeleteForShop soft-deletes a stock item within a shop
	DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error
}
