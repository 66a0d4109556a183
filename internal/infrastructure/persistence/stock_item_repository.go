package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jewelerp/backend/internal/domain/inventory"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// GormStockItemRepository implements StockItemRepository using GORM
type GormStockItemRepository struct {
	db *gorm.DB
}

// NewGormStockItemRepository creates a new GormStockItemRepository
func NewGormStockItemRepository(db *gorm.DB) *GormStockItemRepository {
	return &GormStockItemRepository{db: db}
}

// FindByIDForShop finds a stock item by ID within a shop
func (r *GormStockItemRepository) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*inventory.StockItem, error) {
	var item inventory.StockItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByTagIDForShop finds a stock item by its tag within a shop
func (r *GormStockItemRepository) FindByTagIDForShop(ctx context.Context, tagID string, shopID uuid.UUID) (*inventory.StockItem, error) {
	var item inventory.StockItem
	if err := r.db.WithContext(ctx).
		Where("tag_id = ? AND shop_id = ?", tagID, shopID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAllForShop finds stock items with filtering
func (r *GormStockItemRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]inventory.StockItem, error) {
	var items []inventory.StockItem
	query := r.db.WithContext(ctx).Model(&inventory.StockItem{}).Where("shop_id = ?", shopID)
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("tag_id ILIKE ? OR barcode ILIKE ?", like, like)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if productID, ok := filter.Filters["product_id"]; ok {
		query = query.Where("product_id = ?", productID)
	}
	query = applyFilter(query, filter, StockItemSortFields)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByProductForShop finds stock items of a product, optionally by status
func (r *GormStockItemRepository) FindByProductForShop(ctx context.Context, productID, shopID uuid.UUID, status *inventory.StockStatus) ([]inventory.StockItem, error) {
	var items []inventory.StockItem
	query := r.db.WithContext(ctx).
		Where("product_id = ? AND shop_id = ?", productID, shopID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Order("purchase_date ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindAvailableFIFO returns up to limit AVAILABLE items, oldest first
func (r *GormStockItemRepository) FindAvailableFIFO(ctx context.Context, productID, shopID uuid.UUID, limit int) ([]inventory.StockItem, error) {
	var items []inventory.StockItem
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND shop_id = ? AND status = ?", productID, shopID, inventory.StockAvailable).
		Order("purchase_date ASC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// InventoryValueForShop sums purchase cost over AVAILABLE and RESERVED items
func (r *GormStockItemRepository) InventoryValueForShop(ctx context.Context, shopID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&inventory.StockItem{}).
		Select("COALESCE(SUM(purchase_cost), 0) AS total").
		Where("shop_id = ? AND status IN ?", shopID, []inventory.StockStatus{
			inventory.StockAvailable,
			inventory.StockReserved,
		}).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// CountByStatusForShop counts a product's items in a given status
func (r *GormStockItemRepository) CountByStatusForShop(ctx context.Context, productID, shopID uuid.UUID, status inventory.StockStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.StockItem{}).
		Where("product_id = ? AND shop_id = ? AND status = ?", productID, shopID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByTagIDForShop checks tag uniqueness within a shop
func (r *GormStockItemRepository) ExistsByTagIDForShop(ctx context.Context, tagID string, shopID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.StockItem{}).
		Where("tag_id = ? AND shop_id = ?", tagID, shopID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a stock item
func (r *GormStockItemRepository) Save(ctx context.Context, item *inventory.StockItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// SaveAll persists a batch of stock items
func (r *GormStockItemRepository) SaveAll(ctx context.Context, items []*inventory.StockItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(items).Error
}

// TransitionStatus performs a conditional status update. The guard on the
// current status makes concurrent claims of the same unit lose cleanly.
func (r *GormStockItemRepository) TransitionStatus(ctx context.Context, id, shopID uuid.UUID, from, to inventory.StockStatus) error {
	result := r.db.WithContext(ctx).Model(&inventory.StockItem{}).
		Where("id = ? AND shop_id = ? AND status = ?", id, shopID, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrStockUnavailable
	}
	return nil
}

// DeleteForShop soft-deletes a stock item within a shop
func (r *GormStockItemRepository) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		Delete(&inventory.StockItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ inventory.StockItemRepository = (*GormStockItemRepository)(nil)
