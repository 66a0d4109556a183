package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/jewelerp/backend/internal/domain/trade"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByIDForShop loads a purchase order with its items and payments
func (r *GormPurchaseOrderRepository) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*trade.PurchaseOrder, error) {
	var order trade.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAllForShop finds purchase orders with filtering
func (r *GormPurchaseOrderRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	var orders []trade.PurchaseOrder
	query := r.scopedQuery(ctx, shopID, filter).Preload("Items").Preload("Payments")
	query = applyFilter(query, filter, PurchaseOrderSortFields)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByStatusForShop finds purchase orders in a given status
func (r *GormPurchaseOrderRepository) FindByStatusForShop(ctx context.Context, shopID uuid.UUID, status trade.PurchaseOrderStatus, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	var orders []trade.PurchaseOrder
	query := r.scopedQuery(ctx, shopID, filter).
		Preload("Items").
		Preload("Payments").
		Where("status = ?", status)
	query = applyFilter(query, filter, PurchaseOrderSortFields)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GenerateOrderNumber produces the next order number for a shop. Numbers are
// date-prefixed and sequence within the day.
func (r *GormPurchaseOrderRepository) GenerateOrderNumber(ctx context.Context, shopID uuid.UUID) (string, error) {
	today := time.Now().Format("20060102")
	prefix := "PO-" + today

	var count int64
	if err := r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}).
		Unscoped().
		Where("shop_id = ? AND order_number LIKE ?", shopID, prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%04d", prefix, count+1), nil
}

// Save persists the order and its items and payments
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(order).Error
}

// DeleteForShop soft-deletes a purchase order within a shop
func (r *GormPurchaseOrderRepository) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		Delete(&trade.PurchaseOrder{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForShop counts purchase orders matching the filter
func (r *GormPurchaseOrderRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.scopedQuery(ctx, shopID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPurchaseOrderRepository) scopedQuery(ctx context.Context, shopID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}).Where("shop_id = ?", shopID)
	if filter.Search != "" {
		query = query.Where("order_number ILIKE ?", "%"+filter.Search+"%")
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if supplierID, ok := filter.Filters["supplier_id"]; ok {
		query = query.Where("supplier_id = ?", supplierID)
	}
	return query
}

var _ trade.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
