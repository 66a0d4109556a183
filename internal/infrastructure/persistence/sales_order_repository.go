package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/jewelerp/backend/internal/domain/trade"
)

// GormSalesOrderRepository implements SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// FindByIDForShop loads a sales order with its lines and payments
func (r *GormSalesOrderRepository) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*trade.SalesOrder, error) {
	var order trade.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Lines").
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

// FindByInvoiceForShop finds a sales order by invoice number
func (r *GormSalesOrderRepository) FindByInvoiceForShop(ctx context.Context, invoiceNumber string, shopID uuid.UUID) (*trade.SalesOrder, error) {
	var order trade.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Payments").
		Where("invoice_number = ? AND shop_id = ?", invoiceNumber, shopID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAllForShop finds sales orders with filtering
func (r *GormSalesOrderRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]trade.SalesOrder, error) {
	var orders []trade.SalesOrder
	query := r.scopedQuery(ctx, shopID, filter).Preload("Lines").Preload("Payments")
	query = applyFilter(query, filter, SalesOrderSortFields)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByCustomerForShop finds sales orders of one customer
func (r *GormSalesOrderRepository) FindByCustomerForShop(ctx context.Context, customerID, shopID uuid.UUID, filter shared.Filter) ([]trade.SalesOrder, error) {
	var orders []trade.SalesOrder
	query := r.scopedQuery(ctx, shopID, filter).
		Preload("Lines").
		Preload("Payments").
		Where("customer_id = ?", customerID)
	query = applyFilter(query, filter, SalesOrderSortFields)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ExistsByInvoiceForShop checks invoice number uniqueness within a shop
func (r *GormSalesOrderRepository) ExistsByInvoiceForShop(ctx context.Context, invoiceNumber string, shopID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&trade.SalesOrder{}).
		Unscoped().
		Where("invoice_number = ? AND shop_id = ?", invoiceNumber, shopID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists the order and its lines and payments
func (r *GormSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(order).Error
}

// DeleteForShop soft-deletes a sales order within a shop
func (r *GormSalesOrderRepository) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		Delete(&trade.SalesOrder{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForShop counts sales orders matching the filter
func (r *GormSalesOrderRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.scopedQuery(ctx, shopID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormSalesOrderRepository) scopedQuery(ctx context.Context, shopID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&trade.SalesOrder{}).Where("shop_id = ?", shopID)
	if filter.Search != "" {
		query = query.Where("invoice_number ILIKE ?", "%"+filter.Search+"%")
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if customerID, ok := filter.Filters["customer_id"]; ok {
		query = query.Where("customer_id = ?", customerID)
	}
	return query
}

var _ trade.SalesOrderRepository = (*GormSalesOrderRepository)(nil)
