package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jewelerp/backend/internal/domain/partner"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByIDForShop finds a customer by ID within a shop
func (r *GormCustomerRepository) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindByPhoneForShop finds a customer by phone within a shop
func (r *GormCustomerRepository) FindByPhoneForShop(ctx context.Context, phone string, shopID uuid.UUID) (*partner.Customer, error) {
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone cannot be empty")
	}
	var customer partner.Customer
	if err := r.db.WithContext(ctx).
		Where("phone = ? AND shop_id = ?", phone, shopID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindAllForShop finds customers with filtering
func (r *GormCustomerRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	var customers []partner.Customer
	query := r.scopedQuery(ctx, shopID, filter)
	query = applyFilter(query, filter, CustomerSortFields)
	if err := query.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// DeleteForShop soft-deletes a customer within a shop
func (r *GormCustomerRepository) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		Delete(&partner.Customer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForShop counts customers matching the filter
func (r *GormCustomerRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.scopedQuery(ctx, shopID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCustomerRepository) scopedQuery(ctx context.Context, shopID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&partner.Customer{}).Where("shop_id = ?", shopID)
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ?", like, like)
	}
	if blocked, ok := filter.Filters["is_blocked"]; ok {
		query = query.Where("is_blocked = ?", blocked)
	}
	return query
}

var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
