package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// GormEmiPaymentRepository implements EmiPaymentRepository using GORM
type GormEmiPaymentRepository struct {
	db *gorm.DB
}

// NewGormEmiPaymentRepository creates a new GormEmiPaymentRepository
func NewGormEmiPaymentRepository(db *gorm.DB) *GormEmiPaymentRepository {
	return &GormEmiPaymentRepository{db: db}
}

// FindByIDForShop loads a plan with its installments
func (r *GormEmiPaymentRepository) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*finance.EmiPayment, error) {
	var plan finance.EmiPayment
	if err := r.db.WithContext(ctx).
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installment_number ASC")
		}).
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// FindAllForShop finds plans with filtering
func (r *GormEmiPaymentRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]finance.EmiPayment, error) {
	var plans []finance.EmiPayment
	query := r.db.WithContext(ctx).Model(&finance.EmiPayment{}).
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installment_number ASC")
		}).
		Where("shop_id = ?", shopID)
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	query = applyFilter(query, filter, EmiSortFields)
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// FindByCustomerForShop finds plans of one customer
func (r *GormEmiPaymentRepository) FindByCustomerForShop(ctx context.Context, customerID, shopID uuid.UUID, filter shared.Filter) ([]finance.EmiPayment, error) {
	var plans []finance.EmiPayment
	query := r.db.WithContext(ctx).Model(&finance.EmiPayment{}).
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installment_number ASC")
		}).
		Where("customer_id = ? AND shop_id = ?", customerID, shopID)
	query = applyFilter(query, filter, EmiSortFields)
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// FindDueForSweep finds plans with any PENDING installment due before asOf
func (r *GormEmiPaymentRepository) FindDueForSweep(ctx context.Context, shopID uuid.UUID, asOf time.Time) ([]finance.EmiPayment, error) {
	var plans []finance.EmiPayment
	err := r.db.WithContext(ctx).
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installment_number ASC")
		}).
		Where("shop_id = ? AND status <> ?", shopID, finance.EmiPaid).
		Where("id IN (?)", r.db.Model(&finance.EmiInstallment{}).
			Select("emi_payment_id").
			Where("status = ? AND due_date < ?", finance.EmiPending, asOf)).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// Save persists the plan and its installments
func (r *GormEmiPaymentRepository) Save(ctx context.Context, plan *finance.EmiPayment) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(plan).Error
}

// DeleteForShop soft-deletes a plan within a shop
func (r *GormEmiPaymentRepository) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		Delete(&finance.EmiPayment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ finance.EmiPaymentRepository = (*GormEmiPaymentRepository)(nil)
