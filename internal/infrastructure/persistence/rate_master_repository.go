package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jewelerp/backend/internal/domain/catalog"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// GormRateMasterRepository implements RateMasterRepository using GORM
type GormRateMasterRepository struct {
	db *gorm.DB
}

// NewGormRateMasterRepository creates a new GormRateMasterRepository
func NewGormRateMasterRepository(db *gorm.DB) *GormRateMasterRepository {
	return &GormRateMasterRepository{db: db}
}

// FindByIDForShop finds a rate by ID within a shop
func (r *GormRateMasterRepository) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*catalog.RateMaster, error) {
	var rate catalog.RateMaster
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&rate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// FindActiveRate finds the single active rate for a metal and purity
func (r *GormRateMasterRepository) FindActiveRate(ctx context.Context, shopID uuid.UUID, metal catalog.MetalType, purity string) (*catalog.RateMaster, error) {
	var rate catalog.RateMaster
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND metal_type = ? AND purity = ? AND is_active = ?", shopID, metal, purity, true).
		Order("effective_from DESC").
		First(&rate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// FindHistoryForShop lists rates for a metal and purity, newest first
func (r *GormRateMasterRepository) FindHistoryForShop(ctx context.Context, shopID uuid.UUID, metal catalog.MetalType, purity string, filter shared.Filter) ([]catalog.RateMaster, error) {
	var rates []catalog.RateMaster
	query := r.db.WithContext(ctx).Model(&catalog.RateMaster{}).
		Where("shop_id = ? AND metal_type = ? AND purity = ?", shopID, metal, purity).
		Order("effective_from DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// RetireActiveRates deactivates all active rates for a metal and purity
func (r *GormRateMasterRepository) RetireActiveRates(ctx context.Context, shopID uuid.UUID, metal catalog.MetalType, purity string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&catalog.RateMaster{}).
		Where("shop_id = ? AND metal_type = ? AND purity = ? AND is_active = ?", shopID, metal, purity, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"retired_at": now,
			"updated_at": now,
		}).Error
}

// Save creates or updates a rate
func (r *GormRateMasterRepository) Save(ctx context.Context, rate *catalog.RateMaster) error {
	return r.db.WithContext(ctx).Save(rate).Error
}

var _ catalog.RateMasterRepository = (*GormRateMasterRepository)(nil)
