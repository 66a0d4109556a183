package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jewelerp/backend/internal/domain/catalog"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByIDForShop finds a product by ID within a shop
func (r *GormProductRepository) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByBarcodeForShop finds a product by its barcode within a shop
func (r *GormProductRepository) FindByBarcodeForShop(ctx context.Context, barcode string, shopID uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Where("barcode = ? AND shop_id = ?", barcode, shopID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAllForShop finds all products of a shop with filtering
func (r *GormProductRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.scopedQuery(ctx, shopID, filter)
	query = applyFilter(query, filter, ProductSortFields)
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ExistsByBarcodeForShop checks barcode uniqueness within a shop
func (r *GormProductRepository) ExistsByBarcodeForShop(ctx context.Context, barcode string, shopID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("barcode = ? AND shop_id = ?", barcode, shopID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// DeleteForShop soft-deletes a product within a shop
func (r *GormProductRepository) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		Delete(&catalog.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForShop counts products matching the filter
func (r *GormProductRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.scopedQuery(ctx, shopID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormProductRepository) scopedQuery(ctx context.Context, shopID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&catalog.Product{}).Where("shop_id = ?", shopID)
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR barcode ILIKE ? OR tag_number ILIKE ?", like, like, like)
	}
	if metal, ok := filter.Filters["metal_type"]; ok {
		query = query.Where("metal_type = ?", metal)
	}
	if purity, ok := filter.Filters["purity"]; ok {
		query = query.Where("purity = ?", purity)
	}
	if collection, ok := filter.Filters["collection"]; ok {
		query = query.Where("collection = ?", collection)
	}
	if active, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", active)
	}
	return query
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
