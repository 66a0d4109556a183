package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByIDForShop finds a product by ID within a shop
	FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*Product, error)

	// FindByBarcodeForShop finds a product by its barcode within a shop
	FindByBarcodeForShop(ctx context.Context, barcode string, shopID uuid.UUID) (*Product, error)

	// FindAllForShop finds all products of a shop with filtering
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]Product, error)

	// ExistsByBarcodeForShop checks barcode uniqueness within a shop
	ExistsByBarcodeForShop(ctx context.Context, barcode string, shopID uuid.UUID) (bool, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// DeleteForShop soft-deletes a product within a shop
	DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error

	// CountForShop counts products matching the filter
	CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error)
}

// RateMasterRepository defines the interface for metal rate persistence
type RateMasterRepository interface {
	// FindByIDForShop finds a rate by ID within a shop
	FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*RateMaster, error)

	// FindActiveRate finds the single active rate for a metal and purity.
	// Returns shared.ErrNotFound when no rate has been published yet.
	FindActiveRate(ctx context.Context, shopID uuid.UUID, metal MetalType, purity string) (*RateMaster, error)

	// FindHistoryForShop lists rates for a metal and purity, newest first
	FindHistoryForShop(ctx context.Context, shopID uuid.UUID, metal MetalType, purity string, filter shared.Filter) ([]RateMaster, error)

	// RetireActiveRates deactivates all active rates for a metal and purity.
	// Used inside the same transaction that activates a replacement.
	RetireActiveRates(ctx context.Context, shopID uuid.UUID, metal MetalType, purity string) error

	// Save creates or updates a rate
	Save(ctx context.Context, rate *RateMaster) error
}
