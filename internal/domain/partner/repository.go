package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByIDForShop finds a customer by ID within a shop
	FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*Customer, error)

	// FindByPhoneForShop finds a customer by phone within a shop
	FindByPhoneForShop(ctx context.Context, phone string, shopID uuid.UUID) (*Customer, error)

	// FindAllForShop finds customers with filtering
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]Customer, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// DeleteForShop soft-deletes a customer within a shop
	DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error

	// CountForShop counts customers matching the filter
	CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error)
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByIDForShop finds a supplier by ID within a shop
	FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*Supplier, error)

	// FindAllForShop finds suppliers with filtering
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// DeleteForShop soft-deletes a supplier within a shop
	DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error

	// CountForShop counts suppliers matching the filter
	CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error)
}
