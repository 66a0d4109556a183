package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// ShopRepository defines the interface for shop persistence.
// Shops are the tenant root and are not shop-scoped themselves; only
// super-admin operations reach this repository without a shop context.
type ShopRepository interface {
	// FindByID finds a shop by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Shop, error)

	// FindAll finds all shops with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Shop, error)

	// Save creates or updates a shop
	Save(ctx context.Context, shop *Shop) error

	// Delete soft-deletes a shop
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts shops matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindAllForShop finds all users belonging to a shop
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]User, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// Delete soft-deletes a user
	Delete(ctx context.Context, id uuid.UUID) error
}
