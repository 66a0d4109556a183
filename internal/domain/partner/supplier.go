package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// Supplier is a wholesaler or karigar the shop buys from
type Supplier struct {
	shared.ShopAggregateRoot
	Name          string `gorm:"type:varchar(200);not null"`
	ContactPerson string `gorm:"type:varchar(200)"`
	Phone         string `gorm:"type:varchar(20)"`
	Email         string `gorm:"type:varchar(200)"`
	Address       string `gorm:"type:varchar(500)"`
	GSTIN         string `gorm:"type:varchar(20)"`
	Notes         string `gorm:"type:text"`
	IsActive      bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new active supplier
func NewSupplier(shopID uuid.UUID, name string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	return &Supplier{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		Name:              name,
		IsActive:          true,
	}, nil
}

// Deactivate removes the supplier from active listings. Existing purchase
// orders keep their reference.
func (s *Supplier) Deactivate() {
	s.IsActive = false
	s.UpdatedAt = time.Now()
}

// Activate re-enables the supplier
func (s *Supplier) Activate() {
	s.IsActive = true
	s.UpdatedAt = time.Now()
}
