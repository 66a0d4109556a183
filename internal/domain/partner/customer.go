package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// Customer is a retail buyer of a shop. Phone numbers are unique per shop
// and double as the lookup key at the counter.
type Customer struct {
	shared.ShopAggregateRoot
	Name      string `gorm:"type:varchar(200);not null"`
	Phone     string `gorm:"type:varchar(20);not null;uniqueIndex:idx_customer_shop_phone,priority:2"`
	Email     string `gorm:"type:varchar(200)"`
	Address   string `gorm:"type:varchar(500)"`
	IDProof   string `gorm:"type:varchar(100)"` // PAN or Aadhaar reference for high-value sales
	Notes     string `gorm:"type:text"`
	IsBlocked bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer
func NewCustomer(shopID uuid.UUID, name, phone string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Customer phone cannot be empty")
	}
	return &Customer{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		Name:              name,
		Phone:             phone,
	}, nil
}

// UpdateContact updates the contact fields
func (c *Customer) UpdateContact(phone, email, address string) error {
	if phone == "" {
		return shared.NewDomainError("INVALID_PHONE", "Customer phone cannot be empty")
	}
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.UpdatedAt = time.Now()
	return nil
}

// Block prevents new credit sales to the customer
func (c *Customer) Block() {
	c.IsBlocked = true
	c.UpdatedAt = time.Now()
}

// Unblock lifts a block
func (c *Customer) Unblock() {
	c.IsBlocked = false
	c.UpdatedAt = time.Now()
}
