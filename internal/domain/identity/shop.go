package identity

import (
	"time"

	"github.com/jewelerp/backend/internal/domain/shared"
)

// Shop is the tenant root: one jewellery store in the multi-tenant system.
// Every other tenant-owned aggregate references a shop; a shop is only ever
// soft-deleted while children exist.
type Shop struct {
	shared.BaseAggregateRoot
	Name             string `gorm:"type:varchar(200);not null"`
	LegalName        string `gorm:"type:varchar(200)"`
	GSTIN            string `gorm:"type:varchar(20)"`
	Address          string `gorm:"type:varchar(500)"`
	Phone            string `gorm:"type:varchar(20)"`
	Email            string `gorm:"type:varchar(200)"`
	IsActive         bool   `gorm:"not null;default:true"`
	IsPaused         bool   `gorm:"not null;default:false"`
	SubscriptionFrom *time.Time
	SubscriptionTo   *time.Time
}

// TableName returns the table name for GORM
func (Shop) TableName() string {
	return "shops"
}

// NewShop creates a new active shop
func NewShop(name string) (*Shop, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Shop name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Shop name cannot exceed 200 characters")
	}
	return &Shop{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		IsActive:          true,
	}, nil
}

// CanOperate returns true if the shop may serve requests
func (s *Shop) CanOperate() bool {
	if !s.IsActive || s.IsPaused {
		return false
	}
	if s.SubscriptionTo != nil && s.SubscriptionTo.Before(time.Now()) {
		return false
	}
	return true
}

// Pause suspends the shop without deactivating it
func (s *Shop) Pause() error {
	if !s.IsActive {
		return shared.NewDomainError("INVALID_STATE", "Cannot pause an inactive shop")
	}
	s.IsPaused = true
	s.UpdatedAt = time.Now()
	return nil
}

// Resume lifts a pause
func (s *Shop) Resume() {
	s.IsPaused = false
	s.UpdatedAt = time.Now()
}

// Deactivate disables the shop entirely
func (s *Shop) Deactivate() {
	s.IsActive = false
	s.UpdatedAt = time.Now()
}

// Activate re-enables the shop
func (s *Shop) Activate() {
	s.IsActive = true
	s.UpdatedAt = time.Now()
}

// SetSubscription sets the subscription window
func (s *Shop) SetSubscription(from, to *time.Time) error {
	if from != nil && to != nil && to.Before(*from) {
		return shared.NewDomainError("INVALID_INPUT", "Subscription end cannot precede its start")
	}
	s.SubscriptionFrom = from
	s.SubscriptionTo = to
	s.UpdatedAt = time.Now()
	return nil
}
