package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RateMaster is a per-gram metal rate published by a shop. At most one rate
// per (shop, metal, purity) is active at a time; activating a new rate
// retires the previous one. Historical rates are never mutated so that past
// sales remain explainable.
type RateMaster struct {
	shared.ShopAggregateRoot
	MetalType     MetalType       `gorm:"type:varchar(20);not null;index:idx_rate_shop_metal_purity,priority:2"`
	Purity        string          `gorm:"type:varchar(20);not null;index:idx_rate_shop_metal_purity,priority:3"`
	PricePerGram  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	IsActive      bool            `gorm:"not null;default:true;index"`
	EffectiveFrom time.Time       `gorm:"not null"`
	RetiredAt     *time.Time
}

// TableName returns the table name for GORM
func (RateMaster) TableName() string {
	return "rate_masters"
}

// NewRateMaster creates a new active rate effective immediately
func NewRateMaster(shopID uuid.UUID, metal MetalType, purity string, pricePerGram decimal.Decimal) (*RateMaster, error) {
	if !metal.IsValid() {
		return nil, shared.NewDomainError("INVALID_METAL", "Unknown metal type")
	}
	if purity == "" {
		return nil, shared.NewDomainError("INVALID_PURITY", "Purity cannot be empty")
	}
	if pricePerGram.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_RATE", "Price per gram must be positive")
	}
	return &RateMaster{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		MetalType:         metal,
		Purity:            purity,
		PricePerGram:      pricePerGram,
		IsActive:          true,
		EffectiveFrom:     time.Now(),
	}, nil
}

// Retire deactivates the rate. Retiring an already retired rate is a no-op.
func (r *RateMaster) Retire() {
	if !r.IsActive {
		return
	}
	now := time.Now()
	r.IsActive = false
	r.RetiredAt = &now
	r.UpdatedAt = now
}
