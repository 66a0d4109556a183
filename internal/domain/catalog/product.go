package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MetalType represents the base metal of a product
type MetalType string

const (
	MetalGold     MetalType = "GOLD"
	MetalSilver   MetalType = "SILVER"
	MetalPlatinum MetalType = "PLATINUM"
)

// IsValid checks if the metal type is known
func (m MetalType) IsValid() bool {
	switch m {
	case MetalGold, MetalSilver, MetalPlatinum:
		return true
	}
	return false
}

// String returns the string representation of the metal type
func (m MetalType) String() string {
	return string(m)
}

// Product is a catalog definition. It owns zero or more stock items and
/// deliberately carries no fixed selling price: the price of a unit is always
// derived at need from the active metal rate plus the product's markup rules.
type Product struct {
	shared.ShopAggregateRoot
	Name           string          `gorm:"type:varchar(200);not null"`
	MetalType      MetalType       `gorm:"type:varchar(20);not null;index"`
	Purity         string          `gorm:"type:varchar(20);not null"`
	GrossWeight    decimal.Decimal `gorm:"type:decimal(12,3);not null"` // grams
	NetWeight      decimal.Decimal `gorm:"type:decimal(12,3);not null"` // grams of metal priced by rate
	MakingCharge   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	WastagePercent decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	Barcode        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_shop_barcode,priority:2"`
	HUID           string          `gorm:"type:varchar(20)"`
	TagNumber      string          `gorm:"type:varchar(50)"`
	Collection     string          `gorm:"type:varchar(100)"`
	Description    string          `gorm:"type:text"`
	IsActive       bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product definition
func NewProduct(shopID uuid.UUID, name string, metal MetalType, purity, barcode string, grossWeight, netWeight decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if !metal.IsValid() {
		return nil, shared.NewDomainError("INVALID_METAL", "Unknown metal type")
	}
	if purity == "" {
		return nil, shared.NewDomainError("INVALID_PURITY", "Purity cannot be empty")
	}
	if barcode == "" {
		return nil, shared.NewDomainError("INVALID_BARCODE", "Barcode cannot be empty")
	}
	if grossWeight.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_WEIGHT", "Gross weight must be positive")
	}
	if netWeight.LessThanOrEqual(decimal.Zero) || netWeight.GreaterThan(grossWeight) {
		return nil, shared.NewDomainError("INVALID_WEIGHT", "Net weight must be positive and not exceed gross weight")
	}

	return &Product{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		Name:              name,
		MetalType:         metal,
		Purity:            purity,
		GrossWeight:       grossWeight,
		NetWeight:         netWeight,
		MakingCharge:      decimal.Zero,
		WastagePercent:    decimal.Zero,
		Barcode:           barcode,
		IsActive:          true,
	}, nil
}

// SetMarkup sets the making charge and wastage percentage
func (p *Product) SetMarkup(makingCharge, wastagePercent decimal.Decimal) error {
	if makingCharge.IsNegative() {
		return shared.NewDomainError("INVALID_MARKUP", "Making charge cannot be negative")
	}
	if wastagePercent.IsNegative() || wastagePercent.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_MARKUP", "Wastage percent must be between 0 and 100")
	}
	p.MakingCharge = makingCharge
	p.WastagePercent = wastagePercent
	p.UpdatedAt = time.Now()
	return nil
}

// PriceAt computes the selling price of one unit at the given per-gram rate:
// metal value (net weight x rate) plus wastage percentage of the metal value
// plus the flat making charge. Rounded to 2 decimal places.
func (p *Product) PriceAt(pricePerGram decimal.Decimal) decimal.Decimal {
	metalValue := p.NetWeight.Mul(pricePerGram)
	wastage := metalValue.Mul(p.WastagePercent).Div(decimal.NewFromInt(100))
	return metalValue.Add(wastage).Add(p.MakingCharge).Round(2)
}

// Deactivate removes the product from active catalog listings
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}
