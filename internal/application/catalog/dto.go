package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ==================== Product DTOs ====================

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=200"`
	MetalType      string          `json:"metal_type" binding:"required,metal_type"`
	Purity         string          `json:"purity" binding:"required,min=1,max=20"`
	GrossWeight    decimal.Decimal `json:"gross_weight" binding:"required"`
	NetWeight      decimal.Decimal `json:"net_weight" binding:"required"`
	MakingCharge   decimal.Decimal `json:"making_charge"`
	WastagePercent decimal.Decimal `json:"wastage_percent"`
	Barcode        string          `json:"barcode" binding:"required,min=1,max=50"`
	HUID           string          `json:"huid"`
	TagNumber      string          `json:"tag_number"`
	Collection     string          `json:"collection"`
	Description    string          `json:"description"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	MakingCharge   *decimal.Decimal `json:"making_charge"`
	WastagePercent *decimal.Decimal `json:"wastage_percent"`
	Collection     *string          `json:"collection"`
	Description    *string          `json:"description"`
}

// ProductResponse represents a product
type ProductResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	MetalType      string          `json:"metal_type"`
	Purity         string          `json:"purity"`
	GrossWeight    decimal.Decimal `json:"gross_weight"`
	NetWeight      decimal.Decimal `json:"net_weight"`
	MakingCharge   decimal.Decimal `json:"making_charge"`
	WastagePercent decimal.Decimal `json:"wastage_percent"`
	Barcode        string          `json:"barcode"`
	HUID           string          `json:"huid,omitempty"`
	TagNumber      string          `json:"tag_number,omitempty"`
	Collection     string          `json:"collection,omitempty"`
	Description    string          `json:"description,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		MetalType:      string(p.MetalType),
		Purity:         p.Purity,
		GrossWeight:    p.GrossWeight,
		NetWeight:      p.NetWeight,
		MakingCharge:   p.MakingCharge,
		WastagePercent: p.WastagePercent,
		Barcode:        p.Barcode,
		HUID:           p.HUID,
		TagNumber:      p.TagNumber,
		Collection:     p.Collection,
		Description:    p.Description,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// PriceQuoteResponse is a price computed from the live rate
type PriceQuoteResponse struct {
	ProductID    uuid.UUID       `json:"product_id"`
	RateID       uuid.UUID       `json:"rate_id"`
	PricePerGram decimal.Decimal `json:"price_per_gram"`
	MetalValue   decimal.Decimal `json:"metal_value"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	QuotedAt     time.Time       `json:"quoted_at"`
}

// ==================== Rate DTOs ====================

// PublishRateRequest represents publication of a new metal rate
type PublishRateRequest struct {
	MetalType    string          `json:"metal_type" binding:"required,metal_type"`
	Purity       string          `json:"purity" binding:"required,min=1,max=20"`
	PricePerGram decimal.Decimal `json:"price_per_gram" binding:"required"`
}

// RateResponse represents a metal rate
type RateResponse struct {
	ID            uuid.UUID       `json:"id"`
	MetalType     string          `json:"metal_type"`
	Purity        string          `json:"purity"`
	PricePerGram  decimal.Decimal `json:"price_per_gram"`
	IsActive      bool            `json:"is_active"`
	EffectiveFrom time.Time       `json:"effective_from"`
	RetiredAt     *time.Time      `json:"retired_at,omitempty"`
}

// ToRateResponse converts a domain rate to a response
func ToRateResponse(r *catalog.RateMaster) RateResponse {
	return RateResponse{
		ID:            r.ID,
		MetalType:     string(r.MetalType),
		Purity:        r.Purity,
		PricePerGram:  r.PricePerGram,
		IsActive:      r.IsActive,
		EffectiveFrom: r.EffectiveFrom,
		RetiredAt:     r.RetiredAt,
	}
}
