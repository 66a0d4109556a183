package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockStatus represents the lifecycle state of a physical unit
type StockStatus string

const (
	StockAvailable StockStatus = "AVAILABLE"
	StockReserved  StockStatus = "RESERVED"
	StockSold      StockStatus = "SOLD"
)

// IsValid checks if the status is known
func (s StockStatus) IsValid() bool {
	switch s {
	case StockAvailable, StockReserved, StockSold:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s StockStatus) String() string {
	return string(s)
}

// StockItem is one physical, individually tagged unit of a product.
// Transitions only move forward (AVAILABLE -> RESERVED -> SOLD, or
// AVAILABLE -> SOLD when a sale completes immediately); the sole reverse
// edge is RESERVED -> AVAILABLE when a pending sale is cancelled.
type StockItem struct {
	shared.ShopAggregateRoot
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	TagID        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_stock_shop_tag,priority:2"`
	Barcode      string          `gorm:"type:varchar(50);not null;index"`
	Status       StockStatus     `gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	PurchaseCost decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PurchaseDate time.Time       `gorm:"not null"`
	SaleDate     *time.Time
	SalesOrderID    *uuid.UUID `gorm:"type:uuid;index"`
	PurchaseOrderID *uuid.UUID `gorm:"type:uuid;index"`
	HUID            string     `gorm:"type:varchar(20)"` // hallmark unique ID, when hallmarked
	Notes           string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (StockItem) TableName() string {
	return "stock_items"
}

// NewStockItem creates an available stock item for a product
func NewStockItem(shopID, productID uuid.UUID, tagID, barcode string, purchaseCost decimal.Decimal, purchaseDate time.Time) (*StockItem, error) {
	if tagID == "" {
		return nil, shared.NewDomainError("INVALID_TAG", "Tag ID cannot be empty")
	}
	if barcode == "" {
		return nil, shared.NewDomainError("INVALID_BARCODE", "Barcode cannot be empty")
	}
	if purchaseCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Purchase cost cannot be negative")
	}
	if purchaseDate.IsZero() {
		purchaseDate = time.Now()
	}
	return &StockItem{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		ProductID:         productID,
		TagID:             tagID,
		Barcode:           barcode,
		Status:            StockAvailable,
		PurchaseCost:      purchaseCost,
		PurchaseDate:      purchaseDate,
	}, nil
}

// Reserve holds the item for a pending sales order
func (i *StockItem) Reserve(salesOrderID uuid.UUID) error {
	if i.Status != StockAvailable {
		return shared.NewDomainError("STOCK_UNAVAILABLE", "Stock item is "+i.Status.String())
	}
	i.Status = StockReserved
	i.SalesOrderID = &salesOrderID
	i.UpdatedAt = time.Now()
	return nil
}

// Release returns a reserved item to the available pool
func (i *StockItem) Release() error {
	if i.Status != StockReserved {
		return shared.NewDomainError("INVALID_STATE", "Only reserved items can be released")
	}
	i.Status = StockAvailable
	i.SalesOrderID = nil
	i.UpdatedAt = time.Now()
	return nil
}

// MarkSold completes the sale of an available or reserved item. Sold is
// terminal; a sold item is never mutated again.
func (i *StockItem) MarkSold(salesOrderID uuid.UUID, saleDate time.Time) error {
	if i.Status == StockSold {
		return shared.NewDomainError("STOCK_UNAVAILABLE", "Stock item is SOLD")
	}
	if saleDate.IsZero() {
		saleDate = time.Now()
	}
	i.Status = StockSold
	i.SalesOrderID = &salesOrderID
	i.SaleDate = &saleDate
	i.UpdatedAt = time.Now()
	return nil
}

// IsAvailable reports whether the item can be sold
func (i *StockItem) IsAvailable() bool {
	return i.Status == StockAvailable
}
