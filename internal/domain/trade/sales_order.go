package trade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SalesOrderStatus represents the lifecycle state of a sales order
type SalesOrderStatus string

const (
	SalesOrderPending   SalesOrderStatus = "PENDING"
	SalesOrderCompleted SalesOrderStatus = "COMPLETED"
	SalesOrderCancelled SalesOrderStatus = "CANCELLED"
)

// SalesOrder is a customer order. Each line binds exactly one stock item;
// a pending order holds reserved stock, a completed order holds sold stock.
// The final amount is the line total minus the discount and never negative.
type SalesOrder struct {
	shared.ShopAggregateRoot
	InvoiceNumber  string           `gorm:"type:varchar(50);not null;uniqueIndex:idx_so_shop_invoice,priority:2"`
	CustomerID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Status         SalesOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	OrderTotal     decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	DiscountAmount decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	FinalAmount    decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	PaidAmount     decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	PaymentStatus  PaymentStatus    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	OrderDate      time.Time        `gorm:"not null"`
	CompletedAt    *time.Time
	Notes          string           `gorm:"type:text"`
	Lines          []SalesOrderLine `gorm:"foreignKey:SalesOrderID"`
	Payments       []SalesPayment   `gorm:"foreignKey:SalesOrderID"`
}

// TableName returns the table name for GORM
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// SalesOrderLine binds one stock item to a sales order. Quantity is always
// one in this domain; every physical unit is distinct.
type SalesOrderLine struct {
	shared.BaseEntity
	SalesOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	StockItemID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	RateID       *uuid.UUID      `gorm:"type:uuid"` // rate the price was derived from
}

// TableName returns the table name for GORM
func (SalesOrderLine) TableName() string {
	return "sales_order_lines"
}

// SalesPayment is one payment event against a sales order
type SalesPayment struct {
	shared.BaseEntity
	SalesOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Method       string          `gorm:"type:varchar(30);not null"`
	Reference    string          `gorm:"type:varchar(100)"`
	PaidAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SalesPayment) TableName() string {
	return "sales_payments"
}

// SalesOrderLineInput describes one requested line at order creation
type SalesOrderLineInput struct {
	StockItemID uuid.UUID
	ProductID   uuid.UUID
	UnitPrice   decimal.Decimal
	RateID      *uuid.UUID
}

// NewSalesOrder creates a pending sales order. The discount is applied
// against the line total; a discount exceeding the total is rejected.
func NewSalesOrder(shopID, customerID uuid.UUID, invoiceNumber string, lines []SalesOrderLineInput, discount decimal.Decimal) (*SalesOrder, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice number cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Sales order must have at least one line")
	}
	if discount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}

	so := &SalesOrder{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		InvoiceNumber:     invoiceNumber,
		CustomerID:        customerID,
		Status:            SalesOrderPending,
		DiscountAmount:    discount,
		PaidAmount:        decimal.Zero,
		PaymentStatus:     PaymentPending,
		OrderDate:         time.Now(),
	}
	seen := make(map[uuid.UUID]bool, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		if line.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
		}
		if seen[line.StockItemID] {
			return nil, shared.NewDomainError("DUPLICATE_LINE", "Stock item appears on more than one line")
		}
		seen[line.StockItemID] = true
		so.Lines = append(so.Lines, SalesOrderLine{
			BaseEntity:   shared.NewBaseEntity(),
			SalesOrderID: so.ID,
			StockItemID:  line.StockItemID,
			ProductID:    line.ProductID,
			UnitPrice:    line.UnitPrice,
			RateID:       line.RateID,
		})
		total = total.Add(line.UnitPrice)
	}
	if discount.GreaterThan(total) {
		return nil, shared.NewDomainError("DISCOUNT_EXCEEDS_TOTAL",
			fmt.Sprintf("Discount %s exceeds order total %s", discount.StringFixed(2), total.StringFixed(2)))
	}
	so.OrderTotal = total
	so.FinalAmount = total.Sub(discount)
	return so, nil
}

// RemainingBalance returns the unpaid portion of the final amount
func (so *SalesOrder) RemainingBalance() decimal.Decimal {
	return so.FinalAmount.Sub(so.PaidAmount)
}

// RecordPayment applies a payment to the order. Payments beyond the
// remaining balance are rejected.
func (so *SalesOrder) RecordPayment(amount decimal.Decimal, method, reference string) (*SalesPayment, error) {
	if so.Status == SalesOrderCancelled {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot pay a cancelled order")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if amount.GreaterThan(so.RemainingBalance()) {
		return nil, shared.NewDomainError("OVER_PAYMENT",
			fmt.Sprintf("Payment %s exceeds remaining balance %s", amount.StringFixed(2), so.RemainingBalance().StringFixed(2)))
	}
	payment := SalesPayment{
		BaseEntity:   shared.NewBaseEntity(),
		SalesOrderID: so.ID,
		Amount:       amount,
		Method:       method,
		Reference:    reference,
		PaidAt:       time.Now(),
	}
	so.Payments = append(so.Payments, payment)
	so.PaidAmount = so.PaidAmount.Add(amount)
	so.PaymentStatus = derivePaymentStatus(so.PaidAmount, so.FinalAmount)
	so.UpdatedAt = time.Now()
	return &so.Payments[len(so.Payments)-1], nil
}

// Complete finishes a pending order. The caller must transition every
// line's stock item to SOLD and write the income ledger row in the same
// transaction.
func (so *SalesOrder) Complete() error {
	if so.Status != SalesOrderPending {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot complete order in status %s, requires PENDING", so.Status))
	}
	now := time.Now()
	so.Status = SalesOrderCompleted
	so.CompletedAt = &now
	so.UpdatedAt = now
	return nil
}

// Cancel voids a pending order. The caller must release the reserved stock
// items in the same transaction.
func (so *SalesOrder) Cancel() error {
	if so.Status != SalesOrderPending {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot cancel order in status %s, requires PENDING", so.Status))
	}
	so.Status = SalesOrderCancelled
	so.UpdatedAt = time.Now()
	return nil
}
