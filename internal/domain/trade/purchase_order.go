package trade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the lifecycle state of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderPending   PurchaseOrderStatus = "PENDING"
	PurchaseOrderConfirmed PurchaseOrderStatus = "CONFIRMED"
	PurchaseOrderPartial   PurchaseOrderStatus = "PARTIAL"
	PurchaseOrderDelivered PurchaseOrderStatus = "DELIVERED"
	PurchaseOrderClosed    PurchaseOrderStatus = "CLOSED"
	PurchaseOrderCancelled PurchaseOrderStatus = "CANCELLED"
)

// PaymentStatus is derived from paid amount versus the owed amount and is
// never maintained as an independent source of truth
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

// derivePaymentStatus computes the payment status from amounts
func derivePaymentStatus(paid, owed decimal.Decimal) PaymentStatus {
	switch {
	case owed.IsPositive() && paid.GreaterThanOrEqual(owed):
		return PaymentPaid
	case paid.IsPositive():
		return PaymentPartial
	default:
		return PaymentPending
	}
}

// PurchaseOrder is a supplier order. Items track ordered versus received
// quantities; order status is always recomputed from the aggregate receipt
// state of the items, never maintained separately.
type PurchaseOrder struct {
	shared.ShopAggregateRoot
	OrderNumber   string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_po_shop_number,priority:2"`
	SupplierID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	Status        PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	TotalAmount   decimal.Decimal     `gorm:"type:decimal(18,2);not null;default:0"`
	PaidAmount    decimal.Decimal     `gorm:"type:decimal(18,2);not null;default:0"`
	PaymentStatus PaymentStatus       `gorm:"type:varchar(20);not null;default:'PENDING'"`
	OrderDate     time.Time           `gorm:"not null"`
	ExpectedDate  *time.Time
	ClosedAt      *time.Time
	Notes         string              `gorm:"type:text"`
	Items         []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID"`
	Payments      []PurchasePayment   `gorm:"foreignKey:PurchaseOrderID"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItem is one product line on a purchase order
type PurchaseOrderItem struct {
	shared.BaseEntity
	PurchaseOrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity         int             `gorm:"not null"`
	ReceivedQuantity int             `gorm:"not null;default:0"`
	UnitCost         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// PendingQuantity returns units ordered but not yet received
func (i *PurchaseOrderItem) PendingQuantity() int {
	return i.Quantity - i.ReceivedQuantity
}

// PurchasePayment is one payment event against a purchase order
type PurchasePayment struct {
	shared.BaseEntity
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Method          string          `gorm:"type:varchar(30);not null"`
	Reference       string          `gorm:"type:varchar(100)"`
	PaidAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchasePayment) TableName() string {
	return "purchase_payments"
}

// NewPurchaseOrder creates a pending purchase order with the given lines
type PurchaseOrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitCost  decimal.Decimal
}

// NewPurchaseOrder creates a pending purchase order
func NewPurchaseOrder(shopID, supplierID uuid.UUID, orderNumber string, lines []PurchaseOrderLineInput) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Purchase order must have at least one item")
	}

	po := &PurchaseOrder{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		OrderNumber:       orderNumber,
		SupplierID:        supplierID,
		Status:            PurchaseOrderPending,
		TotalAmount:       decimal.Zero,
		PaidAmount:        decimal.Zero,
		PaymentStatus:     PaymentPending,
		OrderDate:         time.Now(),
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Line quantity must be positive")
		}
		if line.UnitCost.IsNegative() {
			return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
		}
		item := PurchaseOrderItem{
			BaseEntity:      shared.NewBaseEntity(),
			PurchaseOrderID: po.ID,
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			UnitCost:        line.UnitCost,
		}
		po.Items = append(po.Items, item)
		po.TotalAmount = po.TotalAmount.Add(line.UnitCost.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return po, nil
}

// Confirm moves a pending order to confirmed
func (po *PurchaseOrder) Confirm() error {
	if po.Status != PurchaseOrderPending {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot confirm order in status %s, requires PENDING", po.Status))
	}
	po.Status = PurchaseOrderConfirmed
	po.UpdatedAt = time.Now()
	return nil
}

// findItem locates a line by ID
func (po *PurchaseOrder) findItem(itemID uuid.UUID) *PurchaseOrderItem {
	for idx := range po.Items {
		if po.Items[idx].ID == itemID {
			return &po.Items[idx]
		}
	}
	return nil
}

// ReceiveItem records quantity received against one line and recomputes the
// order status from all lines. Receiving more than the pending quantity of a
// line is rejected.
func (po *PurchaseOrder) ReceiveItem(itemID uuid.UUID, quantity int) error {
	if po.Status == PurchaseOrderClosed || po.Status == PurchaseOrderCancelled {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot receive stock on a %s order", po.Status))
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Receive quantity must be positive")
	}
	item := po.findItem(itemID)
	if item == nil {
		return shared.ErrNotFound
	}
	if quantity > item.PendingQuantity() {
		return shared.NewDomainError("OVER_RECEIPT",
			fmt.Sprintf("Cannot receive %d units, only %d pending on this line", quantity, item.PendingQuantity()))
	}
	item.ReceivedQuantity += quantity
	item.UpdatedAt = time.Now()
	po.recomputeReceiptStatus()
	po.UpdatedAt = time.Now()
	return nil
}

// recomputeReceiptStatus derives the order status from the lines
func (po *PurchaseOrder) recomputeReceiptStatus() {
	all := true
	any := false
	for idx := range po.Items {
		if po.Items[idx].ReceivedQuantity > 0 {
			any = true
		}
		if po.Items[idx].ReceivedQuantity < po.Items[idx].Quantity {
			all = false
		}
	}
	switch {
	case all:
		po.Status = PurchaseOrderDelivered
	case any:
		po.Status = PurchaseOrderPartial
	}
}

// AllReceived reports whether every line is fully received
func (po *PurchaseOrder) AllReceived() bool {
	for idx := range po.Items {
		if po.Items[idx].ReceivedQuantity < po.Items[idx].Quantity {
			return false
		}
	}
	return true
}

// RemainingBalance returns the unpaid portion of the order total
func (po *PurchaseOrder) RemainingBalance() decimal.Decimal {
	return po.TotalAmount.Sub(po.PaidAmount)
}

// RecordPayment applies a payment to the order. Payments beyond the
// remaining balance are rejected.
func (po *PurchaseOrder) RecordPayment(amount decimal.Decimal, method, reference string) (*PurchasePayment, error) {
	if po.Status == PurchaseOrderCancelled {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot pay a cancelled order")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if amount.GreaterThan(po.RemainingBalance()) {
		return nil, shared.NewDomainError("OVER_PAYMENT",
			fmt.Sprintf("Payment %s exceeds remaining balance %s", amount.StringFixed(2), po.RemainingBalance().StringFixed(2)))
	}
	payment := PurchasePayment{
		BaseEntity:      shared.NewBaseEntity(),
		PurchaseOrderID: po.ID,
		Amount:          amount,
		Method:          method,
		Reference:       reference,
		PaidAt:          time.Now(),
	}
	po.Payments = append(po.Payments, payment)
	po.PaidAmount = po.PaidAmount.Add(amount)
	po.PaymentStatus = derivePaymentStatus(po.PaidAmount, po.TotalAmount)
	po.UpdatedAt = time.Now()
	return &po.Payments[len(po.Payments)-1], nil
}

// FullyPaid reports whether the order is paid in full
func (po *PurchaseOrder) FullyPaid() bool {
	return po.PaidAmount.GreaterThanOrEqual(po.TotalAmount)
}

// Close terminates the order. Allowed only when every line is fully received
// and the order is fully paid; the error names the unmet condition.
func (po *PurchaseOrder) Close() error {
	if po.Status == PurchaseOrderClosed {
		return shared.NewDomainError("INVALID_STATE", "Order is already closed")
	}
	if po.Status == PurchaseOrderCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cannot close a cancelled order")
	}
	if !po.AllReceived() {
		return shared.NewDomainError("CANNOT_CLOSE", "Cannot close order: items not fully received")
	}
	if !po.FullyPaid() {
		return shared.NewDomainError("CANNOT_CLOSE",
			fmt.Sprintf("Cannot close order: %s still unpaid", po.RemainingBalance().StringFixed(2)))
	}
	now := time.Now()
	po.Status = PurchaseOrderClosed
	po.ClosedAt = &now
	po.UpdatedAt = now
	return nil
}

// Cancel voids an order before any stock has been received
func (po *PurchaseOrder) Cancel() error {
	if po.Status != PurchaseOrderPending && po.Status != PurchaseOrderConfirmed {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot cancel order in status %s", po.Status))
	}
	po.Status = PurchaseOrderCancelled
	po.UpdatedAt = time.Now()
	return nil
}
