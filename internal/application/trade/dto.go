package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// ==================== Purchase Order DTOs ====================

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierID uuid.UUID                      `json:"supplier_id" binding:"required"`
	Items      []CreatePurchaseOrderItemInput `json:"items" binding:"required,min=1,dive"`
	Notes      string                         `json:"notes"`
}

// CreatePurchaseOrderItemInput represents an item in the create order request
type CreatePurchaseOrderItemInput struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost" binding:"required"`
}

// ReceiveStockRequest represents stock receipt against a purchase order
type ReceiveStockRequest struct {
	Entries []ReceiveStockEntry `json:"entries" binding:"required,min=1,dive"`
}

// ReceiveStockEntry receives units against one order line. Unit cost defaults
// to the line's ordered cost when omitted.
type ReceiveStockEntry struct {
	PurchaseOrderItemID uuid.UUID        `json:"purchase_order_item_id" binding:"required"`
	Quantity            int              `json:"quantity" binding:"required,gt=0"`
	UnitCost            *decimal.Decimal `json:"unit_cost"`
	HUID                string           `json:"huid"`
}

// RecordPaymentRequest represents a payment against an order
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    string          `json:"method" binding:"required,min=1,max=30"`
	Reference string          `json:"reference"`
}

// PurchaseOrderItemResponse represents one order line
type PurchaseOrderItemResponse struct {
	ID               uuid.UUID       `json:"id"`
	ProductID        uuid.UUID       `json:"product_id"`
	Quantity         int             `json:"quantity"`
	ReceivedQuantity int             `json:"received_quantity"`
	PendingQuantity  int             `json:"pending_quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}

// PaymentResponse represents one payment event
type PaymentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference,omitempty"`
	PaidAt    time.Time       `json:"paid_at"`
}

// PurchaseOrderResponse represents a purchase order
type PurchaseOrderResponse struct {
	ID            uuid.UUID                   `json:"id"`
	OrderNumber   string                      `json:"order_number"`
	SupplierID    uuid.UUID                   `json:"supplier_id"`
	Status        string                      `json:"status"`
	TotalAmount   decimal.Decimal             `json:"total_amount"`
	PaidAmount    decimal.Decimal             `json:"paid_amount"`
	PaymentStatus string                      `json:"payment_status"`
	OrderDate     time.Time                   `json:"order_date"`
	ClosedAt      *time.Time                  `json:"closed_at,omitempty"`
	Notes         string                      `json:"notes,omitempty"`
	Items         []PurchaseOrderItemResponse `json:"items"`
	Payments      []PaymentResponse           `json:"payments"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

// ToPurchaseOrderResponse converts a domain purchase order to a response
func ToPurchaseOrderResponse(po *trade.PurchaseOrder) PurchaseOrderResponse {
	resp := PurchaseOrderResponse{
		ID:            po.ID,
		OrderNumber:   po.OrderNumber,
		SupplierID:    po.SupplierID,
		Status:        string(po.Status),
		TotalAmount:   po.TotalAmount,
		PaidAmount:    po.PaidAmount,
		PaymentStatus: string(po.PaymentStatus),
		OrderDate:     po.OrderDate,
		ClosedAt:      po.ClosedAt,
		Notes:         po.Notes,
		CreatedAt:     po.CreatedAt,
		UpdatedAt:     po.UpdatedAt,
	}
	for _, item := range po.Items {
		resp.Items = append(resp.Items, PurchaseOrderItemResponse{
			ID:               item.ID,
			ProductID:        item.ProductID,
			Quantity:         item.Quantity,
			ReceivedQuantity: item.ReceivedQuantity,
			PendingQuantity:  item.PendingQuantity(),
			UnitCost:         item.UnitCost,
		})
	}
	for _, payment := range po.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:        payment.ID,
			Amount:    payment.Amount,
			Method:    payment.Method,
			Reference: payment.Reference,
			PaidAt:    payment.PaidAt,
		})
	}
	return resp
}

// ==================== Sales Order DTOs ====================

// CreateSalesOrderRequest represents a request to create a sales order.
// Lines reference physical stock items; unit prices are computed by the
// caller from the active rate, not persisted on the stock item.
type CreateSalesOrderRequest struct {
	CustomerID      uuid.UUID                  `json:"customer_id" binding:"required"`
	Lines           []CreateSalesOrderLineItem `json:"lines" binding:"required,min=1,dive"`
	DiscountAmount  decimal.Decimal            `json:"discount_amount"`
	CreateAsPending bool                       `json:"create_as_pending"`
	InitialPayment  *RecordPaymentRequest      `json:"initial_payment"`
	Notes           string                     `json:"notes"`
}

// CreateSalesOrderLineItem references one stock item to sell
type CreateSalesOrderLineItem struct {
	StockItemID uuid.UUID `json:"stock_item_id" binding:"required"`
}

// SalesOrderLineResponse represents one sales order line
type SalesOrderLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	StockItemID uuid.UUID       `json:"stock_item_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// SalesOrderResponse represents a sales order
type SalesOrderResponse struct {
	ID             uuid.UUID                `json:"id"`
	InvoiceNumber  string                   `json:"invoice_number"`
	CustomerID     uuid.UUID                `json:"customer_id"`
	Status         string                   `json:"status"`
	OrderTotal     decimal.Decimal          `json:"order_total"`
	DiscountAmount decimal.Decimal          `json:"discount_amount"`
	FinalAmount    decimal.Decimal          `json:"final_amount"`
	PaidAmount     decimal.Decimal          `json:"paid_amount"`
	PaymentStatus  string                   `json:"payment_status"`
	OrderDate      time.Time                `json:"order_date"`
	CompletedAt    *time.Time               `json:"completed_at,omitempty"`
	Notes          string                   `json:"notes,omitempty"`
	Lines          []SalesOrderLineResponse `json:"lines"`
	Payments       []PaymentResponse        `json:"payments"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// ToSalesOrderResponse converts a domain sales order to a response
func ToSalesOrderResponse(so *trade.SalesOrder) SalesOrderResponse {
	resp := SalesOrderResponse{
		ID:             so.ID,
		InvoiceNumber:  so.InvoiceNumber,
		CustomerID:     so.CustomerID,
		Status:         string(so.Status),
		OrderTotal:     so.OrderTotal,
		DiscountAmount: so.DiscountAmount,
		FinalAmount:    so.FinalAmount,
		PaidAmount:     so.PaidAmount,
		PaymentStatus:  string(so.PaymentStatus),
		OrderDate:      so.OrderDate,
		CompletedAt:    so.CompletedAt,
		Notes:          so.Notes,
		CreatedAt:      so.CreatedAt,
		UpdatedAt:      so.UpdatedAt,
	}
	for _, line := range so.Lines {
		resp.Lines = append(resp.Lines, SalesOrderLineResponse{
			ID:          line.ID,
			StockItemID: line.StockItemID,
			ProductID:   line.ProductID,
			UnitPrice:   line.UnitPrice,
		})
	}
	for _, payment := range so.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:        payment.ID,
			Amount:    payment.Amount,
			Method:    payment.Method,
			Reference: payment.Reference,
			PaidAt:    payment.PaidAt,
		})
	}
	return resp
}
