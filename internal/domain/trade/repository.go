package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByIDForShop loads a purchase order with its items and payments
	FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*PurchaseOrder, error)

	// FindAllForShop finds purchase orders with filtering
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByStatusForShop finds purchase orders in a given status
	FindByStatusForShop(ctx context.Context, shopID uuid.UUID, status PurchaseOrderStatus, filter shared.Filter) ([]PurchaseOrder, error)

	// GenerateOrderNumber produces the next order number for a shop
	GenerateOrderNumber(ctx context.Context, shopID uuid.UUID) (string, error)

	// Save persists the order and its items and payments
	Save(ctx context.Context, order *PurchaseOrder) error

	// DeleteForShop soft-deletes a purchase order within a shop
	DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error

	// CountForShop counts purchase orders matching the filter
	CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error)
}

// SalesOrderRepository defines the interface for sales order persistence
type SalesOrderRepository interface {
	// FindByIDForShop loads a sales order with its lines and payments
	FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*SalesOrder, error)

	// FindByInvoiceForShop finds a sales order by invoice number
	FindByInvoiceForShop(ctx context.Context, invoiceNumber string, shopID uuid.UUID) (*SalesOrder, error)

	// FindAllForShop finds sales orders with filtering
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]SalesOrder, error)

	// FindByCustomerForShop finds sales orders of one customer
	FindByCustomerForShop(ctx context.Context, customerID, shopID uuid.UUID, filter shared.Filter) ([]SalesOrder, error)

	// ExistsByInvoiceForShop checks invoice number uniqueness within a shop
	ExistsByInvoiceForShop(ctx context.Context, invoiceNumber string, shopID uuid.UUID) (bool, error)

	// Save persists the order and its lines and payments
	Save(ctx context.Context, order *SalesOrder) error

	// DeleteForShop soft-deletes a sales order within a shop
	DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error

	// CountForShop counts sales orders matching the filter
	CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error)
}
