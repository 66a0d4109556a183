package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines the interface for ledger persistence.
// Rows are append-only; there is no update operation.
type TransactionRepository interface {
	// FindByIDForShop finds a transaction by ID within a shop
	FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*Transaction, error)

	// FindAllForShop finds transactions with filtering
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]Transaction, error)

	// FindByDateRangeForShop finds transactions within a period, optionally by type
	FindByDateRangeForShop(ctx context.Context, shopID uuid.UUID, from, to time.Time, txType *TransactionType) ([]Transaction, error)

	// SumByTypeForShop totals transaction amounts of a type within a period
	SumByTypeForShop(ctx context.Context, shopID uuid.UUID, txType TransactionType, from, to time.Time) (decimal.Decimal, error)

	// Save creates a transaction
	Save(ctx context.Context, tx *Transaction) error

	// DeleteForShop soft-deletes a transaction within a shop
	DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error
}

// EmiPaymentRepository defines the interface for EMI plan persistence
type EmiPaymentRepository interface {
	// FindByIDForShop loads a plan with its installments
	FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*EmiPayment, error)

	// FindAllForShop finds plans with filtering
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]EmiPayment, error)

	// FindByCustomerForShop finds plans of one customer
	FindByCustomerForShop(ctx context.Context, customerID, shopID uuid.UUID, filter shared.Filter) ([]EmiPayment, error)

	// FindDueForSweep finds plans with any PENDING installment due before asOf.
	// Used by the overdue sweep; already OVERDUE rows are not returned.
	FindDueForSweep(ctx context.Context, shopID uuid.UUID, asOf time.Time) ([]EmiPayment, error)

	// Save persists the plan and its installments
	Save(ctx context.Context, plan *EmiPayment) error

	// DeleteForShop soft-deletes a plan within a shop
	DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error
}
