package trade

import (
	"context"

	"github.com/jewelerp/backend/internal/domain/audit"
	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/jewelerp/backend/internal/domain/inventory"
	"github.com/jewelerp/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories a trade
// workflow touches. Everything executed inside Execute commits or rolls back
// as one database transaction; an order is never observable with half its
// stock transitions applied.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the trade-side repositories
// within a transaction. All repositories share the same underlying database
// transaction.
//
// Aggregate boundary notes:
//   - PurchaseOrderRepo / SalesOrderRepo persist their aggregate roots with
//     items, lines and payments via association handling.
//   - StockItemRepo is reached from trade workflows because stock receipt and
//     sale must move units in the same transaction as the owning order.
//   - TransactionRepo is append-only; ledger rows pair with the payment or
//     completion that caused them and never exist independently.
//   - AuditLogRepo records the mutation synchronously inside the same
//     transaction.
type TransactionalRepositories interface {
	// PurchaseOrderRepo returns the purchase order repository scoped to the current transaction
	PurchaseOrderRepo() trade.PurchaseOrderRepository
	// SalesOrderRepo returns the sales order repository scoped to the current transaction
	SalesOrderRepo() trade.SalesOrderRepository
	// StockItemRepo returns the stock item repository scoped to the current transaction
	StockItemRepo() inventory.StockItemRepository
	// TransactionRepo returns the financial ledger repository scoped to the current transaction
	TransactionRepo() finance.TransactionRepository
	// AuditLogRepo returns the audit log repository scoped to the current transaction
	AuditLogRepo() audit.AuditLogRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing with mock repositories.
type NoOpTransactionScope struct {
	purchaseOrderRepo trade.PurchaseOrderRepository
	salesOrderRepo    trade.SalesOrderRepository
	stockItemRepo     inventory.StockItemRepository
	transactionRepo   finance.TransactionRepository
	auditLogRepo      audit.AuditLogRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	purchaseOrderRepo trade.PurchaseOrderRepository,
	salesOrderRepo trade.SalesOrderRepository,
	stockItemRepo inventory.StockItemRepository,
	transactionRepo finance.TransactionRepository,
	auditLogRepo audit.AuditLogRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		purchaseOrderRepo: purchaseOrderRepo,
		salesOrderRepo:    salesOrderRepo,
		stockItemRepo:     stockItemRepo,
		transactionRepo:   transactionRepo,
		auditLogRepo:      auditLogRepo,
	}
}

// Execute runs the function without a real transaction (for testing).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PurchaseOrderRepo returns the purchase order repository.
func (s *NoOpTransactionScope) PurchaseOrderRepo() trade.PurchaseOrderRepository {
	return s.purchaseOrderRepo
}

// SalesOrderRepo returns the sales order repository.
func (s *NoOpTransactionScope) SalesOrderRepo() trade.SalesOrderRepository {
	return s.salesOrderRepo
}

// StockItemRepo returns the stock item repository.
func (s *NoOpTransactionScope) StockItemRepo() inventory.StockItemRepository {
	return s.stockItemRepo
}

// TransactionRepo returns the financial ledger repository.
func (s *NoOpTransactionScope) TransactionRepo() finance.TransactionRepository {
	return s.transactionRepo
}

// AuditLogRepo returns the audit log repository.
func (s *NoOpTransactionScope) AuditLogRepo() audit.AuditLogRepository {
	return s.auditLogRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
