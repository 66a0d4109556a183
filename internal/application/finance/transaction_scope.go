package finance

import (
	"context"

	"github.com/jewelerp/backend/internal/domain/audit"
	"github.com/jewelerp/backend/internal/domain/finance"
)

// TransactionScope provides transactional access to the finance repositories.
// Each installment payment event commits or rolls back as one database
// transaction.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the finance repositories
// within a transaction
type TransactionalRepositories interface {
	// EmiPaymentRepo returns the EMI plan repository scoped to the current transaction
	EmiPaymentRepo() finance.EmiPaymentRepository
	// TransactionRepo returns the financial ledger repository scoped to the current transaction
	TransactionRepo() finance.TransactionRepository
	// AuditLogRepo returns the audit log repository scoped to the current transaction
	AuditLogRepo() audit.AuditLogRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing with mock repositories.
type NoOpTransactionScope struct {
	emiRepo         finance.EmiPaymentRepository
	transactionRepo finance.TransactionRepository
	auditLogRepo    audit.AuditLogRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	emiRepo finance.EmiPaymentRepository,
	transactionRepo finance.TransactionRepository,
	auditLogRepo audit.AuditLogRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		emiRepo:         emiRepo,
		transactionRepo: transactionRepo,
		auditLogRepo:    auditLogRepo,
	}
}

// Execute runs the function without a real transaction (for testing).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// EmiPaymentRepo returns the EMI plan repository.
func (s *NoOpTransactionScope) EmiPaymentRepo() finance.EmiPaymentRepository {
	return s.emiRepo
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
