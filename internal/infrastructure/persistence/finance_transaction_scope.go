package persistence

import (
	"context"

	"gorm.io/gorm"

	appfinance "github.com/jewelerp/backend/internal/application/finance"
	"github.com/jewelerp/backend/internal/domain/audit"
	"github.com/jewelerp/backend/internal/domain/finance"
)

// GormFinanceTransactionScope implements the finance TransactionScope using
// GORM transactions
type GormFinanceTransactionScope struct {
	db *gorm.DB
}

// NewGormFinanceTransactionScope creates a new GormFinanceTransactionScope
func NewGormFinanceTransactionScope(db *gorm.DB) *GormFinanceTransactionScope {
	return &GormFinanceTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormFinanceTransactionScope) Execute(ctx context.Context, fn func(repos appfinance.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormFinanceRepositories{tx: tx}
		return fn(repos)
	})
}

type gormFinanceRepositories struct {
	tx *gorm.DB
}

// EmiPaymentRepo returns the EMI plan repository scoped to the current transaction
func (r *gormFinanceRepositories) EmiPaymentRepo() finance.EmiPaymentRepository {
	return NewGormEmiPaymentRepository(r.tx)
}

// TransactionRepo returns the financial ledger repository scoped to the current transaction
func (r *gormFinanceRepositories) TransactionRepo() finance.TransactionRepository {
	return NewGormTransactionRepository(r.tx)
}

// AuditLogRepo returns the audit log repository scoped to the current transaction
func (r *gormFinanceRepositories) AuditLogRepo() audit.AuditLogRepository {
	return NewGormAuditLogRepository(r.tx)
}

var _ appfinance.TransactionScope = (*GormFinanceTransactionScope)(nil)
var _ appfinance.TransactionalRepositories = (*gormFinanceRepositories)(nil)
