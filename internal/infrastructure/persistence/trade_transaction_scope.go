package persistence

import (
	"context"

	"gorm.io/gorm"

	apptrade "github.com/jewelerp/backend/internal/application/trade"
	"github.com/jewelerp/backend/internal/domain/audit"
	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/jewelerp/backend/internal/domain/inventory"
	"github.com/jewelerp/backend/internal/domain/trade"
)

// GormTradeTransactionScope implements the trade TransactionScope using GORM
// transactions. Order mutations, stock transitions, ledger rows and audit
// records commit or roll back together.
type GormTradeTransactionScope struct {
	db *gorm.DB
}

// NewGormTradeTransactionScope creates a new GormTradeTransactionScope
func NewGormTradeTransactionScope(db *gorm.DB) *GormTradeTransactionScope {
	return &GormTradeTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormTradeTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTradeRepositories{tx: tx}
		return fn(repos)
	})
}

type gormTradeRepositories struct {
	tx *gorm.DB
}

// PurchaseOrderRepo returns the purchase order repository scoped to the current transaction
func (r *gormTradeRepositories) PurchaseOrderRepo() trade.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

// SalesOrderRepo returns the sales order repository scoped to the current transaction
func (r *gormTradeRepositories) SalesOrderRepo() trade.SalesOrderRepository {
	return NewGormSalesOrderRepository(r.tx)
}

// StockItemRepo returns the stock item repository scoped to the current transaction
func (r *gormTradeRepositories) StockItemRepo() inventory.StockItemRepository {
	return NewGormStockItemRepository(r.tx)
}

// TransactionRepo returns the financial ledger repository scoped to the current transaction
func (r *gormTradeRepositories) TransactionRepo() finance.TransactionRepository {
	return NewGormTransactionRepository(r.tx)
}

// AuditLogRepo returns the audit log repository scoped to the current transaction
func (r *gormTradeRepositories) AuditLogRepo() audit.AuditLogRepository {
	return NewGormAuditLogRepository(r.tx)
}

var _ apptrade.TransactionScope = (*GormTradeTransactionScope)(nil)
var _ apptrade.TransactionalRepositories = (*gormTradeRepositories)(nil)
