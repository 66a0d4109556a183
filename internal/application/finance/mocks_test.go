package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jewelerp/backend/internal/domain/audit"
	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/jewelerp/backend/internal/domain/shared"
)

type mockEmiRepo struct {
	mock.Mock
}

func (m *mockEmiRepo) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*finance.EmiPayment, error) {
	args := m.Called(ctx, id, shopID)
	var plan *finance.EmiPayment
	if p, ok := args.Get(0).(*finance.EmiPayment); ok {
		plan = p
	}
	return plan, args.Error(1)
}

func (m *mockEmiRepo) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]finance.EmiPayment, error) {
	args := m.Called(ctx, shopID, filter)
	var plans []finance.EmiPayment
	if p, ok := args.Get(0).([]finance.EmiPayment); ok {
		plans = p
	}
	return plans, args.Error(1)
}

func (m *mockEmiRepo) FindByCustomerForShop(ctx context.Context, customerID, shopID uuid.UUID, filter shared.Filter) ([]finance.EmiPayment, error) {
	args := m.Called(ctx, customerID, shopID, filter)
	var plans []finance.EmiPayment
	if p, ok := args.Get(0).([]finance.EmiPayment); ok {
		plans = p
	}
	return plans, args.Error(1)
}

func (m *mockEmiRepo) FindDueForSweep(ctx context.Context, shopID uuid.UUID, asOf time.Time) ([]finance.EmiPayment, error) {
	args := m.Called(ctx, shopID, asOf)
	var plans []finance.EmiPayment
	if p, ok := args.Get(0).([]finance.EmiPayment); ok {
		plans = p
	}
	return plans, args.Error(1)
}

func (m *mockEmiRepo) Save(ctx context.Context, plan *finance.EmiPayment) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *mockEmiRepo) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	args := m.Called(ctx, id, shopID)
	return args.Error(0)
}

type mockTransactionRepo struct {
	mock.Mock
}

func (m *mockTransactionRepo) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*finance.Transaction, error) {
	args := m.Called(ctx, id, shopID)
	var tx *finance.Transaction
	if t, ok := args.Get(0).(*finance.Transaction); ok {
		tx = t
	}
	return tx, args.Error(1)
}

func (m *mockTransactionRepo) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]finance.Transaction, error) {
	args := m.Called(ctx, shopID, filter)
	var txs []finance.Transaction
	if t, ok := args.Get(0).([]finance.Transaction); ok {
		txs = t
	}
	return txs, args.Error(1)
}

func (m *mockTransactionRepo) FindByDateRangeForShop(ctx context.Context, shopID uuid.UUID, from, to time.Time, txType *finance.TransactionType) ([]finance.Transaction, error) {
	args := m.Called(ctx, shopID, from, to, txType)
	var txs []finance.Transaction
	if t, ok := args.Get(0).([]finance.Transaction); ok {
		txs = t
	}
	return txs, args.Error(1)
}

func (m *mockTransactionRepo) SumByTypeForShop(ctx context.Context, shopID uuid.UUID, txType finance.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, shopID, txType, from, to)
	var sum decimal.Decimal
	if s, ok := args.Get(0).(decimal.Decimal); ok {
		sum = s
	}
	return sum, args.Error(1)
}

func (m *mockTransactionRepo) Save(ctx context.Context, tx *finance.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockTransactionRepo) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	args := m.Called(ctx, id, shopID)
	return args.Error(0)
}

type mockAuditLogRepo struct {
	mock.Mock
}

func (m *mockAuditLogRepo) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]audit.AuditLog, error) {
	args := m.Called(ctx, shopID, filter)
	var logs []audit.AuditLog
	if l, ok := args.Get(0).([]audit.AuditLog); ok {
		logs = l
	}
	return logs, args.Error(1)
}

func (m *mockAuditLogRepo) FindByEntityForShop(ctx context.Context, entityID, shopID uuid.UUID) ([]audit.AuditLog, error) {
	args := m.Called(ctx, entityID, shopID)
	var logs []audit.AuditLog
	if l, ok := args.Get(0).([]audit.AuditLog); ok {
		logs = l
	}
	return logs, args.Error(1)
}

func (m *mockAuditLogRepo) Save(ctx context.Context, entry *audit.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

var (
	_ finance.EmiPaymentRepository  = (*mockEmiRepo)(nil)
	_ finance.TransactionRepository = (*mockTransactionRepo)(nil)
	_ audit.AuditLogRepository      = (*mockAuditLogRepo)(nil)
)
