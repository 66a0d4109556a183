package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/jewelerp/backend/internal/domain/inventory"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// TransactionService exposes the financial ledger and period summaries
type TransactionService struct {
	transactionRepo finance.TransactionRepository
	stockRepo       inventory.StockItemRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo finance.TransactionRepository, stockRepo inventory.StockItemRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		stockRepo:       stockRepo,
	}
}

// List retrieves ledger rows with pagination
func (s *TransactionService) List(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]TransactionResponse, error) {
	rows, err := s.transactionRepo.FindAllForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]TransactionResponse, 0, len(rows))
	for idx := range rows {
		items = append(items, ToTransactionResponse(&rows[idx]))
	}
	return items, nil
}

// ListByPeriod retrieves ledger rows within a period, optionally by type
func (s *TransactionService) ListByPeriod(ctx context.Context, shopID uuid.UUID, from, to time.Time, txType *finance.TransactionType) ([]TransactionResponse, error) {
	rows, err := s.transactionRepo.FindByDateRangeForShop(ctx, shopID, from, to, txType)
	if err != nil {
		return nil, err
	}
	items := make([]TransactionResponse, 0, len(rows))
	for idx := range rows {
		items = append(items, ToTransactionResponse(&rows[idx]))
	}
	return items, nil
}

// Summary aggregates income, expense and inventory value over a period.
// Inventory value covers AVAILABLE and RESERVED units at purchase cost.
func (s *TransactionService) Summary(ctx context.Context, shopID uuid.UUID, from, to time.Time) (*FinancialSummaryResponse, error) {
	income, err := s.transactionRepo.SumByTypeForShop(ctx, shopID, finance.TransactionIncome, from, to)
	if err != nil {
		return nil, err
	}
	expense, err := s.transactionRepo.SumByTypeForShop(ctx, shopID, finance.TransactionExpense, from, to)
	if err != nil {
		return nil, err
	}
	inventoryValue, err := s.stockRepo.InventoryValueForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return &FinancialSummaryResponse{
		From:           from,
		To:             to,
		TotalIncome:    income,
		TotalExpense:   expense,
		NetAmount:      income.Sub(expense),
		InventoryValue: inventoryValue,
	}, nil
}
