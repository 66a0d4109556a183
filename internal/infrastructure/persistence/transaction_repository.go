package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByIDForShop finds a transaction by ID within a shop
func (r *GormTransactionRepository) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*finance.Transaction, error) {
	var tx finance.Transaction
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// FindAllForShop finds transactions with filtering
func (r *GormTransactionRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]finance.Transaction, error) {
	var txs []finance.Transaction
	query := r.db.WithContext(ctx).Model(&finance.Transaction{}).Where("shop_id = ?", shopID)
	if txType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", txType)
	}
	if refType, ok := filter.Filters["reference_type"]; ok {
		query = query.Where("reference_type = ?", refType)
	}
	query = applyFilter(query, filter, TransactionSortFields)
	if err := query.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindByDateRangeForShop finds transactions within a period, optionally by type
func (r *GormTransactionRepository) FindByDateRangeForShop(ctx context.Context, shopID uuid.UUID, from, to time.Time, txType *finance.TransactionType) ([]finance.Transaction, error) {
	var txs []finance.Transaction
	query := r.db.WithContext(ctx).
		Where("shop_id = ? AND transaction_date >= ? AND transaction_date <= ?", shopID, from, to)
	if txType != nil {
		query = query.Where("type = ?", *txType)
	}
	if err := query.Order("transaction_date DESC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// SumByTypeForShop totals transaction amounts of a type within a period
func (r *GormTransactionRepository) SumByTypeForShop(ctx context.Context, shopID uuid.UUID, txType finance.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&finance.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("shop_id = ? AND type = ? AND transaction_date >= ? AND transaction_date <= ?", shopID, txType, from, to).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Save creates a transaction
func (r *GormTransactionRepository) Save(ctx context.Context, tx *finance.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// DeleteForShop soft-deletes a transaction within a shop
func (r *GormTransactionRepository) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		Delete(&finance.Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ finance.TransactionRepository = (*GormTransactionRepository)(nil)
