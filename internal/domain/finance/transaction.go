package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger row
type TransactionType string

const (
	TransactionIncome        TransactionType = "INCOME"
	TransactionExpense       TransactionType = "EXPENSE"
	TransactionMetalPurchase TransactionType = "METAL_PURCHASE"
	TransactionEmi           TransactionType = "EMI"
)

// IsValid checks if the transaction type is known
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionMetalPurchase, TransactionEmi:
		return true
	}
	return false
}

// Transaction is an immutable financial ledger row. It is created as a side
// effect of order completion or payment recording, always inside the same
// database transaction, and is never mutated afterwards except soft delete.
type Transaction struct {
	shared.ShopAggregateRoot
	Type            TransactionType `gorm:"type:varchar(20);not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Category        string          `gorm:"type:varchar(50)"`
	Description     string          `gorm:"type:varchar(500)"`
	ReferenceType   string          `gorm:"type:varchar(30);index"` // SALES_ORDER, PURCHASE_ORDER, EMI_PAYMENT
	ReferenceID     *uuid.UUID      `gorm:"type:uuid;index"`
	TransactionDate time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// NewTransaction creates a ledger row dated now
func NewTransaction(shopID uuid.UUID, txType TransactionType, amount decimal.Decimal, referenceType string, referenceID *uuid.UUID, description string) (*Transaction, error) {
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown transaction type")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
	}
	return &Transaction{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		Type:              txType,
		Amount:            amount,
		Description:       description,
		ReferenceType:     referenceType,
		ReferenceID:       referenceID,
		TransactionDate:   time.Now(),
	}, nil
}
