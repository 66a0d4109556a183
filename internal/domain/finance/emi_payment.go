package finance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EmiStatus applies to both a payment plan and its installments
type EmiStatus string

const (
	EmiPending EmiStatus = "PENDING"
	EmiPaid    EmiStatus = "PAID"
	EmiOverdue EmiStatus = "OVERDUE"
)

// EmiPayment is an installment plan against a sale. At all times the sum of
// installment paid amounts plus the remaining amount equals the total amount;
// CurrentInstallment always points at the earliest unpaid installment.
type EmiPayment struct {
	shared.ShopAggregateRoot
	CustomerID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	SalesOrderID         *uuid.UUID      `gorm:"type:uuid;index"`
	TotalAmount          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	RemainingAmount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	NumberOfInstallments int             `gorm:"not null"`
	InstallmentAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	StartDate            time.Time       `gorm:"not null"`
	CurrentInstallment   int             `gorm:"not null;default:1"`
	NextInstallmentDate  *time.Time
	Status               EmiStatus        `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Installments         []EmiInstallment `gorm:"foreignKey:EmiPaymentID"`
}

// TableName returns the table name for GORM
func (EmiPayment) TableName() string {
	return "emi_payments"
}

// EmiInstallment is one due within a payment plan
type EmiInstallment struct {
	shared.BaseEntity
	EmiPaymentID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	InstallmentNumber int             `gorm:"not null"`
	DueDate           time.Time       `gorm:"not null;index"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaidAmount        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Status            EmiStatus       `gorm:"type:varchar(20);not null;default:'PENDING'"`
	PaidAt            *time.Time
}

// TableName returns the table name for GORM
func (EmiInstallment) TableName() string {
	return "emi_installments"
}

// NewEmiPayment creates a plan and generates its schedule: installments
// numbered 1..N, due one month apart starting from startDate.
func NewEmiPayment(shopID, customerID uuid.UUID, salesOrderID *uuid.UUID, totalAmount decimal.Decimal, numberOfInstallments int, installmentAmount decimal.Decimal, startDate time.Time) (*EmiPayment, error) {
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Total amount must be positive")
	}
	if numberOfInstallments <= 0 {
		return nil, shared.NewDomainError("INVALID_INSTALLMENTS", "Number of installments must be positive")
	}
	if installmentAmount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Installment amount must be positive")
	}
	if startDate.IsZero() {
		startDate = time.Now()
	}

	plan := &EmiPayment{
		ShopAggregateRoot:    shared.NewShopAggregateRoot(shopID),
		CustomerID:           customerID,
		SalesOrderID:         salesOrderID,
		TotalAmount:          totalAmount,
		RemainingAmount:      totalAmount,
		NumberOfInstallments: numberOfInstallments,
		InstallmentAmount:    installmentAmount,
		StartDate:            startDate,
		CurrentInstallment:   1,
		Status:               EmiPending,
	}
	for n := 1; n <= numberOfInstallments; n++ {
		due := startDate.AddDate(0, n-1, 0)
		plan.Installments = append(plan.Installments, EmiInstallment{
			BaseEntity:        shared.NewBaseEntity(),
			EmiPaymentID:      plan.ID,
			InstallmentNumber: n,
			DueDate:           due,
			Amount:            installmentAmount,
			PaidAmount:        decimal.Zero,
			Status:            EmiPending,
		})
	}
	first := plan.Installments[0].DueDate
	plan.NextInstallmentDate = &first
	return plan, nil
}

// findInstallment locates an installment by number
func (p *EmiPayment) findInstallment(number int) *EmiInstallment {
	for idx := range p.Installments {
		if p.Installments[idx].InstallmentNumber == number {
			return &p.Installments[idx]
		}
	}
	return nil
}

// ApplyInstallmentPayment records a payment against one installment. The
// installment flips to PAID once covered, the remaining amount decreases by
// the payment, and the plan advances to the next unpaid installment. Each
// call targets exactly one installment.
func (p *EmiPayment) ApplyInstallmentPayment(installmentNumber int, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	inst := p.findInstallment(installmentNumber)
	if inst == nil {
		return shared.ErrNotFound
	}
	if inst.Status == EmiPaid {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Installment %d is already paid", installmentNumber))
	}
	if amount.GreaterThan(p.RemainingAmount) {
		return shared.NewDomainError("OVER_PAYMENT",
			fmt.Sprintf("Payment %s exceeds remaining amount %s", amount.StringFixed(2), p.RemainingAmount.StringFixed(2)))
	}

	now := time.Now()
	inst.PaidAmount = inst.PaidAmount.Add(amount)
	if inst.PaidAmount.GreaterThanOrEqual(inst.Amount) {
		inst.Status = EmiPaid
		inst.PaidAt = &now
	}
	inst.UpdatedAt = now

	p.RemainingAmount = p.RemainingAmount.Sub(amount)
	p.advance()
	if p.RemainingAmount.LessThanOrEqual(decimal.Zero) {
		p.Status = EmiPaid
		p.NextInstallmentDate = nil
	}
	p.UpdatedAt = now
	return nil
}

// advance moves CurrentInstallment to the earliest unpaid installment
func (p *EmiPayment) advance() {
	for idx := range p.Installments {
		if p.Installments[idx].Status != EmiPaid {
			p.CurrentInstallment = p.Installments[idx].InstallmentNumber
			due := p.Installments[idx].DueDate
			p.NextInstallmentDate = &due
			return
		}
	}
	p.CurrentInstallment = p.NumberOfInstallments
	p.NextInstallmentDate = nil
}

// MarkOverdue reclassifies pending installments past their due date and the
// plan itself when its next due date has passed. Idempotent: rows already
// OVERDUE are untouched, and a second run changes nothing.
func (p *EmiPayment) MarkOverdue(asOf time.Time) bool {
	changed := false
	for idx := range p.Installments {
		inst := &p.Installments[idx]
		if inst.Status == EmiPending && inst.DueDate.Before(asOf) {
			inst.Status = EmiOverdue
			inst.UpdatedAt = asOf
			changed = true
		}
	}
	if p.Status == EmiPending && p.NextInstallmentDate != nil && p.NextInstallmentDate.Before(asOf) {
		p.Status = EmiOverdue
		changed = true
	}
	if changed {
		p.UpdatedAt = asOf
	}
	return changed
}
