package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// ==================== EMI DTOs ====================

// CreateEmiPlanRequest represents a request to create an installment plan
type CreateEmiPlanRequest struct {
	CustomerID           uuid.UUID       `json:"customer_id" binding:"required"`
	SalesOrderID         *uuid.UUID      `json:"sales_order_id"`
	TotalAmount          decimal.Decimal `json:"total_amount" binding:"required"`
	NumberOfInstallments int             `json:"number_of_installments" binding:"required,gt=0"`
	InstallmentAmount    decimal.Decimal `json:"installment_amount" binding:"required"`
	StartDate            time.Time       `json:"start_date"`
}

// PayInstallmentRequest represents a payment against one installment
type PayInstallmentRequest struct {
	InstallmentNumber int             `json:"installment_number" binding:"required,gt=0"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Method            string          `json:"method" binding:"required,min=1,max=30"`
}

// EmiInstallmentResponse represents one installment
type EmiInstallmentResponse struct {
	ID                uuid.UUID       `json:"id"`
	InstallmentNumber int             `json:"installment_number"`
	DueDate           time.Time       `json:"due_date"`
	Amount            decimal.Decimal `json:"amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	Status            string          `json:"status"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
}

// EmiPlanResponse represents an installment plan
type EmiPlanResponse struct {
	ID                   uuid.UUID                `json:"id"`
	CustomerID           uuid.UUID                `json:"customer_id"`
	SalesOrderID         *uuid.UUID               `json:"sales_order_id,omitempty"`
	TotalAmount          decimal.Decimal          `json:"total_amount"`
	RemainingAmount      decimal.Decimal          `json:"remaining_amount"`
	NumberOfInstallments int                      `json:"number_of_installments"`
	InstallmentAmount    decimal.Decimal          `json:"installment_amount"`
	StartDate            time.Time                `json:"start_date"`
	CurrentInstallment   int                      `json:"current_installment"`
	NextInstallmentDate  *time.Time               `json:"next_installment_date,omitempty"`
	Status               string                   `json:"status"`
	Installments         []EmiInstallmentResponse `json:"installments"`
	CreatedAt            time.Time                `json:"created_at"`
}

// ToEmiPlanResponse converts a domain plan to a response
func ToEmiPlanResponse(plan *finance.EmiPayment) EmiPlanResponse {
	resp := EmiPlanResponse{
		ID:                   plan.ID,
		CustomerID:           plan.CustomerID,
		SalesOrderID:         plan.SalesOrderID,
		TotalAmount:          plan.TotalAmount,
		RemainingAmount:      plan.RemainingAmount,
		NumberOfInstallments: plan.NumberOfInstallments,
		InstallmentAmount:    plan.InstallmentAmount,
		StartDate:            plan.StartDate,
		CurrentInstallment:   plan.CurrentInstallment,
		NextInstallmentDate:  plan.NextInstallmentDate,
		Status:               string(plan.Status),
		CreatedAt:            plan.CreatedAt,
	}
	for _, inst := range plan.Installments {
		resp.Installments = append(resp.Installments, EmiInstallmentResponse{
			ID:                inst.ID,
			InstallmentNumber: inst.InstallmentNumber,
			DueDate:           inst.DueDate,
			Amount:            inst.Amount,
			PaidAmount:        inst.PaidAmount,
			Status:            string(inst.Status),
			PaidAt:            inst.PaidAt,
		})
	}
	return resp
}

// SweepResult reports what an overdue sweep changed
type SweepResult struct {
	PlansExamined int `json:"plans_examined"`
	PlansChanged  int `json:"plans_changed"`
}

// ==================== Ledger DTOs ====================

// TransactionResponse represents a ledger row
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category,omitempty"`
	Description     string          `json:"description,omitempty"`
	ReferenceType   string          `json:"reference_type,omitempty"`
	ReferenceID     *uuid.UUID      `json:"reference_id,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// ToTransactionResponse converts a domain transaction to a response
func ToTransactionResponse(tx *finance.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		Type:            string(tx.Type),
		Amount:          tx.Amount,
		Category:        tx.Category,
		Description:     tx.Description,
		ReferenceType:   tx.ReferenceType,
		ReferenceID:     tx.ReferenceID,
		TransactionDate: tx.TransactionDate,
	}
}

// FinancialSummaryResponse aggregates the ledger over a period
type FinancialSummaryResponse struct {
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}
