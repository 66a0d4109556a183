package finance

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/audit"
	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// EmiService handles installment plan operations
type EmiService struct {
	emiRepo finance.EmiPaymentRepository
	txScope TransactionScope
}

// NewEmiService creates a new EmiService
func NewEmiService(emiRepo finance.EmiPaymentRepository, txScope TransactionScope) *EmiService {
	return &EmiService{
		emiRepo: emiRepo,
		txScope: txScope,
	}
}

// CreatePlan creates a plan and its installment schedule
func (s *EmiService) CreatePlan(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, req CreateEmiPlanRequest) (*EmiPlanResponse, error) {
	plan, err := finance.NewEmiPayment(shopID, req.CustomerID, req.SalesOrderID,
		req.TotalAmount, req.NumberOfInstallments, req.InstallmentAmount, req.StartDate)
	if err != nil {
		return nil, err
	}
	plan.CreatedBy = userID

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.EmiPaymentRepo().Save(ctx, plan); err != nil {
			return err
		}
		after, err := json.Marshal(plan)
		if err != nil {
			return err
		}
		return repos.AuditLogRepo().Save(ctx,
			audit.NewAuditLog(shopID, userID, audit.ActionCreate, "emi_payment", plan.ID, "", string(after)))
	})
	if err != nil {
		return nil, err
	}
	resp := ToEmiPlanResponse(plan)
	return &resp, nil
}

// PayInstallment applies a payment to one installment. In one transaction
// the installment and plan balances update and the matching ledger row is
// written.
func (s *EmiService) PayInstallment(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, planID uuid.UUID, req PayInstallmentRequest) (*EmiPlanResponse, error) {
	var resp EmiPlanResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		plan, err := repos.EmiPaymentRepo().FindByIDForShop(ctx, planID, shopID)
		if err != nil {
			return err
		}
		if err := plan.ApplyInstallmentPayment(req.InstallmentNumber, req.Amount); err != nil {
			return err
		}
		if err := repos.EmiPaymentRepo().Save(ctx, plan); err != nil {
			return err
		}

		ledger, err := finance.NewTransaction(shopID, finance.TransactionEmi, req.Amount,
			"EMI_PAYMENT", &plan.ID, fmt.Sprintf("EMI installment %d", req.InstallmentNumber))
		if err != nil {
			return err
		}
		ledger.CreatedBy = userID
		if err := repos.TransactionRepo().Save(ctx, ledger); err != nil {
			return err
		}
		resp = ToEmiPlanResponse(plan)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SweepOverdue reclassifies past-due pending installments across a shop.
// Triggered by an operator or an external scheduler; safe to re-run.
func (s *EmiService) SweepOverdue(ctx context.Context, shopID uuid.UUID) (*SweepResult, error) {
	result := &SweepResult{}
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		now := time.Now()
		plans, err := repos.EmiPaymentRepo().FindDueForSweep(ctx, shopID, now)
		if err != nil {
			return err
		}
		result.PlansExamined = len(plans)
		for idx := range plans {
			plan := &plans[idx]
			if plan.MarkOverdue(now) {
				if err := repos.EmiPaymentRepo().Save(ctx, plan); err != nil {
					return err
				}
				result.PlansChanged++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a plan with its installments
func (s *EmiService) GetByID(ctx context.Context, shopID, planID uuid.UUID) (*EmiPlanResponse, error) {
	plan, err := s.emiRepo.FindByIDForShop(ctx, planID, shopID)
	if err != nil {
		return nil, err
	}
	resp := ToEmiPlanResponse(plan)
	return &resp, nil
}

// List retrieves plans with pagination
func (s *EmiService) List(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]EmiPlanResponse, error) {
	plans, err := s.emiRepo.FindAllForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]EmiPlanResponse, 0, len(plans))
	for idx := range plans {
		items = append(items, ToEmiPlanResponse(&plans[idx]))
	}
	return items, nil
}

// ListByCustomer retrieves one customer's plans
func (s *EmiService) ListByCustomer(ctx context.Context, shopID, customerID uuid.UUID, filter shared.Filter) ([]EmiPlanResponse, error) {
	plans, err := s.emiRepo.FindByCustomerForShop(ctx, customerID, shopID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]EmiPlanResponse, 0, len(plans))
	for idx := range plans {
		items = append(items, ToEmiPlanResponse(&plans[idx]))
	}
	return items, nil
}
