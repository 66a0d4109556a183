package trade

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/audit"
	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/jewelerp/backend/internal/domain/inventory"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/jewelerp/backend/internal/domain/trade"
)

// tagMintAttempts bounds collision retries when generating tag IDs
const tagMintAttempts = 5

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	orderRepo trade.PurchaseOrderRepository
	txScope   TransactionScope
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(orderRepo trade.PurchaseOrderRepository, txScope TransactionScope) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo: orderRepo,
		txScope:   txScope,
	}
}

// Create creates a new purchase order
func (s *PurchaseOrderService) Create(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	orderNumber, err := s.orderRepo.GenerateOrderNumber(ctx, shopID)
	if err != nil {
		return nil, err
	}

	lines := make([]trade.PurchaseOrderLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, trade.PurchaseOrderLineInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
	}
	order, err := trade.NewPurchaseOrder(shopID, req.SupplierID, orderNumber, lines)
	if err != nil {
		return nil, err
	}
	order.Notes = req.Notes
	order.CreatedBy = userID

	var resp PurchaseOrderResponse
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.PurchaseOrderRepo().Save(ctx, order); err != nil {
			return err
		}
		return writeAudit(ctx, repos.AuditLogRepo(), shopID, userID, audit.ActionCreate, "purchase_order", order.ID, nil, order)
	})
	if err != nil {
		return nil, err
	}
	resp = ToPurchaseOrderResponse(order)
	return &resp, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, shopID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForShop(ctx, orderID, shopID)
	if err != nil {
		return nil, err
	}
	resp := ToPurchaseOrderResponse(order)
	return &resp, nil
}

// List retrieves purchase orders with pagination
func (s *PurchaseOrderService) List(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (*shared.Paginated[PurchaseOrderResponse], error) {
	orders, err := s.orderRepo.FindAllForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.CountForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]PurchaseOrderResponse, 0, len(orders))
	for idx := range orders {
		items = append(items, ToPurchaseOrderResponse(&orders[idx]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Confirm confirms a pending purchase order
func (s *PurchaseOrderService) Confirm(ctx context.Context, shopID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForShop(ctx, orderID, shopID)
	if err != nil {
		return nil, err
	}
	if err := order.Confirm(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	resp := ToPurchaseOrderResponse(order)
	return &resp, nil
}

// ReceiveStock receives units against order lines. In one transaction it
// validates quantities, mints tagged stock items in AVAILABLE status carrying
// only the purchase cost, increments received quantities and recomputes the
// order status.
func (s *PurchaseOrderService) ReceiveStock(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, orderID uuid.UUID, req ReceiveStockRequest) (*PurchaseOrderResponse, error) {
	var resp PurchaseOrderResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.PurchaseOrderRepo().FindByIDForShop(ctx, orderID, shopID)
		if err != nil {
			return err
		}
		before := string(order.Status)

		var minted []*inventory.StockItem
		for _, entry := range req.Entries {
			var line *trade.PurchaseOrderItem
			for idx := range order.Items {
				if order.Items[idx].ID == entry.PurchaseOrderItemID {
					line = &order.Items[idx]
					break
				}
			}
			if line == nil {
				return shared.ErrNotFound
			}

			// over-receipt is rejected here before any stock row exists
			if err := order.ReceiveItem(entry.PurchaseOrderItemID, entry.Quantity); err != nil {
				return err
			}

			unitCost := line.UnitCost
			if entry.UnitCost != nil {
				unitCost = *entry.UnitCost
			}
			for n := 0; n < entry.Quantity; n++ {
				tagID, barcode, err := mintStockTag(ctx, repos.StockItemRepo(), shopID)
				if err != nil {
					return err
				}
				item, err := inventory.NewStockItem(shopID, line.ProductID, tagID, barcode, unitCost, time.Now())
				if err != nil {
					return err
				}
				item.PurchaseOrderID = &order.ID
				item.HUID = entry.HUID
				minted = append(minted, item)
			}
		}

		if err := repos.StockItemRepo().SaveAll(ctx, minted); err != nil {
			return err
		}
		if err := repos.PurchaseOrderRepo().Save(ctx, order); err != nil {
			return err
		}
		if err := writeAudit(ctx, repos.AuditLogRepo(), shopID, userID, audit.ActionStatusChange, "purchase_order", order.ID,
			map[string]string{"status": before}, map[string]string{"status": string(order.Status)}); err != nil {
			return err
		}
		resp = ToPurchaseOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RecordPayment applies a payment and writes the paired expense ledger row.
// The payment and its ledger entry never exist independently of one another.
func (s *PurchaseOrderService) RecordPayment(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, orderID uuid.UUID, req RecordPaymentRequest) (*PurchaseOrderResponse, error) {
	var resp PurchaseOrderResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.PurchaseOrderRepo().FindByIDForShop(ctx, orderID, shopID)
		if err != nil {
			return err
		}
		if _, err := order.RecordPayment(req.Amount, req.Method, req.Reference); err != nil {
			return err
		}
		if err := repos.PurchaseOrderRepo().Save(ctx, order); err != nil {
			return err
		}

		ledger, err := finance.NewTransaction(shopID, finance.TransactionExpense, req.Amount,
			"PURCHASE_ORDER", &order.ID, fmt.Sprintf("Payment for purchase order %s", order.OrderNumber))
		if err != nil {
			return err
		}
		ledger.CreatedBy = userID
		if err := repos.TransactionRepo().Save(ctx, ledger); err != nil {
			return err
		}
		resp = ToPurchaseOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Close closes a fully received and fully paid order
func (s *PurchaseOrderService) Close(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	var resp PurchaseOrderResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.PurchaseOrderRepo().FindByIDForShop(ctx, orderID, shopID)
		if err != nil {
			return err
		}
		before := string(order.Status)
		if err := order.Close(); err != nil {
			return err
		}
		if err := repos.PurchaseOrderRepo().Save(ctx, order); err != nil {
			return err
		}
		if err := writeAudit(ctx, repos.AuditLogRepo(), shopID, userID, audit.ActionStatusChange, "purchase_order", order.ID,
			map[string]string{"status": before}, map[string]string{"status": string(order.Status)}); err != nil {
			return err
		}
		resp = ToPurchaseOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Cancel voids an order before any stock has been received
func (s *PurchaseOrderService) Cancel(ctx context.Context, shopID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForShop(ctx, orderID, shopID)
	if err != nil {
		return nil, err
	}
	if err := order.Cancel(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	resp := ToPurchaseOrderResponse(order)
	return &resp, nil
}

// mintStockTag generates a unique tag ID and barcode for one unit, retrying
// on the rare collision
func mintStockTag(ctx context.Context, repo inventory.StockItemRepository, shopID uuid.UUID) (string, string, error) {
	for attempt := 0; attempt < tagMintAttempts; attempt++ {
		suffix := uuid.New().String()[:8]
		tagID := "TAG-" + suffix
		exists, err := repo.ExistsByTagIDForShop(ctx, tagID, shopID)
		if err != nil {
			return "", "", err
		}
		if !exists {
			return tagID, "SKU-" + suffix, nil
		}
	}
	return "", "", shared.NewDomainError("TAG_COLLISION", "Could not generate a unique stock tag")
}

// writeAudit serializes before/after snapshots and appends an audit record
func writeAudit(ctx context.Context, repo audit.AuditLogRepository, shopID uuid.UUID, userID *uuid.UUID, action audit.Action, module string, entityID uuid.UUID, before, after any) error {
	var beforeJSON, afterJSON string
	if before != nil {
		b, err := json.Marshal(before)
		if err != nil {
			return err
		}
		beforeJSON = string(b)
	}
	if after != nil {
		b, err := json.Marshal(after)
		if err != nil {
			return err
		}
		afterJSON = string(b)
	}
	return repo.Save(ctx, audit.NewAuditLog(shopID, userID, action, module, entityID, beforeJSON, afterJSON))
}
