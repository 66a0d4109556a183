package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/audit"
	"github.com/jewelerp/backend/internal/domain/catalog"
	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/jewelerp/backend/internal/domain/inventory"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/jewelerp/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// invoiceAttempts bounds collision retries when generating invoice numbers
const invoiceAttempts = 3

// SalesOrderService handles sales order business operations
type SalesOrderService struct {
	orderRepo   trade.SalesOrderRepository
	productRepo catalog.ProductRepository
	rateRepo    catalog.RateMasterRepository
	txScope     TransactionScope
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(
	orderRepo trade.SalesOrderRepository,
	productRepo catalog.ProductRepository,
	rateRepo catalog.RateMasterRepository,
	txScope TransactionScope,
) *SalesOrderService {
	return &SalesOrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		rateRepo:    rateRepo,
		txScope:     txScope,
	}
}

// Create creates a sales order. Each requested stock item must be AVAILABLE;
// unit prices are computed from the active rate for the item's product. In
// one transaction the order and its lines are created, each stock item moves
// to RESERVED (pending) or SOLD (immediate completion), and immediate
// completion writes the income ledger row and any initial payment.
func (s *SalesOrderService) Create(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, req CreateSalesOrderRequest) (*SalesOrderResponse, error) {
	// A payment at creation time belongs to a concluded sale; money against
	// a pending order goes through the payments endpoint once terms settle.
	if req.InitialPayment != nil && req.CreateAsPending {
		return nil, shared.NewDomainError("INVALID_STATE",
			"Initial payment requires immediate completion")
	}

	var resp SalesOrderResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		stockRepo := repos.StockItemRepo()

		// load and validate every unit before creating anything
		items := make([]*inventory.StockItem, 0, len(req.Lines))
		lines := make([]trade.SalesOrderLineInput, 0, len(req.Lines))
		for _, line := range req.Lines {
			item, err := stockRepo.FindByIDForShop(ctx, line.StockItemID, shopID)
			if err != nil {
				return err
			}
			if !item.IsAvailable() {
				return shared.NewDomainError("STOCK_UNAVAILABLE",
					fmt.Sprintf("Stock item %s is %s", item.TagID, item.Status))
			}
			price, rateID, err := s.quotePrice(ctx, shopID, item.ProductID)
			if err != nil {
				return err
			}
			items = append(items, item)
			lines = append(lines, trade.SalesOrderLineInput{
				StockItemID: item.ID,
				ProductID:   item.ProductID,
				UnitPrice:   price,
				RateID:      rateID,
			})
		}

		invoiceNumber, err := s.generateInvoiceNumber(ctx, repos.SalesOrderRepo(), shopID)
		if err != nil {
			return err
		}

		order, err := trade.NewSalesOrder(shopID, req.CustomerID, invoiceNumber, lines, req.DiscountAmount)
		if err != nil {
			return err
		}
		order.Notes = req.Notes
		order.CreatedBy = userID

		if !req.CreateAsPending {
			if err := order.Complete(); err != nil {
				return err
			}
		}
		if req.InitialPayment != nil {
			if _, err := order.RecordPayment(req.InitialPayment.Amount, req.InitialPayment.Method, req.InitialPayment.Reference); err != nil {
				return err
			}
		}
		if err := repos.SalesOrderRepo().Save(ctx, order); err != nil {
			return err
		}

		// conditional transitions catch a concurrent claim of the same unit
		// after our availability read
		now := time.Now()
		for _, item := range items {
			if req.CreateAsPending {
				if err := stockRepo.TransitionStatus(ctx, item.ID, shopID, inventory.StockAvailable, inventory.StockReserved); err != nil {
					return err
				}
				if err := item.Reserve(order.ID); err != nil {
					return err
				}
			} else {
				if err := stockRepo.TransitionStatus(ctx, item.ID, shopID, inventory.StockAvailable, inventory.StockSold); err != nil {
					return err
				}
				if err := item.MarkSold(order.ID, now); err != nil {
					return err
				}
			}
			if err := stockRepo.Save(ctx, item); err != nil {
				return err
			}
		}

		if !req.CreateAsPending {
			if err := s.writeIncome(ctx, repos.TransactionRepo(), order, userID); err != nil {
				return err
			}
		}
		if err := writeAudit(ctx, repos.AuditLogRepo(), shopID, userID, audit.ActionCreate, "sales_order", order.ID, nil, order); err != nil {
			return err
		}
		resp = ToSalesOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Complete finishes a pending order: the order flips to COMPLETED, every
// reserved unit becomes SOLD, and the income ledger row is written. This is
// the only path by which reserved stock becomes sold.
func (s *SalesOrderService) Complete(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, orderID uuid.UUID) (*SalesOrderResponse, error) {
	var resp SalesOrderResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.SalesOrderRepo().FindByIDForShop(ctx, orderID, shopID)
		if err != nil {
			return err
		}
		if err := order.Complete(); err != nil {
			return err
		}
		if err := repos.SalesOrderRepo().Save(ctx, order); err != nil {
			return err
		}

		now := time.Now()
		for _, line := range order.Lines {
			if err := repos.StockItemRepo().TransitionStatus(ctx, line.StockItemID, shopID, inventory.StockReserved, inventory.StockSold); err != nil {
				return err
			}
			item, err := repos.StockItemRepo().FindByIDForShop(ctx, line.StockItemID, shopID)
			if err != nil {
				return err
			}
			item.SaleDate = &now
			if err := repos.StockItemRepo().Save(ctx, item); err != nil {
				return err
			}
		}

		if err := s.writeIncome(ctx, repos.TransactionRepo(), order, userID); err != nil {
			return err
		}
		if err := writeAudit(ctx, repos.AuditLogRepo(), shopID, userID, audit.ActionStatusChange, "sales_order", order.ID,
			map[string]string{"status": string(trade.SalesOrderPending)}, map[string]string{"status": string(order.Status)}); err != nil {
			return err
		}
		resp = ToSalesOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Cancel voids a pending order and releases its reserved units
func (s *SalesOrderService) Cancel(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, orderID uuid.UUID) (*SalesOrderResponse, error) {
	var resp SalesOrderResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.SalesOrderRepo().FindByIDForShop(ctx, orderID, shopID)
		if err != nil {
			return err
		}
		if err := order.Cancel(); err != nil {
			return err
		}
		if err := repos.SalesOrderRepo().Save(ctx, order); err != nil {
			return err
		}
		for _, line := range order.Lines {
			if err := repos.StockItemRepo().TransitionStatus(ctx, line.StockItemID, shopID, inventory.StockReserved, inventory.StockAvailable); err != nil {
				return err
			}
		}
		if err := writeAudit(ctx, repos.AuditLogRepo(), shopID, userID, audit.ActionStatusChange, "sales_order", order.ID,
			map[string]string{"status": string(trade.SalesOrderPending)}, map[string]string{"status": string(order.Status)}); err != nil {
			return err
		}
		resp = ToSalesOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RecordPayment applies a payment to an order
func (s *SalesOrderService) RecordPayment(ctx context.Context, shopID uuid.UUID, orderID uuid.UUID, req RecordPaymentRequest) (*SalesOrderResponse, error) {
	var resp SalesOrderResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.SalesOrderRepo().FindByIDForShop(ctx, orderID, shopID)
		if err != nil {
			return err
		}
		if _, err := order.RecordPayment(req.Amount, req.Method, req.Reference); err != nil {
			return err
		}
		if err := repos.SalesOrderRepo().Save(ctx, order); err != nil {
			return err
		}
		resp = ToSalesOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetByID retrieves a sales order by ID
func (s *SalesOrderService) GetByID(ctx context.Context, shopID, orderID uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForShop(ctx, orderID, shopID)
	if err != nil {
		return nil, err
	}
	resp := ToSalesOrderResponse(order)
	return &resp, nil
}

// List retrieves sales orders with pagination
func (s *SalesOrderService) List(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (*shared.Paginated[SalesOrderResponse], error) {
	orders, err := s.orderRepo.FindAllForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.CountForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]SalesOrderResponse, 0, len(orders))
	for idx := range orders {
		items = append(items, ToSalesOrderResponse(&orders[idx]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// quotePrice derives a unit price from the product's markup and the active
// rate for its metal and purity
func (s *SalesOrderService) quotePrice(ctx context.Context, shopID, productID uuid.UUID) (decimal.Decimal, *uuid.UUID, error) {
	product, err := s.productRepo.FindByIDForShop(ctx, productID, shopID)
	if err != nil {
		return decimal.Decimal{}, nil, err
	}
	rate, err := s.rateRepo.FindActiveRate(ctx, shopID, product.MetalType, product.Purity)
	if err != nil {
		return decimal.Decimal{}, nil, err
	}
	return product.PriceAt(rate.PricePerGram), &rate.ID, nil
}

// generateInvoiceNumber mints a unique invoice number with bounded retry
func (s *SalesOrderService) generateInvoiceNumber(ctx context.Context, repo trade.SalesOrderRepository, shopID uuid.UUID) (string, error) {
	for attempt := 0; attempt < invoiceAttempts; attempt++ {
		candidate := fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:6])
		exists, err := repo.ExistsByInvoiceForShop(ctx, candidate, shopID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", shared.ErrInvoiceCollision
}

// writeIncome appends the income ledger row for a completed order
func (s *SalesOrderService) writeIncome(ctx context.Context, repo finance.TransactionRepository, order *trade.SalesOrder, userID *uuid.UUID) error {
	ledger, err := finance.NewTransaction(order.ShopID, finance.TransactionIncome, order.FinalAmount,
		"SALES_ORDER", &order.ID, fmt.Sprintf("Sale %s", order.InvoiceNumber))
	if err != nil {
		return err
	}
	ledger.CreatedBy = userID
	return repo.Save(ctx, ledger)
}
