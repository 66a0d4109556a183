package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/inventory"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockItemResponse represents one physical unit
type StockItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	TagID           string          `json:"tag_id"`
	Barcode         string          `json:"barcode"`
	Status          string          `json:"status"`
	PurchaseCost    decimal.Decimal `json:"purchase_cost"`
	PurchaseDate    time.Time       `json:"purchase_date"`
	SaleDate        *time.Time      `json:"sale_date,omitempty"`
	SalesOrderID    *uuid.UUID      `json:"sales_order_id,omitempty"`
	PurchaseOrderID *uuid.UUID      `json:"purchase_order_id,omitempty"`
	HUID            string          `json:"huid,omitempty"`
}

// ToStockItemResponse converts a domain stock item to a response
func ToStockItemResponse(i *inventory.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:              i.ID,
		ProductID:       i.ProductID,
		TagID:           i.TagID,
		Barcode:         i.Barcode,
		Status:          string(i.Status),
		PurchaseCost:    i.PurchaseCost,
		PurchaseDate:    i.PurchaseDate,
		SaleDate:        i.SaleDate,
		SalesOrderID:    i.SalesOrderID,
		PurchaseOrderID: i.PurchaseOrderID,
		HUID:            i.HUID,
	}
}

// StockService exposes read-side stock ledger operations. Status transitions
// happen only inside trade workflows; this service never moves a unit.
type StockService struct {
	stockRepo inventory.StockItemRepository
}

// NewStockService creates a new StockService
func NewStockService(stockRepo inventory.StockItemRepository) *StockService {
	return &StockService{stockRepo: stockRepo}
}

// GetByID retrieves a stock item by ID
func (s *StockService) GetByID(ctx context.Context, shopID, itemID uuid.UUID) (*StockItemResponse, error) {
	item, err := s.stockRepo.FindByIDForShop(ctx, itemID, shopID)
	if err != nil {
		return nil, err
	}
	resp := ToStockItemResponse(item)
	return &resp, nil
}

// GetByTagID retrieves a stock item by its physical tag
func (s *StockService) GetByTagID(ctx context.Context, shopID uuid.UUID, tagID string) (*StockItemResponse, error) {
	item, err := s.stockRepo.FindByTagIDForShop(ctx, tagID, shopID)
	if err != nil {
		return nil, err
	}
	resp := ToStockItemResponse(item)
	return &resp, nil
}

// List retrieves stock items with filtering
func (s *StockService) List(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]StockItemResponse, error) {
	items, err := s.stockRepo.FindAllForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]StockItemResponse, 0, len(items))
	for idx := range items {
		resp = append(resp, ToStockItemResponse(&items[idx]))
	}
	return resp, nil
}

// FindAvailable returns up to limit AVAILABLE units of a product, oldest
// purchase first, the allocation order when units are otherwise identical
func (s *StockService) FindAvailable(ctx context.Context, shopID, productID uuid.UUID, limit int) ([]StockItemResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	items, err := s.stockRepo.FindAvailableFIFO(ctx, productID, shopID, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]StockItemResponse, 0, len(items))
	for idx := range items {
		resp = append(resp, ToStockItemResponse(&items[idx]))
	}
	return resp, nil
}

// InventoryValue sums purchase cost over AVAILABLE and RESERVED units
func (s *StockService) InventoryValue(ctx context.Context, shopID uuid.UUID) (decimal.Decimal, error) {
	return s.stockRepo.InventoryValueForShop(ctx, shopID)
}
