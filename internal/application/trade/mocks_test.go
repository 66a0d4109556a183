package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jewelerp/backend/internal/domain/audit"
	"github.com/jewelerp/backend/internal/domain/catalog"
	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/jewelerp/backend/internal/domain/inventory"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/jewelerp/backend/internal/domain/trade"
)

type mockPurchaseOrderRepo struct {
	mock.Mock
}

func (m *mockPurchaseOrderRepo) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*trade.PurchaseOrder, error) {
	args := m.Called(ctx, id, shopID)
	if order, ok := args.Get(0).(*trade.PurchaseOrder); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPurchaseOrderRepo) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	args := m.Called(ctx, shopID, filter)
	if orders, ok := args.Get(0).([]trade.PurchaseOrder); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPurchaseOrderRepo) FindByStatusForShop(ctx context.Context, shopID uuid.UUID, status trade.PurchaseOrderStatus, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	args := m.Called(ctx, shopID, status, filter)
	if orders, ok := args.Get(0).([]trade.PurchaseOrder); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPurchaseOrderRepo) GenerateOrderNumber(ctx context.Context, shopID uuid.UUID) (string, error) {
	args := m.Called(ctx, shopID)
	return args.String(0), args.Error(1)
}

func (m *mockPurchaseOrderRepo) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockPurchaseOrderRepo) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	args := m.Called(ctx, id, shopID)
	return args.Error(0)
}

func (m *mockPurchaseOrderRepo) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockSalesOrderRepo struct {
	mock.Mock
}

func (m *mockSalesOrderRepo) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*trade.SalesOrder, error) {
	args := m.Called(ctx, id, shopID)
	if order, ok := args.Get(0).(*trade.SalesOrder); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSalesOrderRepo) FindByInvoiceForShop(ctx context.Context, invoiceNumber string, shopID uuid.UUID) (*trade.SalesOrder, error) {
	args := m.Called(ctx, invoiceNumber, shopID)
	if order, ok := args.Get(0).(*trade.SalesOrder); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSalesOrderRepo) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, shopID, filter)
	if orders, ok := args.Get(0).([]trade.SalesOrder); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSalesOrderRepo) FindByCustomerForShop(ctx context.Context, customerID, shopID uuid.UUID, filter shared.Filter) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, customerID, shopID, filter)
	if orders, ok := args.Get(0).([]trade.SalesOrder); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSalesOrderRepo) ExistsByInvoiceForShop(ctx context.Context, invoiceNumber string, shopID uuid.UUID) (bool, error) {
	args := m.Called(ctx, invoiceNumber, shopID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSalesOrderRepo) Save(ctx context.Context, order *trade.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockSalesOrderRepo) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	args := m.Called(ctx, id, shopID)
	return args.Error(0)
}

func (m *mockSalesOrderRepo) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockStockItemRepo struct {
	mock.Mock
}

func (m *mockStockItemRepo) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*inventory.StockItem, error) {
	args := m.Called(ctx, id, shopID)
	if item, ok := args.Get(0).(*inventory.StockItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStockItemRepo) FindByTagIDForShop(ctx context.Context, tagID string, shopID uuid.UUID) (*inventory.StockItem, error) {
	args := m.Called(ctx, tagID, shopID)
	if item, ok := args.Get(0).(*inventory.StockItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStockItemRepo) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]inventory.StockItem, error) {
	args := m.Called(ctx, shopID, filter)
	if items, ok := args.Get(0).([]inventory.StockItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStockItemRepo) FindByProductForShop(ctx context.Context, productID, shopID uuid.UUID, status *inventory.StockStatus) ([]inventory.StockItem, error) {
	args := m.Called(ctx, productID, shopID, status)
	if items, ok := args.Get(0).([]inventory.StockItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStockItemRepo) FindAvailableFIFO(ctx context.Context, productID, shopID uuid.UUID, limit int) ([]inventory.StockItem, error) {
	args := m.Called(ctx, productID, shopID, limit)
	if items, ok := args.Get(0).([]inventory.StockItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStockItemRepo) InventoryValueForShop(ctx context.Context, shopID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockStockItemRepo) CountByStatusForShop(ctx context.Context, productID, shopID uuid.UUID, status inventory.StockStatus) (int64, error) {
	args := m.Called(ctx, productID, shopID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStockItemRepo) ExistsByTagIDForShop(ctx context.Context, tagID string, shopID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tagID, shopID)
	return args.Bool(0), args.Error(1)
}

func (m *mockStockItemRepo) Save(ctx context.Context, item *inventory.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockStockItemRepo) SaveAll(ctx context.Context, items []*inventory.StockItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *mockStockItemRepo) TransitionStatus(ctx context.Context, id, shopID uuid.UUID, from, to inventory.StockStatus) error {
	args := m.Called(ctx, id, shopID, from, to)
	return args.Error(0)
}

func (m *mockStockItemRepo) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	args := m.Called(ctx, id, shopID)
	return args.Error(0)
}

type mockTransactionRepo struct {
	mock.Mock
}

func (m *mockTransactionRepo) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*finance.Transaction, error) {
	args := m.Called(ctx, id, shopID)
	if tx, ok := args.Get(0).(*finance.Transaction); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionRepo) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]finance.Transaction, error) {
	args := m.Called(ctx, shopID, filter)
	if txs, ok := args.Get(0).([]finance.Transaction); ok {
		return txs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionRepo) FindByDateRangeForShop(ctx context.Context, shopID uuid.UUID, from, to time.Time, txType *finance.TransactionType) ([]finance.Transaction, error) {
	args := m.Called(ctx, shopID, from, to, txType)
	if txs, ok := args.Get(0).([]finance.Transaction); ok {
		return txs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionRepo) SumByTypeForShop(ctx context.Context, shopID uuid.UUID, txType finance.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, shopID, txType, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
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
	if logs, ok := args.Get(0).([]audit.AuditLog); ok {
		return logs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuditLogRepo) FindByEntityForShop(ctx context.Context, entityID, shopID uuid.UUID) ([]audit.AuditLog, error) {
	args := m.Called(ctx, entityID, shopID)
	if logs, ok := args.Get(0).([]audit.AuditLog); ok {
		return logs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuditLogRepo) Save(ctx context.Context, log *audit.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id, shopID)
	if product, ok := args.Get(0).(*catalog.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) FindByBarcodeForShop(ctx context.Context, barcode string, shopID uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, barcode, shopID)
	if product, ok := args.Get(0).(*catalog.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, shopID, filter)
	if products, ok := args.Get(0).([]catalog.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) ExistsByBarcodeForShop(ctx context.Context, barcode string, shopID uuid.UUID) (bool, error) {
	args := m.Called(ctx, barcode, shopID)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) DeleteForShop(ctx context.Context, id, shopID uuid.UUID) error {
	args := m.Called(ctx, id, shopID)
	return args.Error(0)
}

func (m *mockProductRepo) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockRateRepo struct {
	mock.Mock
}

func (m *mockRateRepo) FindByIDForShop(ctx context.Context, id, shopID uuid.UUID) (*catalog.RateMaster, error) {
	args := m.Called(ctx, id, shopID)
	if rate, ok := args.Get(0).(*catalog.RateMaster); ok {
		return rate, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRateRepo) FindActiveRate(ctx context.Context, shopID uuid.UUID, metal catalog.MetalType, purity string) (*catalog.RateMaster, error) {
	args := m.Called(ctx, shopID, metal, purity)
	if rate, ok := args.Get(0).(*catalog.RateMaster); ok {
		return rate, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRateRepo) FindHistoryForShop(ctx context.Context, shopID uuid.UUID, metal catalog.MetalType, purity string, filter shared.Filter) ([]catalog.RateMaster, error) {
	args := m.Called(ctx, shopID, metal, purity, filter)
	if rates, ok := args.Get(0).([]catalog.RateMaster); ok {
		return rates, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRateRepo) RetireActiveRates(ctx context.Context, shopID uuid.UUID, metal catalog.MetalType, purity string) error {
	args := m.Called(ctx, shopID, metal, purity)
	return args.Error(0)
}

func (m *mockRateRepo) Save(ctx context.Context, rate *catalog.RateMaster) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}
