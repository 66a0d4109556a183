package trade

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jewelerp/backend/internal/domain/finance"
	"github.com/jewelerp/backend/internal/domain/inventory"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/jewelerp/backend/internal/domain/trade"
)

type poFixture struct {
	service   *PurchaseOrderService
	orderRepo *mockPurchaseOrderRepo
	stockRepo *mockStockItemRepo
	txRepo    *mockTransactionRepo
	auditRepo *mockAuditLogRepo
}

func newPoFixture() *poFixture {
	orderRepo := new(mockPurchaseOrderRepo)
	stockRepo := new(mockStockItemRepo)
	txRepo := new(mockTransactionRepo)
	auditRepo := new(mockAuditLogRepo)
	scope := NewNoOpTransactionScope(orderRepo, new(mockSalesOrderRepo), stockRepo, txRepo, auditRepo)
	return &poFixture{
		service:   NewPurchaseOrderService(orderRepo, scope),
		orderRepo: orderRepo,
		stockRepo: stockRepo,
		txRepo:    txRepo,
		auditRepo: auditRepo,
	}
}

func pendingOrder(t *testing.T, shopID uuid.UUID, quantity int, unitCost decimal.Decimal) *trade.PurchaseOrder {
	t.Helper()
	order, err := trade.NewPurchaseOrder(shopID, uuid.New(), "PO-20250101-0001", []trade.PurchaseOrderLineInput{
		{ProductID: uuid.New(), Quantity: quantity, UnitCost: unitCost},
	})
	require.NoError(t, err)
	return order
}

func poDomainCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	return domainErr.Code
}

func TestPurchaseOrderService_Create(t *testing.T) {
	shopID := uuid.New()
	userID := uuid.New()
	ctx := context.Background()

	t.Run("creates a pending order with derived total", func(t *testing.T) {
		f := newPoFixture()
		f.orderRepo.On("GenerateOrderNumber", ctx, shopID).Return("PO-20250101-0001", nil)
		f.orderRepo.On("Save", ctx, mock.AnythingOfType("*trade.PurchaseOrder")).Return(nil)
		f.auditRepo.On("Save", ctx, mock.AnythingOfType("*audit.AuditLog")).Return(nil)

		resp, err := f.service.Create(ctx, shopID, &userID, CreatePurchaseOrderRequest{
			SupplierID: uuid.New(),
			Items: []CreatePurchaseOrderItemInput{
				{ProductID: uuid.New(), Quantity: 10, UnitCost: decimal.NewFromInt(1500)},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "PO-20250101-0001", resp.OrderNumber)
		assert.Equal(t, string(trade.PurchaseOrderPending), resp.Status)
		assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(15000)))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 10, resp.Items[0].PendingQuantity)
		f.orderRepo.AssertExpectations(t)
		f.auditRepo.AssertExpectations(t)
	})

	t.Run("rejects an order without items", func(t *testing.T) {
		f := newPoFixture()
		f.orderRepo.On("GenerateOrderNumber", ctx, shopID).Return("PO-20250101-0002", nil)

		_, err := f.service.Create(ctx, shopID, &userID, CreatePurchaseOrderRequest{
			SupplierID: uuid.New(),
		})

		assert.Equal(t, "EMPTY_ORDER", poDomainCode(t, err))
		f.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPurchaseOrderService_ReceiveStock(t *testing.T) {
	shopID := uuid.New()
	userID := uuid.New()
	ctx := context.Background()

	t.Run("full receipt mints stock and delivers the order", func(t *testing.T) {
		f := newPoFixture()
		order := pendingOrder(t, shopID, 10, decimal.NewFromInt(1500))

		var minted []*inventory.StockItem
		f.orderRepo.On("FindByIDForShop", ctx, order.ID, shopID).Return(order, nil)
		f.stockRepo.On("ExistsByTagIDForShop", ctx, mock.AnythingOfType("string"), shopID).Return(false, nil)
		f.stockRepo.On("SaveAll", ctx, mock.AnythingOfType("[]*inventory.StockItem")).
			Run(func(args mock.Arguments) {
				minted = args.Get(1).([]*inventory.StockItem)
			}).Return(nil)
		f.orderRepo.On("Save", ctx, order).Return(nil)
		f.auditRepo.On("Save", ctx, mock.AnythingOfType("*audit.AuditLog")).Return(nil)

		resp, err := f.service.ReceiveStock(ctx, shopID, &userID, order.ID, ReceiveStockRequest{
			Entries: []ReceiveStockEntry{
				{PurchaseOrderItemID: order.Items[0].ID, Quantity: 10},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, string(trade.PurchaseOrderDelivered), resp.Status)
		assert.Equal(t, 0, resp.Items[0].PendingQuantity)
		require.Len(t, minted, 10)
		for _, item := range minted {
			assert.Equal(t, inventory.StockAvailable, item.Status)
			assert.True(t, item.PurchaseCost.Equal(decimal.NewFromInt(1500)))
			require.NotNil(t, item.PurchaseOrderID)
			assert.Equal(t, order.ID, *item.PurchaseOrderID)
			assert.NotEmpty(t, item.TagID)
		}
	})

	t.Run("partial receipt leaves the order partially delivered", func(t *testing.T) {
		f := newPoFixture()
		order := pendingOrder(t, shopID, 10, decimal.NewFromInt(1500))

		f.orderRepo.On("FindByIDForShop", ctx, order.ID, shopID).Return(order, nil)
		f.stockRepo.On("ExistsByTagIDForShop", ctx, mock.AnythingOfType("string"), shopID).Return(false, nil)
		f.stockRepo.On("SaveAll", ctx, mock.AnythingOfType("[]*inventory.StockItem")).Return(nil)
		f.orderRepo.On("Save", ctx, order).Return(nil)
		f.auditRepo.On("Save", ctx, mock.AnythingOfType("*audit.AuditLog")).Return(nil)

		resp, err := f.service.ReceiveStock(ctx, shopID, &userID, order.ID, ReceiveStockRequest{
			Entries: []ReceiveStockEntry{
				{PurchaseOrderItemID: order.Items[0].ID, Quantity: 4},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, string(trade.PurchaseOrderPartial), resp.Status)
		assert.Equal(t, 6, resp.Items[0].PendingQuantity)
	})

	t.Run("over-receipt is rejected before any stock is minted", func(t *testing.T) {
		f := newPoFixture()
		order := pendingOrder(t, shopID, 10, decimal.NewFromInt(1500))

		f.orderRepo.On("FindByIDForShop", ctx, order.ID, shopID).Return(order, nil)

		_, err := f.service.ReceiveStock(ctx, shopID, &userID, order.ID, ReceiveStockRequest{
			Entries: []ReceiveStockEntry{
				{PurchaseOrderItemID: order.Items[0].ID, Quantity: 11},
			},
		})

		assert.Equal(t, "OVER_RECEIPT", poDomainCode(t, err))
		f.stockRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
		f.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown line is not found", func(t *testing.T) {
		f := newPoFixture()
		order := pendingOrder(t, shopID, 10, decimal.NewFromInt(1500))

		f.orderRepo.On("FindByIDForShop", ctx, order.ID, shopID).Return(order, nil)

		_, err := f.service.ReceiveStock(ctx, shopID, &userID, order.ID, ReceiveStockRequest{
			Entries: []ReceiveStockEntry{
				{PurchaseOrderItemID: uuid.New(), Quantity: 1},
			},
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPurchaseOrderService_RecordPayment(t *testing.T) {
	shopID := uuid.New()
	userID := uuid.New()
	ctx := context.Background()

	t.Run("payment writes the paired expense ledger row", func(t *testing.T) {
		f := newPoFixture()
		order := pendingOrder(t, shopID, 10, decimal.NewFromInt(1500))

		var ledger *finance.Transaction
		f.orderRepo.On("FindByIDForShop", ctx, order.ID, shopID).Return(order, nil)
		f.orderRepo.On("Save", ctx, order).Return(nil)
		f.txRepo.On("Save", ctx, mock.AnythingOfType("*finance.Transaction")).
			Run(func(args mock.Arguments) {
				ledger = args.Get(1).(*finance.Transaction)
			}).Return(nil)

		resp, err := f.service.RecordPayment(ctx, shopID, &userID, order.ID, RecordPaymentRequest{
			Amount: decimal.NewFromInt(5000),
			Method: "UPI",
		})

		require.NoError(t, err)
		assert.True(t, resp.PaidAmount.Equal(decimal.NewFromInt(5000)))
		assert.Equal(t, string(trade.PaymentPartial), resp.PaymentStatus)
		require.NotNil(t, ledger)
		assert.Equal(t, finance.TransactionExpense, ledger.Type)
		assert.True(t, ledger.Amount.Equal(decimal.NewFromInt(5000)))
		assert.Equal(t, "PURCHASE_ORDER", ledger.ReferenceType)
		require.NotNil(t, ledger.ReferenceID)
		assert.Equal(t, order.ID, *ledger.ReferenceID)
	})

	t.Run("payment beyond the balance is rejected without a ledger row", func(t *testing.T) {
		f := newPoFixture()
		order := pendingOrder(t, shopID, 10, decimal.NewFromInt(1500))

		f.orderRepo.On("FindByIDForShop", ctx, order.ID, shopID).Return(order, nil)

		_, err := f.service.RecordPayment(ctx, shopID, &userID, order.ID, RecordPaymentRequest{
			Amount: decimal.NewFromInt(20000),
			Method: "CASH",
		})

		assert.Equal(t, "OVER_PAYMENT", poDomainCode(t, err))
		f.txRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPurchaseOrderService_Close(t *testing.T) {
	shopID := uuid.New()
	userID := uuid.New()
	ctx := context.Background()

	t.Run("closes a fully received and fully paid order", func(t *testing.T) {
		f := newPoFixture()
		order := pendingOrder(t, shopID, 2, decimal.NewFromInt(1000))
		require.NoError(t, order.ReceiveItem(order.Items[0].ID, 2))
		_, err := order.RecordPayment(decimal.NewFromInt(2000), "CASH", "")
		require.NoError(t, err)

		f.orderRepo.On("FindByIDForShop", ctx, order.ID, shopID).Return(order, nil)
		f.orderRepo.On("Save", ctx, order).Return(nil)
		f.auditRepo.On("Save", ctx, mock.AnythingOfType("*audit.AuditLog")).Return(nil)

		resp, err := f.service.Close(ctx, shopID, &userID, order.ID)

		require.NoError(t, err)
		assert.Equal(t, string(trade.PurchaseOrderClosed), resp.Status)
		assert.NotNil(t, resp.ClosedAt)
	})

	t.Run("cannot close with units still pending", func(t *testing.T) {
		f := newPoFixture()
		order := pendingOrder(t, shopID, 2, decimal.NewFromInt(1000))

		f.orderRepo.On("FindByIDForShop", ctx, order.ID, shopID).Return(order, nil)

		_, err := f.service.Close(ctx, shopID, &userID, order.ID)

		assert.Equal(t, "CANNOT_CLOSE", poDomainCode(t, err))
	})

	t.Run("cannot close an unpaid order", func(t *testing.T) {
		f := newPoFixture()
		order := pendingOrder(t, shopID, 2, decimal.NewFromInt(1000))
		require.NoError(t, order.ReceiveItem(order.Items[0].ID, 2))

		f.orderRepo.On("FindByIDForShop", ctx, order.ID, shopID).Return(order, nil)

		_, err := f.service.Close(ctx, shopID, &userID, order.ID)

		assert.Equal(t, "CANNOT_CLOSE", poDomainCode(t, err))
	})
}

func TestPurchaseOrderService_Cancel(t *testing.T) {
	shopID := uuid.New()
	ctx := context.Background()

	t.Run("cancels a pending order", func(t *testing.T) {
		f := newPoFixture()
		order := pendingOrder(t, shopID, 2, decimal.NewFromInt(1000))

		f.orderRepo.On("FindByIDForShop", ctx, order.ID, shopID).Return(order, nil)
		f.orderRepo.On("Save", ctx, order).Return(nil)

		resp, err := f.service.Cancel(ctx, shopID, order.ID)

		require.NoError(t, err)
		assert.Equal(t, string(trade.PurchaseOrderCancelled), resp.Status)
	})

	t.Run("cannot cancel once stock has been received", func(t *testing.T) {
		f := newPoFixture()
		order := pendingOrder(t, shopID, 2, decimal.NewFromInt(1000))
		require.NoError(t, order.ReceiveItem(order.Items[0].ID, 1))

		f.orderRepo.On("FindByIDForShop", ctx, order.ID, shopID).Return(order, nil)

		_, err := f.service.Cancel(ctx, shopID, order.ID)

		assert.Equal(t, "INVALID_STATE", poDomainCode(t, err))
	})

	t.Run("missing order surfaces not found", func(t *testing.T) {
		f := newPoFixture()
		orderID := uuid.New()
		f.orderRepo.On("FindByIDForShop", ctx, orderID, shopID).Return(nil, shared.ErrNotFound)

		_, err := f.service.Cancel(ctx, shopID, orderID)

		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}
