package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func testLines(prices ...int64) []SalesOrderLineInput {
	lines := make([]SalesOrderLineInput, 0, len(prices))
	for _, p := range prices {
		lines = append(lines, SalesOrderLineInput{
			StockItemID: uuid.New(),
			ProductID:   uuid.New(),
			UnitPrice:   decimal.NewFromInt(p),
		})
	}
	return lines
}

func createTestSO(t *testing.T, discount int64, prices ...int64) *SalesOrder {
	if len(prices) == 0 {
		prices = []int64{500}
	}
	so, err := NewSalesOrder(uuid.New(), uuid.New(), "INV-2026-0001", testLines(prices...), decimal.NewFromInt(discount))
	require.NoError(t, err)
	return so
}

// ============================================
// NewSalesOrder Tests
// ============================================

func TestNewSalesOrder(t *testing.T) {
	t.Run("computes totals and applies discount", func(t *testing.T) {
		so := createTestSO(t, 50, 500)
		assert.Equal(t, SalesOrderPending, so.Status)
		assert.True(t, so.OrderTotal.Equal(decimal.NewFromInt(500)))
		assert.True(t, so.FinalAmount.Equal(decimal.NewFromInt(450)))
		assert.Equal(t, PaymentPending, so.PaymentStatus)
	})

	t.Run("sums multiple lines", func(t *testing.T) {
		so := createTestSO(t, 0, 500, 300, 200)
		assert.True(t, so.OrderTotal.Equal(decimal.NewFromInt(1000)))
		assert.Len(t, so.Lines, 3)
	})

	t.Run("discount exceeding total is rejected", func(t *testing.T) {
		_, err := NewSalesOrder(uuid.New(), uuid.New(), "INV-1", testLines(500), decimal.NewFromInt(501))
		require.Error(t, err)
		assert.Equal(t, "DISCOUNT_EXCEEDS_TOTAL", domainCode(t, err))
	})

	t.Run("discount equal to total is allowed", func(t *testing.T) {
		so, err := NewSalesOrder(uuid.New(), uuid.New(), "INV-1", testLines(500), decimal.NewFromInt(500))
		require.NoError(t, err)
		assert.True(t, so.FinalAmount.IsZero())
	})

	t.Run("negative discount is rejected", func(t *testing.T) {
		_, err := NewSalesOrder(uuid.New(), uuid.New(), "INV-1", testLines(500), decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("duplicate stock item across lines is rejected", func(t *testing.T) {
		lines := testLines(100)
		lines = append(lines, SalesOrderLineInput{
			StockItemID: lines[0].StockItemID,
			ProductID:   uuid.New(),
			UnitPrice:   decimal.NewFromInt(200),
		})
		_, err := NewSalesOrder(uuid.New(), uuid.New(), "INV-1", lines, decimal.Zero)
		require.Error(t, err)
		assert.Equal(t, "DUPLICATE_LINE", domainCode(t, err))
	})

	t.Run("empty lines are rejected", func(t *testing.T) {
		_, err := NewSalesOrder(uuid.New(), uuid.New(), "INV-1", nil, decimal.Zero)
		assert.Error(t, err)
	})
}

// ============================================
// Payment Tests
// ============================================

func TestSalesOrder_RecordPayment(t *testing.T) {
	t.Run("payment status derives from paid versus final amount", func(t *testing.T) {
		so := createTestSO(t, 50, 500) // final 450
		_, err := so.RecordPayment(decimal.NewFromInt(200), "CASH", "")
		require.NoError(t, err)
		assert.Equal(t, PaymentPartial, so.PaymentStatus)
		assert.True(t, so.RemainingBalance().Equal(decimal.NewFromInt(250)))

		_, err = so.RecordPayment(decimal.NewFromInt(250), "CARD", "txn-9")
		require.NoError(t, err)
		assert.Equal(t, PaymentPaid, so.PaymentStatus)
	})

	t.Run("over-payment is rejected", func(t *testing.T) {
		so := createTestSO(t, 50, 500)
		_, err := so.RecordPayment(decimal.NewFromInt(451), "CASH", "")
		require.Error(t, err)
		assert.Equal(t, "OVER_PAYMENT", domainCode(t, err))
	})
}

// ============================================
// Lifecycle Tests
// ============================================

func TestSalesOrder_Complete(t *testing.T) {
	t.Run("completes pending order", func(t *testing.T) {
		so := createTestSO(t, 0)
		require.NoError(t, so.Complete())
		assert.Equal(t, SalesOrderCompleted, so.Status)
		assert.NotNil(t, so.CompletedAt)
	})

	t.Run("rejects completing a completed order naming states", func(t *testing.T) {
		so := createTestSO(t, 0)
		require.NoError(t, so.Complete())
		err := so.Complete()
		require.Error(t, err)
		assert.Equal(t, "INVALID_STATE", domainCode(t, err))
		assert.Contains(t, err.Error(), "COMPLETED")
		assert.Contains(t, err.Error(), "PENDING")
	})
}

func TestSalesOrder_Cancel(t *testing.T) {
	t.Run("cancels pending order", func(t *testing.T) {
		so := createTestSO(t, 0)
		require.NoError(t, so.Cancel())
		assert.Equal(t, SalesOrderCancelled, so.Status)
	})

	t.Run("rejects cancelling a completed order", func(t *testing.T) {
		so := createTestSO(t, 0)
		require.NoError(t, so.Complete())
		assert.Error(t, so.Cancel())
	})

	t.Run("rejects payment on a cancelled order", func(t *testing.T) {
		so := createTestSO(t, 0)
		require.NoError(t, so.Cancel())
		_, err := so.RecordPayment(decimal.NewFromInt(10), "CASH", "")
		assert.Error(t, err)
	})
}
