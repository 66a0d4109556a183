package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appfinance "github.com/jewelerp/backend/internal/application/finance"
	"github.com/jewelerp/backend/internal/domain/finance"
)

// FinanceHandler handles the read side of the financial ledger
type FinanceHandler struct {
	BaseHandler
	transactionService *appfinance.TransactionService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(transactionService *appfinance.TransactionService) *FinanceHandler {
	return &FinanceHandler{transactionService: transactionService}
}

// ListTransactions handles GET /api/v1/transactions
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}

	// With a from/to window the query goes through the date-range path,
	// otherwise it is a plain paginated listing.
	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw != "" || toRaw != "" {
		from, to, ok := h.parsePeriod(c, fromRaw, toRaw)
		if !ok {
			return
		}
		txType, ok := h.parseTransactionType(c)
		if !ok {
			return
		}
		items, err := h.transactionService.ListByPeriod(c.Request.Context(), shopID, from, to, txType)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, items)
		return
	}

	filter, ok := h.listFilter(c)
	if !ok {
		return
	}
	items, err := h.transactionService.List(c.Request.Context(), shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Summary handles GET /api/v1/transactions/summary?from=2025-04-01&to=2025-04-30
func (h *FinanceHandler) Summary(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	from, to, ok := h.parsePeriod(c, c.Query("from"), c.Query("to"))
	if !ok {
		return
	}
	resp, err := h.transactionService.Summary(c.Request.Context(), shopID, from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *FinanceHandler) parsePeriod(c *gin.Context, fromRaw, toRaw string) (time.Time, time.Time, bool) {
	if fromRaw == "" || toRaw == "" {
		h.BadRequest(c, "Both from and to query parameters are required")
		return time.Time{}, time.Time{}, false
	}
	from, err := parseDate(fromRaw)
	if err != nil {
		h.BadRequest(c, "from must be an RFC 3339 timestamp or a YYYY-MM-DD date")
		return time.Time{}, time.Time{}, false
	}
	to, err := parseDate(toRaw)
	if err != nil {
		h.BadRequest(c, "to must be an RFC 3339 timestamp or a YYYY-MM-DD date")
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		h.BadRequest(c, "to must not precede from")
		return time.Time{}, time.Time{}, false
	}
	// A date-only upper bound means "through the end of that day".
	if len(toRaw) == len(time.DateOnly) {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, true
}

func (h *FinanceHandler) parseTransactionType(c *gin.Context) (*finance.TransactionType, bool) {
	raw := c.Query("type")
	if raw == "" {
		return nil, true
	}
	txType := finance.TransactionType(raw)
	if !txType.IsValid() {
		h.BadRequest(c, "Unknown transaction type")
		return nil, false
	}
	return &txType, true
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}
