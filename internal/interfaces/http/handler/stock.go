package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appinventory "github.com/jewelerp/backend/internal/application/inventory"
)

// StockHandler handles stock item endpoints. Stock is created by purchase
// receipt and consumed by sales, so there are no direct write routes here.
type StockHandler struct {
	BaseHandler
	stockService *appinventory.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *appinventory.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// List handles GET /api/v1/stock
func (h *StockHandler) List(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}
	for _, key := range []string{"status", "product_id"} {
		if v := c.Query(key); v != "" {
			filter.Filters[key] = v
		}
	}
	items, err := h.stockService.List(c.Request.Context(), shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Get handles GET /api/v1/stock/:id
func (h *StockHandler) Get(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	resp, err := h.stockService.GetByID(c.Request.Context(), shopID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByTagID handles GET /api/v1/stock/tag/:tag
func (h *StockHandler) GetByTagID(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	resp, err := h.stockService.GetByTagID(c.Request.Context(), shopID, c.Param("tag"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Available handles GET /api/v1/stock/available?product_id=...&limit=5
func (h *StockHandler) Available(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	productID, err := uuid.Parse(c.Query("product_id"))
	if err != nil {
		h.BadRequest(c, "A valid product_id query parameter is required")
		return
	}
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	items, err := h.stockService.FindAvailable(c.Request.Context(), shopID, productID, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// InventoryValue handles GET /api/v1/stock/value
func (h *StockHandler) InventoryValue(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	value, err := h.stockService.InventoryValue(c.Request.Context(), shopID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"inventory_value": value})
}
