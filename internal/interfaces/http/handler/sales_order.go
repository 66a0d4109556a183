package handler

import (
	"github.com/gin-gonic/gin"

	apptrade "github.com/jewelerp/backend/internal/application/trade"
)

// SalesOrderHandler handles the outbound sales workflow
type SalesOrderHandler struct {
	BaseHandler
	soService *apptrade.SalesOrderService
}

// NewSalesOrderHandler creates a new SalesOrderHandler
func NewSalesOrderHandler(soService *apptrade.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{soService: soService}
}

// Create handles POST /api/v1/sales-orders
func (h *SalesOrderHandler) Create(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	var req apptrade.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid sales order payload")
		return
	}
	resp, err := h.soService.Create(c.Request.Context(), shopID, h.userID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /api/v1/sales-orders
func (h *SalesOrderHandler) List(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}
	for _, key := range []string{"status", "customer_id"} {
		if v := c.Query(key); v != "" {
			filter.Filters[key] = v
		}
	}
	result, err := h.soService.List(c.Request.Context(), shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get handles GET /api/v1/sales-orders/:id
func (h *SalesOrderHandler) Get(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	resp, err := h.soService.GetByID(c.Request.Context(), shopID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Complete handles POST /api/v1/sales-orders/:id/complete
func (h *SalesOrderHandler) Complete(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	resp, err := h.soService.Complete(c.Request.Context(), shopID, h.userID(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel handles POST /api/v1/sales-orders/:id/cancel
func (h *SalesOrderHandler) Cancel(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	resp, err := h.soService.Cancel(c.Request.Context(), shopID, h.userID(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RecordPayment handles POST /api/v1/sales-orders/:id/payments
func (h *SalesOrderHandler) RecordPayment(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req apptrade.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid payment payload")
		return
	}
	resp, err := h.soService.RecordPayment(c.Request.Context(), shopID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
