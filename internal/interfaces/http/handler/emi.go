package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appfinance "github.com/jewelerp/backend/internal/application/finance"
)

// EmiHandler handles installment plan endpoints
type EmiHandler struct {
	BaseHandler
	emiService *appfinance.EmiService
}

// NewEmiHandler creates a new EmiHandler
func NewEmiHandler(emiService *appfinance.EmiService) *EmiHandler {
	return &EmiHandler{emiService: emiService}
}

// CreatePlan handles POST /api/v1/emi
func (h *EmiHandler) CreatePlan(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	var req appfinance.CreateEmiPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid installment plan payload")
		return
	}
	resp, err := h.emiService.CreatePlan(c.Request.Context(), shopID, h.userID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /api/v1/emi
func (h *EmiHandler) List(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}
	if v := c.Query("status"); v != "" {
		filter.Filters["status"] = v
	}
	items, err := h.emiService.List(c.Request.Context(), shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Get handles GET /api/v1/emi/:id
func (h *EmiHandler) Get(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	resp, err := h.emiService.GetByID(c.Request.Context(), shopID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByCustomer handles GET /api/v1/emi/customer/:customer_id
func (h *EmiHandler) ListByCustomer(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID in path")
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}
	items, err := h.emiService.ListByCustomer(c.Request.Context(), shopID, customerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// PayInstallment handles POST /api/v1/emi/:id/payments
func (h *EmiHandler) PayInstallment(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req appfinance.PayInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid installment payment payload")
		return
	}
	resp, err := h.emiService.PayInstallment(c.Request.Context(), shopID, h.userID(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SweepOverdue handles POST /api/v1/emi/sweep
func (h *EmiHandler) SweepOverdue(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	result, err := h.emiService.SweepOverdue(c.Request.Context(), shopID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
