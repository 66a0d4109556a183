package handler

import (
	"github.com/gin-gonic/gin"

	apppartner "github.com/jewelerp/backend/internal/application/partner"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *apppartner.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *apppartner.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	var req apppartner.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid customer payload")
		return
	}
	resp, err := h.customerService.Create(c.Request.Context(), shopID, h.userID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /api/v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}
	if v := c.Query("is_blocked"); v != "" {
		filter.Filters["is_blocked"] = v
	}
	result, err := h.customerService.List(c.Request.Context(), shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get handles GET /api/v1/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	resp, err := h.customerService.GetByID(c.Request.Context(), shopID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByPhone handles GET /api/v1/customers/phone/:phone
func (h *CustomerHandler) GetByPhone(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	resp, err := h.customerService.GetByPhone(c.Request.Context(), shopID, c.Param("phone"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req apppartner.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid customer payload")
		return
	}
	resp, err := h.customerService.Update(c.Request.Context(), shopID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Block handles POST /api/v1/customers/:id/block
func (h *CustomerHandler) Block(c *gin.Context) {
	h.setBlocked(c, true)
}

// Unblock handles POST /api/v1/customers/:id/unblock
func (h *CustomerHandler) Unblock(c *gin.Context) {
	h.setBlocked(c, false)
}

func (h *CustomerHandler) setBlocked(c *gin.Context, blocked bool) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	resp, err := h.customerService.SetBlocked(c.Request.Context(), shopID, id, blocked)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /api/v1/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.customerService.Delete(c.Request.Context(), shopID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
