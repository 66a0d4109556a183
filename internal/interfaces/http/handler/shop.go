package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/jewelerp/backend/internal/application/identity"
)

// ShopHandler handles super-admin shop management endpoints
type ShopHandler struct {
	BaseHandler
	shopService *appidentity.ShopService
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(shopService *appidentity.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// Create handles POST /api/v1/admin/shops
func (h *ShopHandler) Create(c *gin.Context) {
	var req appidentity.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid shop payload")
		return
	}
	resp, err := h.shopService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /api/v1/admin/shops
func (h *ShopHandler) List(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}
	result, err := h.shopService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get handles GET /api/v1/admin/shops/:id
func (h *ShopHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	resp, err := h.shopService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /api/v1/admin/shops/:id
func (h *ShopHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req appidentity.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid shop payload")
		return
	}
	resp, err := h.shopService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Pause handles POST /api/v1/admin/shops/:id/pause
func (h *ShopHandler) Pause(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	resp, err := h.shopService.Pause(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Resume handles POST /api/v1/admin/shops/:id/resume
func (h *ShopHandler) Resume(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	resp, err := h.shopService.Resume(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetSubscription handles PUT /api/v1/admin/shops/:id/subscription
func (h *ShopHandler) SetSubscription(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req appidentity.SetSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid subscription payload")
		return
	}
	resp, err := h.shopService.SetSubscription(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /api/v1/admin/shops/:id
func (h *ShopHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.shopService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
