package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/jewelerp/backend/internal/application/catalog"
)

// RateHandler handles metal rate endpoints
type RateHandler struct {
	BaseHandler
	rateService *appcatalog.RateService
}

// NewRateHandler creates a new RateHandler
func NewRateHandler(rateService *appcatalog.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// Publish handles POST /api/v1/rates
func (h *RateHandler) Publish(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	var req appcatalog.PublishRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid rate payload")
		return
	}
	resp, err := h.rateService.Publish(c.Request.Context(), shopID, h.userID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Active handles GET /api/v1/rates/active?metal_type=GOLD&purity=22K
func (h *RateHandler) Active(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	metal := c.Query("metal_type")
	purity := c.Query("purity")
	if metal == "" || purity == "" {
		h.BadRequest(c, "metal_type and purity query parameters are required")
		return
	}
	resp, err := h.rateService.GetActive(c.Request.Context(), shopID, metal, purity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// History handles GET /api/v1/rates/history?metal_type=GOLD&purity=22K
func (h *RateHandler) History(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	metal := c.Query("metal_type")
	purity := c.Query("purity")
	if metal == "" || purity == "" {
		h.BadRequest(c, "metal_type and purity query parameters are required")
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}
	items, err := h.rateService.History(c.Request.Context(), shopID, metal, purity, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}
