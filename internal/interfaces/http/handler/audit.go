package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appaudit "github.com/jewelerp/backend/internal/application/audit"
)

// AuditHandler exposes the audit trail read endpoints
type AuditHandler struct {
	BaseHandler
	auditService *appaudit.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService *appaudit.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List handles GET /api/v1/audit-logs
func (h *AuditHandler) List(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}
	for _, key := range []string{"module", "action", "user_id"} {
		if v := c.Query(key); v != "" {
			filter.Filters[key] = v
		}
	}
	items, err := h.auditService.List(c.Request.Context(), shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// EntityHistory handles GET /api/v1/audit-logs/entity/:entity_id
func (h *AuditHandler) EntityHistory(c *gin.Context) {
	shopID, ok := h.shopID(c)
	if !ok {
		return
	}
	entityID, err := uuid.Parse(c.Param("entity_id"))
	if err != nil {
		h.BadRequest(c, "Invalid entity ID in path")
		return
	}
	items, err := h.auditService.History(c.Request.Context(), shopID, entityID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}
