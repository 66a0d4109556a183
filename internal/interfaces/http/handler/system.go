package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jewelerp/backend/internal/infrastructure/persistence"
	"github.com/jewelerp/backend/internal/interfaces/http/dto"
)

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	startedAt time.Time
	version   string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database, version string) *SystemHandler {
	return &SystemHandler{db: db, startedAt: time.Now(), version: version}
}

// Health handles GET /health. Liveness only; no dependencies checked.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.startedAt).String(),
	}))
}

// Ready handles GET /ready. Fails when the database is unreachable.
func (h *SystemHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			"NOT_READY", "Database is unreachable", getRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ready"}))
}
