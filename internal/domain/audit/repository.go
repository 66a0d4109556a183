package audit

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// AuditLogRepository defines the interface for audit record persistence.
// Records are append-only.
type AuditLogRepository interface {
	// FindAllForShop finds audit records with filtering, newest first
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]AuditLog, error)

	// FindByEntityForShop finds the history of one entity
	FindByEntityForShop(ctx context.Context, entityID, shopID uuid.UUID) ([]AuditLog, error)

	// Save creates an audit record
	Save(ctx context.Context, log *AuditLog) error
}
