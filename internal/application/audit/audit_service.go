package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jewelerp/backend/internal/domain/audit"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// AuditLogResponse represents an audit record in API responses
type AuditLogResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Action     string     `json:"action"`
	Module     string     `json:"module"`
	EntityID   uuid.UUID  `json:"entity_id"`
	BeforeData string     `json:"before_data,omitempty"`
	AfterData  string     `json:"after_data,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// ToAuditLogResponse converts an audit record to a response DTO
func ToAuditLogResponse(l *audit.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:         l.ID,
		UserID:     l.UserID,
		Action:     string(l.Action),
		Module:     l.Module,
		EntityID:   l.EntityID,
		BeforeData: l.BeforeData,
		AfterData:  l.AfterData,
		OccurredAt: l.OccurredAt,
	}
}

// AuditService exposes the read side of the audit trail. Writes happen
// inside the workflows that cause them.
type AuditService struct {
	auditRepo audit.AuditLogRepository
}

// NewAuditService creates a new AuditService
func NewAuditService(auditRepo audit.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// List retrieves audit records for a shop, newest first
func (s *AuditService) List(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]AuditLogResponse, error) {
	logs, err := s.auditRepo.FindAllForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]AuditLogResponse, 0, len(logs))
	for idx := range logs {
		items = append(items, ToAuditLogResponse(&logs[idx]))
	}
	return items, nil
}

// History retrieves the audit trail of one entity
func (s *AuditService) History(ctx context.Context, shopID, entityID uuid.UUID) ([]AuditLogResponse, error) {
	logs, err := s.auditRepo.FindByEntityForShop(ctx, entityID, shopID)
	if err != nil {
		return nil, err
	}
	items := make([]AuditLogResponse, 0, len(logs))
	for idx := range logs {
		items = append(items, ToAuditLogResponse(&logs[idx]))
	}
	return items, nil
}
