package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// Action classifies what happened to an entity
type Action string

const (
	ActionCreate       Action = "CREATE"
	ActionUpdate       Action = "UPDATE"
	ActionDelete       Action = "DELETE"
	ActionStatusChange Action = "STATUS_CHANGE"
)

// AuditLog records one mutation of a tenant-owned entity. Written
// synchronously in the same transaction as the mutation it describes.
type AuditLog struct {
	shared.BaseEntity
	ShopID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	Action     Action     `gorm:"type:varchar(20);not null"`
	Module     string     `gorm:"type:varchar(50);not null;index"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	BeforeData string     `gorm:"type:jsonb"` // JSON snapshot before the mutation
	AfterData  string     `gorm:"type:jsonb"` // JSON snapshot after the mutation
	OccurredAt time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (AuditLog) TableName() string {
	return "audit_logs"
}

// NewAuditLog creates an audit record dated now
func NewAuditLog(shopID uuid.UUID, userID *uuid.UUID, action Action, module string, entityID uuid.UUID, before, after string) *AuditLog {
	return &AuditLog{
		BaseEntity: shared.NewBaseEntity(),
		ShopID:     shopID,
		UserID:     userID,
		Action:     action,
		Module:     module,
		EntityID:   entityID,
		BeforeData: before,
		AfterData:  after,
		OccurredAt: time.Now(),
	}
}
