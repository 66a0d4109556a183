package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jewelerp/backend/internal/domain/audit"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// GormAuditLogRepository implements AuditLogRepository using GORM
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GormAuditLogRepository
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// FindAllForShop finds audit records with filtering, newest first
func (r *GormAuditLogRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	query := r.db.WithContext(ctx).Model(&audit.AuditLog{}).Where("shop_id = ?", shopID)
	if module, ok := filter.Filters["module"]; ok {
		query = query.Where("module = ?", module)
	}
	if action, ok := filter.Filters["action"]; ok {
		query = query.Where("action = ?", action)
	}
	if userID, ok := filter.Filters["user_id"]; ok {
		query = query.Where("user_id = ?", userID)
	}
	query = query.Order("occurred_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// FindByEntityForShop finds the history of one entity
func (r *GormAuditLogRepository) FindByEntityForShop(ctx context.Context, entityID, shopID uuid.UUID) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	if err := r.db.WithContext(ctx).
		Where("entity_id = ? AND shop_id = ?", entityID, shopID).
		Order("occurred_at DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Save creates an audit record
func (r *GormAuditLogRepository) Save(ctx context.Context, log *audit.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

var _ audit.AuditLogRepository = (*GormAuditLogRepository)(nil)
