package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-task-api/domain/models"
	"project-task-api/domain/repositories"
)

type AuditRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) repositories.AuditRepository {
	return &AuditRepositoryImpl{db: db}
}

func (r *AuditRepositoryImpl) Create(ctx context.Context, entry *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *AuditRepositoryImpl) ListByAuditable(ctx context.Context, auditableType string, auditableID uuid.UUID, offset, limit int) ([]*models.AuditLog, error) {
	var entries []*models.AuditLog
	err := r.db.WithContext(ctx).
		Where("auditable_type = ? AND auditable_id = ?", auditableType, auditableID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *AuditRepositoryImpl) CountByAuditable(ctx context.Context, auditableType string, auditableID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("auditable_type = ? AND auditable_id = ?", auditableType, auditableID).
		Count(&count).Error
	return count, err
}
