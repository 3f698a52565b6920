package repositories

import (
	"context"

	"github.com/google/uuid"

	"project-task-api/domain/models"
)

type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	ListByAuditable(ctx context.Context, auditableType string, auditableID uuid.UUID, offset, limit int) ([]*models.AuditLog, error)
	CountByAuditable(ctx context.Context, auditableType string, auditableID uuid.UUID) (int64, error)
}
