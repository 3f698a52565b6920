package serviceimpl

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"project-task-api/domain/models"
	"project-task-api/domain/repositories"
	"project-task-api/pkg/logger"
)

const (
	auditableProjects = "projects"
	auditableTasks    = "tasks"
)

// recordAudit writes an audit entry after the primary mutation has been
// persisted. A failed audit write is logged and never surfaces to the
// caller, so auditing cannot roll back or fail the triggering operation.
func recordAudit(ctx context.Context, repo repositories.AuditRepository, auditableType string, auditableID uuid.UUID, event string, oldValues, newValues map[string]any) {
	entry := &models.AuditLog{
		ID:            uuid.New(),
		AuditableType: auditableType,
		AuditableID:   auditableID,
		Event:         event,
		CreatedAt:     time.Now(),
	}

	if len(oldValues) > 0 {
		if b, err := json.Marshal(oldValues); err == nil {
			entry.OldValues = string(b)
		}
	}
	if len(newValues) > 0 {
		if b, err := json.Marshal(newValues); err == nil {
			entry.NewValues = string(b)
		}
	}

	if err := repo.Create(ctx, entry); err != nil {
		logger.WarnContext(ctx, "Failed to record audit entry",
			"auditable_type", auditableType,
			"auditable_id", auditableID,
			"event", event,
			"error", err,
		)
	}
}

func projectAuditValues(p *models.Project) map[string]any {
	return map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"status":      p.Status,
	}
}

func taskAuditValues(t *models.Task) map[string]any {
	return map[string]any{
		"project_id":  t.ProjectID.String(),
		"title":       t.Title,
		"description": t.Description,
		"status":      t.Status,
		"priority":    t.Priority,
		"due_date":    t.DueDate.Format(time.DateOnly),
	}
}

// diffAuditValues narrows two snapshots down to the fields that changed.
func diffAuditValues(old, updated map[string]any) (map[string]any, map[string]any) {
	oldChanged := make(map[string]any)
	newChanged := make(map[string]any)
	for key, newVal := range updated {
		if oldVal, ok := old[key]; !ok || oldVal != newVal {
			oldChanged[key] = old[key]
			newChanged[key] = newVal
		}
	}
	return oldChanged, newChanged
}
