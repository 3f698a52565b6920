package dto

import (
	"time"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	ID            uuid.UUID      `json:"id"`
	AuditableType string         `json:"auditable_type"`
	AuditableID   uuid.UUID      `json:"auditable_id"`
	Event         string         `json:"event"`
	OldValues     map[string]any `json:"old_values"`
	NewValues     map[string]any `json:"new_values"`
	CreatedAt     time.Time      `json:"created_at"`
}
