package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AuditEventCreated = "created"
	AuditEventUpdated = "updated"
	AuditEventDeleted = "deleted"
)

// AuditLog is an append-only record of entity mutations. OldValues and
// NewValues hold JSON snapshots of the tracked fields; update events carry
// only the fields that changed.
type AuditLog struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid"`
	AuditableType string    `gorm:"size:50;not null;index:idx_audit_logs_auditable"`
	AuditableID   uuid.UUID `gorm:"type:uuid;not null;index:idx_audit_logs_auditable"`
	Event         string    `gorm:"size:20;not null"`
	OldValues     string    `gorm:"type:jsonb"`
	NewValues     string    `gorm:"type:jsonb"`
	CreatedAt     time.Time
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
