package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusInactive ProjectStatus = "inactive"
)

type Project struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name        string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"size:20;not null;default:'active';index:idx_projects_status_created_at"`
	Tasks       []Task    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"index:idx_projects_status_created_at"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Populated by a count subquery when the caller asks for it, never stored.
	TasksCount int64 `gorm:"->;-:migration"`
}

func (Project) TableName() string {
	return "projects"
}
