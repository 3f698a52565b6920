package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Project     *Project  `gorm:"foreignKey:ProjectID"`
	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"size:20;not null;default:'pending';index:idx_tasks_status_priority_due_date"`
	Priority    string    `gorm:"size:20;not null;default:'medium';index:idx_tasks_status_priority_due_date"`
	DueDate     time.Time `gorm:"type:date;not null;index:idx_tasks_status_priority_due_date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}
