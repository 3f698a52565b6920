package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	ProjectID   string `json:"project_id" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty"`
	Status      string `json:"status" validate:"required,oneof=pending in_progress done"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
	DueDate     string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	ProjectID   *string `json:"project_id" validate:"omitempty,uuid"`
	Title       *string `json:"title" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in_progress done"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type TaskFilterRequest struct {
	Status      string `query:"status"`
	Priority    string `query:"priority"`
	ProjectID   string `query:"project_id" validate:"omitempty,uuid"`
	Title       string `query:"title"`
	DueDateFrom string `query:"due_date_from" validate:"omitempty,datetime=2006-01-02"`
	DueDateTo   string `query:"due_date_to" validate:"omitempty,datetime=2006-01-02"`
	WithProject bool   `query:"with_project"`
	PageRequest
}

type TaskResponse struct {
	ID          uuid.UUID        `json:"id"`
	ProjectID   uuid.UUID        `json:"project_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	DueDate     string           `json:"due_date"`
	Project     *ProjectResponse `json:"project,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
