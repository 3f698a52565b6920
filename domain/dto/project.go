package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty"`
	Status      string `json:"status" validate:"required,oneof=active inactive"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type ProjectFilterRequest struct {
	Status         string `query:"status"`
	Name           string `query:"name"`
	CreatedFrom    string `query:"created_from" validate:"omitempty,datetime=2006-01-02"`
	CreatedTo      string `query:"created_to" validate:"omitempty,datetime=2006-01-02"`
	WithTasksCount bool   `query:"with_tasks_count"`
	WithTasks      bool   `query:"with_tasks"`
	PageRequest
}

type ProjectResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	TasksCount  *int64         `json:"tasks_count,omitempty"`
	Tasks       []TaskResponse `json:"tasks,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
