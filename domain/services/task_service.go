package services

import (
	"context"

	"github.com/google/uuid"

	"project-task-api/domain/dto"
	"project-task-api/domain/models"
)

type TaskService interface {
	ListTasks(ctx context.Context, req *dto.TaskFilterRequest) ([]*models.Task, int64, error)
	GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error)
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	GetTaskAudits(ctx context.Context, id uuid.UUID, page dto.PageRequest) ([]*models.AuditLog, int64, error)
}
