package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"project-task-api/domain/models"
)

type TaskFilter struct {
	Status      string
	Priority    string
	ProjectID   uuid.UUID
	Title       string
	DueDateFrom *time.Time
	DueDateTo   *time.Time
	WithProject bool
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	List(ctx context.Context, filter TaskFilter, offset, limit int) ([]*models.Task, error)
	Count(ctx context.Context, filter TaskFilter) (int64, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
