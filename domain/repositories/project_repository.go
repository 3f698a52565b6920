package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"project-task-api/domain/models"
)

// ProjectFilter holds the optional list predicates. Zero values mean
// "no restriction"; every filter narrows the result set independently.
type ProjectFilter struct {
	Status         string
	Name           string
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
	WithTasksCount bool
	WithTasks      bool
}

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	List(ctx context.Context, filter ProjectFilter, offset, limit int) ([]*models.Project, error)
	Count(ctx context.Context, filter ProjectFilter) (int64, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
}
