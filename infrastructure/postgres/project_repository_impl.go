package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-task-api/domain/models"
	"project-task-api/domain/repositories"
)

const tasksCountSelect = "projects.*, (SELECT COUNT(*) FROM tasks WHERE tasks.project_id = projects.id) AS tasks_count"

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) repositories.ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Select(tasksCountSelect).
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) List(ctx context.Context, filter repositories.ProjectFilter, offset, limit int) ([]*models.Project, error) {
	q := r.filtered(r.db.WithContext(ctx), filter)

	if filter.WithTasksCount {
		q = q.Select(tasksCountSelect)
	}
	if filter.WithTasks {
		q = q.Preload("Tasks")
	}

	var projects []*models.Project
	err := q.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) Count(ctx context.Context, filter repositories.ProjectFilter) (int64, error) {
	var count int64
	err := r.filtered(r.db.WithContext(ctx).Model(&models.Project{}), filter).
		Count(&count).Error
	return count, err
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// Soft delete; the cascade FK on tasks only fires on physical removal.
	return r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id).Error
}

func (r *ProjectRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("name = ?", name)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *ProjectRepositoryImpl) filtered(q *gorm.DB, filter repositories.ProjectFilter) *gorm.DB {
	return q.Scopes(
		filterByExact("status", filter.Status),
		filterByContains("name", filter.Name),
		filterByDateRange("created_at", filter.CreatedFrom, filter.CreatedTo),
	)
}
