package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-task-api/domain/models"
	"project-task-api/domain/repositories"
)

// Priority is stored as its literal; ordering needs a total order over it.
const priorityOrder = "CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END DESC"

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context, filter repositories.TaskFilter, offset, limit int) ([]*models.Task, error) {
	q := r.filtered(r.db.WithContext(ctx), filter)

	if filter.WithProject {
		q = q.Preload("Project")
	}

	var tasks []*models.Task
	err := q.Order("due_date ASC").
		Order(priorityOrder).
		Offset(offset).Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Count(ctx context.Context, filter repositories.TaskFilter) (int64, error) {
	var count int64
	err := r.filtered(r.db.WithContext(ctx).Model(&models.Task{}), filter).
		Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Task{}, "id = ?", id).Error
}

func (r *TaskRepositoryImpl) filtered(q *gorm.DB, filter repositories.TaskFilter) *gorm.DB {
	return q.Scopes(
		filterByExact("status", filter.Status),
		filterByExact("priority", filter.Priority),
		filterByUUID("project_id", filter.ProjectID),
		filterByContains("title", filter.Title),
		filterByDateRange("due_date", filter.DueDateFrom, filter.DueDateTo),
	)
}
