package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-task-api/domain/apperrors"
	"project-task-api/domain/dto"
	"project-task-api/domain/models"
	"project-task-api/domain/repositories"
	"project-task-api/domain/services"
	"project-task-api/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo    repositories.TaskRepository
	projectRepo repositories.ProjectRepository
	auditRepo   repositories.AuditRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, projectRepo repositories.ProjectRepository, auditRepo repositories.AuditRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		auditRepo:   auditRepo,
	}
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, req *dto.TaskFilterRequest) ([]*models.Task, int64, error) {
	filter := repositories.TaskFilter{
		Status:      req.Status,
		Priority:    req.Priority,
		Title:       req.Title,
		WithProject: req.WithProject,
	}

	if req.ProjectID != "" {
		projectID, err := uuid.Parse(req.ProjectID)
		if err != nil {
			return nil, 0, apperrors.NewValidationError("project_id", "must be a valid UUID")
		}
		filter.ProjectID = projectID
	}

	var err error
	if filter.DueDateFrom, err = parseOptionalDate(req.DueDateFrom, "due_date_from"); err != nil {
		return nil, 0, err
	}
	if filter.DueDateTo, err = parseOptionalDate(req.DueDateTo, "due_date_to"); err != nil {
		return nil, 0, err
	}

	tasks, err := s.taskRepo.List(ctx, filter, req.Offset(), req.PerPageOrDefault())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, 0, err
	}

	count, err := s.taskRepo.Count(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count tasks", "error", err)
		return nil, 0, err
	}

	return tasks, count, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	projectID, err := s.resolveProjectID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     dueDate,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "project_id", projectID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "project_id", projectID)

	recordAudit(ctx, s.auditRepo, auditableTasks, task.ID, models.AuditEventCreated, nil, taskAuditValues(task))

	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	oldValues := taskAuditValues(task)

	if req.ProjectID != nil {
		projectID, err := s.resolveProjectID(ctx, *req.ProjectID)
		if err != nil {
			return nil, err
		}
		task.ProjectID = projectID
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = dueDate
	}

	// The loaded association would otherwise be saved along with the task.
	task.Project = nil

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}

	fresh, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id)

	oldChanged, newChanged := diffAuditValues(oldValues, taskAuditValues(fresh))
	if len(newChanged) > 0 {
		recordAudit(ctx, s.auditRepo, auditableTasks, id, models.AuditEventUpdated, oldChanged, newChanged)
	}

	return fresh, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)

	recordAudit(ctx, s.auditRepo, auditableTasks, id, models.AuditEventDeleted, taskAuditValues(task), nil)

	return nil
}

func (s *TaskServiceImpl) GetTaskAudits(ctx context.Context, id uuid.UUID, page dto.PageRequest) ([]*models.AuditLog, int64, error) {
	if _, err := s.GetTask(ctx, id); err != nil {
		return nil, 0, err
	}

	entries, err := s.auditRepo.ListByAuditable(ctx, auditableTasks, id, page.Offset(), page.PerPageOrDefault())
	if err != nil {
		return nil, 0, err
	}

	count, err := s.auditRepo.CountByAuditable(ctx, auditableTasks, id)
	if err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}

// resolveProjectID checks that the referenced project exists and is not
// soft-deleted.
func (s *TaskServiceImpl) resolveProjectID(ctx context.Context, raw string) (uuid.UUID, error) {
	projectID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError("project_id", "must be a valid UUID")
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.NewValidationError("project_id", "the selected project does not exist")
		}
		return uuid.Nil, err
	}

	return projectID, nil
}

// parseDueDate enforces the creation rule: the due date must be strictly
// after today, comparing dates only.
func parseDueDate(value string) (time.Time, error) {
	dueDate, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("due_date", "must be a valid date in YYYY-MM-DD format")
	}

	today, _ := time.Parse(time.DateOnly, time.Now().Format(time.DateOnly))
	if !dueDate.After(today) {
		return time.Time{}, apperrors.NewValidationError("due_date", "must be a date after today")
	}

	return dueDate, nil
}
