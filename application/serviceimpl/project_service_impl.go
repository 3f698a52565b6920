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

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	auditRepo   repositories.AuditRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository, auditRepo repositories.AuditRepository) services.ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		auditRepo:   auditRepo,
	}
}

func (s *ProjectServiceImpl) ListProjects(ctx context.Context, req *dto.ProjectFilterRequest) ([]*models.Project, int64, error) {
	filter := repositories.ProjectFilter{
		Status:         req.Status,
		Name:           req.Name,
		WithTasksCount: req.WithTasksCount,
		WithTasks:      req.WithTasks,
	}

	var err error
	if filter.CreatedFrom, err = parseOptionalDate(req.CreatedFrom, "created_from"); err != nil {
		return nil, 0, err
	}
	if filter.CreatedTo, err = parseOptionalDate(req.CreatedTo, "created_to"); err != nil {
		return nil, 0, err
	}

	projects, err := s.projectRepo.List(ctx, filter, req.Offset(), req.PerPageOrDefault())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list projects", "error", err)
		return nil, 0, err
	}

	count, err := s.projectRepo.Count(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count projects", "error", err)
		return nil, 0, err
	}

	return projects, count, nil
}

func (s *ProjectServiceImpl) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error) {
	exists, err := s.projectRepo.ExistsByName(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewValidationError("name", "a project with this name already exists")
	}

	project := &models.Project{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		logger.ErrorContext(ctx, "Failed to create project", "name", req.Name, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Project created", "project_id", project.ID, "name", project.Name)

	recordAudit(ctx, s.auditRepo, auditableProjects, project.ID, models.AuditEventCreated, nil, projectAuditValues(project))

	return project, nil
}

func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != project.Name {
		exists, err := s.projectRepo.ExistsByName(ctx, *req.Name, project.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.NewValidationError("name", "a project with this name already exists")
		}
	}

	oldValues := projectAuditValues(project)

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		logger.ErrorContext(ctx, "Failed to update project", "project_id", id, "error", err)
		return nil, err
	}

	fresh, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Project updated", "project_id", id)

	oldChanged, newChanged := diffAuditValues(oldValues, projectAuditValues(fresh))
	if len(newChanged) > 0 {
		recordAudit(ctx, s.auditRepo, auditableProjects, id, models.AuditEventUpdated, oldChanged, newChanged)
	}

	return fresh, nil
}

func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id uuid.UUID) error {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return err
	}

	// Soft delete. The project's tasks stay in place; the cascade FK only
	// fires when the row is physically removed.
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete project", "project_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Project deleted", "project_id", id)

	recordAudit(ctx, s.auditRepo, auditableProjects, id, models.AuditEventDeleted, projectAuditValues(project), nil)

	return nil
}

func (s *ProjectServiceImpl) GetProjectAudits(ctx context.Context, id uuid.UUID, page dto.PageRequest) ([]*models.AuditLog, int64, error) {
	if _, err := s.GetProject(ctx, id); err != nil {
		return nil, 0, err
	}

	entries, err := s.auditRepo.ListByAuditable(ctx, auditableProjects, id, page.Offset(), page.PerPageOrDefault())
	if err != nil {
		return nil, 0, err
	}

	count, err := s.auditRepo.CountByAuditable(ctx, auditableProjects, id)
	if err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}

// parseOptionalDate turns an already format-validated query value into a
// date, keeping nil for absence.
func parseOptionalDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be a valid date in YYYY-MM-DD format")
	}
	return &t, nil
}
