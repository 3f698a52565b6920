package services

import (
	"context"

	"github.com/google/uuid"

	"project-task-api/domain/dto"
	"project-task-api/domain/models"
)

type ProjectService interface {
	ListProjects(ctx context.Context, req *dto.ProjectFilterRequest) ([]*models.Project, int64, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	GetProjectAudits(ctx context.Context, id uuid.UUID, page dto.PageRequest) ([]*models.AuditLog, int64, error)
}
