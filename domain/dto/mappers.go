package dto

import (
	"encoding/json"
	"time"

	"project-task-api/domain/models"
)

func ProjectToProjectResponse(p *models.Project, withTasksCount, withTasks bool) *ProjectResponse {
	resp := &ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if withTasksCount {
		count := p.TasksCount
		resp.TasksCount = &count
	}

	if withTasks {
		resp.Tasks = make([]TaskResponse, len(p.Tasks))
		for i := range p.Tasks {
			resp.Tasks[i] = *TaskToTaskResponse(&p.Tasks[i], false)
		}
	}

	return resp
}

func TaskToTaskResponse(t *models.Task, withProject bool) *TaskResponse {
	resp := &TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate.Format(time.DateOnly),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if withProject && t.Project != nil {
		resp.Project = ProjectToProjectResponse(t.Project, false, false)
	}

	return resp
}

func AuditLogToAuditLogResponse(a *models.AuditLog) *AuditLogResponse {
	resp := &AuditLogResponse{
		ID:            a.ID,
		AuditableType: a.AuditableType,
		AuditableID:   a.AuditableID,
		Event:         a.Event,
		CreatedAt:     a.CreatedAt,
	}

	// Snapshots are written by us, but tolerate bad rows instead of failing a read.
	if a.OldValues != "" {
		_ = json.Unmarshal([]byte(a.OldValues), &resp.OldValues)
	}
	if a.NewValues != "" {
		_ = json.Unmarshal([]byte(a.NewValues), &resp.NewValues)
	}

	return resp
}
