package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"project-task-api/domain/apperrors"
	"project-task-api/domain/dto"
	"project-task-api/domain/models"
	"project-task-api/domain/repositories"
)

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format(time.DateOnly)
}

func newTaskService() (*MockTaskRepository, *MockProjectRepository, *MockAuditRepository, *TaskServiceImpl) {
	taskRepo := new(MockTaskRepository)
	projectRepo := new(MockProjectRepository)
	auditRepo := new(MockAuditRepository)
	svc := NewTaskService(taskRepo, projectRepo, auditRepo).(*TaskServiceImpl)
	return taskRepo, projectRepo, auditRepo, svc
}

func TestCreateTask(t *testing.T) {
	taskRepo, projectRepo, auditRepo, svc := newTaskService()

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&models.Project{ID: projectID}, nil)
	taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Task")).Return(nil)

	var recorded *models.AuditLog
	auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.AuditLog")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*models.AuditLog)
		}).
		Return(nil)

	task, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		ProjectID: projectID.String(),
		Title:     "Write spec",
		Status:    "pending",
		Priority:  "high",
		DueDate:   tomorrow(),
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.Equal(t, projectID, task.ProjectID)
	assert.Equal(t, "pending", task.Status)
	assert.Equal(t, "high", task.Priority)

	assert.Equal(t, "tasks", recorded.AuditableType)
	assert.Equal(t, models.AuditEventCreated, recorded.Event)
	assert.Contains(t, recorded.NewValues, `"title":"Write spec"`)

	taskRepo.AssertExpectations(t)
}

func TestCreateTaskDueDateNotAfterToday(t *testing.T) {
	taskRepo, projectRepo, _, svc := newTaskService()

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&models.Project{ID: projectID}, nil)

	for _, dueDate := range []string{
		time.Now().Format(time.DateOnly),
		time.Now().AddDate(0, 0, -1).Format(time.DateOnly),
	} {
		task, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
			ProjectID: projectID.String(),
			Title:     "Write spec",
			Status:    "pending",
			Priority:  "high",
			DueDate:   dueDate,
		})

		assert.Nil(t, task)

		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "due_date")
	}

	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTaskProjectDoesNotExist(t *testing.T) {
	taskRepo, projectRepo, _, svc := newTaskService()

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(nil, gorm.ErrRecordNotFound)

	task, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		ProjectID: projectID.String(),
		Title:     "Write spec",
		Status:    "pending",
		Priority:  "high",
		DueDate:   tomorrow(),
	})

	assert.Nil(t, task)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "project_id")

	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetTaskNotFound(t *testing.T) {
	taskRepo, _, _, svc := newTaskService()

	id := uuid.New()
	taskRepo.On("GetByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	task, err := svc.GetTask(context.Background(), id)

	assert.Nil(t, task)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestUpdateTaskPartial(t *testing.T) {
	taskRepo, _, auditRepo, svc := newTaskService()

	id := uuid.New()
	projectID := uuid.New()
	due, _ := time.Parse(time.DateOnly, tomorrow())
	existing := &models.Task{ID: id, ProjectID: projectID, Title: "Write spec", Status: "pending", Priority: "high", DueDate: due}
	fresh := &models.Task{ID: id, ProjectID: projectID, Title: "Write spec", Status: "done", Priority: "high", DueDate: due}

	taskRepo.On("GetByID", mock.Anything, id).Return(existing, nil).Once()
	taskRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Task")).Return(nil)
	taskRepo.On("GetByID", mock.Anything, id).Return(fresh, nil).Once()

	var recorded *models.AuditLog
	auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.AuditLog")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*models.AuditLog)
		}).
		Return(nil)

	status := "done"
	updated, err := svc.UpdateTask(context.Background(), id, &dto.UpdateTaskRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, "done", updated.Status)
	assert.Equal(t, "Write spec", updated.Title)

	assert.Equal(t, models.AuditEventUpdated, recorded.Event)
	assert.Contains(t, recorded.OldValues, `"status":"pending"`)
	assert.Contains(t, recorded.NewValues, `"status":"done"`)
	assert.NotContains(t, recorded.NewValues, `"title"`)
}

func TestUpdateTaskPastDueDateRejected(t *testing.T) {
	taskRepo, _, _, svc := newTaskService()

	id := uuid.New()
	due, _ := time.Parse(time.DateOnly, tomorrow())
	existing := &models.Task{ID: id, ProjectID: uuid.New(), Title: "Write spec", Status: "pending", Priority: "high", DueDate: due}

	taskRepo.On("GetByID", mock.Anything, id).Return(existing, nil)

	yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
	updated, err := svc.UpdateTask(context.Background(), id, &dto.UpdateTaskRequest{DueDate: &yesterday})

	assert.Nil(t, updated)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "due_date")

	taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteTask(t *testing.T) {
	taskRepo, _, auditRepo, svc := newTaskService()

	id := uuid.New()
	due, _ := time.Parse(time.DateOnly, tomorrow())
	existing := &models.Task{ID: id, ProjectID: uuid.New(), Title: "Write spec", Status: "pending", Priority: "high", DueDate: due}

	taskRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	taskRepo.On("Delete", mock.Anything, id).Return(nil)

	var recorded *models.AuditLog
	auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.AuditLog")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*models.AuditLog)
		}).
		Return(nil)

	err := svc.DeleteTask(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, models.AuditEventDeleted, recorded.Event)
	assert.Contains(t, recorded.OldValues, `"title":"Write spec"`)

	taskRepo.AssertExpectations(t)
}

func TestListTasksBuildsFilter(t *testing.T) {
	taskRepo, _, _, svc := newTaskService()

	projectID := uuid.New()
	expectedFrom, _ := time.Parse(time.DateOnly, "2025-06-01")
	expected := repositories.TaskFilter{
		Status:      "pending",
		Priority:    "high",
		ProjectID:   projectID,
		Title:       "spec",
		DueDateFrom: &expectedFrom,
		WithProject: true,
	}

	taskRepo.On("List", mock.Anything, expected, 0, dto.DefaultPerPage).Return([]*models.Task{}, nil)
	taskRepo.On("Count", mock.Anything, expected).Return(int64(0), nil)

	_, _, err := svc.ListTasks(context.Background(), &dto.TaskFilterRequest{
		Status:      "pending",
		Priority:    "high",
		ProjectID:   projectID.String(),
		Title:       "spec",
		DueDateFrom: "2025-06-01",
		WithProject: true,
	})

	assert.NoError(t, err)
	taskRepo.AssertExpectations(t)
}

func TestListTasksInvalidProjectID(t *testing.T) {
	_, _, _, svc := newTaskService()

	_, _, err := svc.ListTasks(context.Background(), &dto.TaskFilterRequest{ProjectID: "not-a-uuid"})

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "project_id")
}
