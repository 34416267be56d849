package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"progresstracker/internal/adapter/http/dto"
	"progresstracker/internal/adapter/http/handlers"
	"progresstracker/internal/adapter/http/middleware"
	"progresstracker/internal/core/domain"
	"progresstracker/pkg/apierrors"
	"progresstracker/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOwnerID = "owner-1"

// ownerMiddleware stands in for the auth middleware in handler tests.
func ownerMiddleware(ownerID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("owner_id", ownerID)
		c.Next()
	}
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) PatchTask(ctx context.Context, id, ownerID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, ownerID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ToggleTask(ctx context.Context, id, ownerID string) (domain.Task, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func newTaskRouter(handler *handlers.TaskHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), ownerMiddleware(testOwnerID))
	group.GET("/tasks", handler.ListTasks)
	group.POST("/tasks", handler.CreateTask)
	group.PATCH("/tasks/:id", handler.PatchTask)
	group.POST("/tasks/:id/toggle", handler.ToggleTask)
	group.DELETE("/tasks/:id", handler.DeleteTask)
	return router
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	startDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	dueDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)
	completedAt := time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)
	createdAt := time.Date(2025, 3, 10, 10, 20, 30, 0, time.UTC)
	updatedAt := time.Date(2025, 3, 12, 11, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, testOwnerID).Return(
		[]domain.Task{
			{
				ID:          "task-1",
				OwnerID:     testOwnerID,
				Title:       "Morning run",
				Description: "5km around the park",
				Type:        domain.TaskTypeDaily,
				Status:      domain.TaskStatusCompleted,
				Priority:    domain.TaskPriorityHigh,
				StartDate:   startDate,
				DueDate:     &dueDate,
				CompletedAt: &completedAt,
				CreatedAt:   createdAt,
				UpdatedAt:   updatedAt,
			},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)

	require.Equal(t, "task-1", got[0].ID)
	require.Equal(t, "Morning run", got[0].Title)
	require.Equal(t, "5km around the park", got[0].Description)
	require.Equal(t, "daily", got[0].Type)
	require.Equal(t, "completed", got[0].Status)
	require.Equal(t, "high", got[0].Priority)
	require.Equal(t, "2025-03-10", got[0].StartDate)
	require.Equal(t, "2025-03-14", *got[0].DueDate)
	require.Equal(t, "2025-03-12", *got[0].CompletedAt)
	require.Equal(t, "2025-03-10T10:20:30Z", got[0].CreatedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, testOwnerID).Return(nil, errors.New("db is down")).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Failed to list tasks", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	startDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	createdAt := time.Date(2025, 3, 10, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, testOwnerID, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Title == "Weekly review" &&
			input.Type == domain.TaskTypeWeekly &&
			input.Priority == domain.TaskPriorityLow &&
			input.Status == domain.TaskStatus("")
	})).Return(
		domain.Task{
			ID:        "task-2",
			OwnerID:   testOwnerID,
			Title:     "Weekly review",
			Type:      domain.TaskTypeWeekly,
			Status:    domain.TaskStatusPending,
			Priority:  domain.TaskPriorityLow,
			StartDate: startDate,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newTaskRouter(handler)

	body := `{"title":"Weekly review","type":"weekly","priority":"low"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "task-2", got.ID)
	require.Equal(t, "weekly", got.Type)
	require.Equal(t, "pending", got.Status)
	require.Nil(t, got.DueDate)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_InvalidType(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := newTaskRouter(handler)

	body := `{"title":"Weekly review","type":"yearly"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusBadRequest, got.ErrDetails.Code)
	require.Equal(t, "Invalid task payload", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MissingTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := newTaskRouter(handler)

	body := `{"description":"no title"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_PatchTask_ClearDueDate(t *testing.T) {
	startDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	createdAt := time.Date(2025, 3, 10, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("PatchTask", mock.Anything, "task-3", testOwnerID, mock.MatchedBy(func(input domain.UpdateTaskInput) bool {
		return input.DueDateSet && input.DueDate == nil && input.Title == nil
	})).Return(
		domain.Task{
			ID:        "task-3",
			OwnerID:   testOwnerID,
			Title:     "Pay rent",
			Type:      domain.TaskTypeMonthly,
			Status:    domain.TaskStatusPending,
			Priority:  domain.TaskPriorityMedium,
			StartDate: startDate,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newTaskRouter(handler)

	body := `{"due_date":null}`
	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/task-3", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Nil(t, got.DueDate)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_PatchTask_EmptyBody(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/task-3", strings.NewReader(`{}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_PatchTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("PatchTask", mock.Anything, "missing", testOwnerID, mock.Anything).
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newTaskRouter(handler)

	body := `{"title":"New title"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/missing", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusNotFound, got.ErrDetails.Code)
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ToggleTask_Success(t *testing.T) {
	startDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	completedAt := time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)
	createdAt := time.Date(2025, 3, 10, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("ToggleTask", mock.Anything, "task-4", testOwnerID).Return(
		domain.Task{
			ID:          "task-4",
			OwnerID:     testOwnerID,
			Title:       "Stretch",
			Type:        domain.TaskTypeDaily,
			Status:      domain.TaskStatusCompleted,
			Priority:    domain.TaskPriorityMedium,
			StartDate:   startDate,
			CompletedAt: &completedAt,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/task-4/toggle", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "completed", got.Status)
	require.Equal(t, "2025-03-12", *got.CompletedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, "task-5", testOwnerID).Return(nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/task-5", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.Bytes())
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, "missing", testOwnerID).Return(domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newTaskRouter(handler)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/missing", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
