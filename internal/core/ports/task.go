package ports

import (
	"context"
	"time"

	"progresstracker/internal/core/domain"
	"progresstracker/internal/core/progress"
)

type TaskRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	GetByID(ctx context.Context, id, ownerID string) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type TaskService interface {
	ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error)
	PatchTask(ctx context.Context, id, ownerID string, input domain.UpdateTaskInput) (domain.Task, error)
	ToggleTask(ctx context.Context, id, ownerID string) (domain.Task, error)
	DeleteTask(ctx context.Context, id, ownerID string) error
}

// Dashboard is the aggregate payload behind the dashboard view.
type Dashboard struct {
	Daily    progress.ScopeStats
	Weekly   progress.ScopeStats
	Monthly  progress.ScopeStats
	Overview progress.Overview
}

type ProgressService interface {
	Dashboard(ctx context.Context, ownerID string, now time.Time) (Dashboard, error)
	Calendar(ctx context.Context, ownerID string, year int, month time.Month) (progress.MonthGrid, error)
	Report(ctx context.Context, ownerID string, now time.Time) (progress.Report, error)
}

// TaskEventPublisher fans successful mutations out to change-feed
// subscribers. Publishing must not block the mutating call.
type TaskEventPublisher interface {
	Publish(ownerID string, event domain.TaskEvent)
}
