package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// NextStatus cycles the manual toggle: pending -> in-progress -> completed -> pending.
// Anything unknown is treated as pending.
func NextStatus(s TaskStatus) TaskStatus {
	switch s {
	case TaskStatusInProgress:
		return TaskStatusCompleted
	case TaskStatusCompleted:
		return TaskStatusPending
	default:
		return TaskStatusInProgress
	}
}

type TaskType string

const (
	TaskTypeDaily   TaskType = "daily"
	TaskTypeWeekly  TaskType = "weekly"
	TaskTypeMonthly TaskType = "monthly"
	TaskTypeOneTime TaskType = "one-time"
)

func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeDaily, TaskTypeWeekly, TaskTypeMonthly, TaskTypeOneTime:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task is the sole domain entity. StartDate, DueDate and CompletedAt are
// date-only values pinned to local midnight; CreatedAt and UpdatedAt are
// full timestamps assigned by the store.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Type        TaskType
	Status      TaskStatus
	Priority    TaskPriority
	StartDate   time.Time
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ApplyStatus moves the task to next and maintains the completed_at
// invariant: it is set when the task enters completed (if not already set)
// and cleared when it leaves.
func (t *Task) ApplyStatus(next TaskStatus, today time.Time) {
	entering := next == TaskStatusCompleted && t.Status != TaskStatusCompleted
	leaving := next != TaskStatusCompleted && t.Status == TaskStatusCompleted

	t.Status = next
	if entering && t.CompletedAt == nil {
		day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		t.CompletedAt = &day
	}
	if leaving {
		t.CompletedAt = nil
	}
}

type CreateTaskInput struct {
	Title       string
	Description string
	Type        TaskType
	Status      TaskStatus
	Priority    TaskPriority
	StartDate   *time.Time
	DueDate     *time.Time
}

// UpdateTaskInput carries a partial update. The *Set flags distinguish an
// omitted field from an explicit null that clears the stored value.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Type           *TaskType
	Status         *TaskStatus
	Priority       *TaskPriority
	StartDate      *time.Time
	DueDate        *time.Time
	DueDateSet     bool
}
