package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"progresstracker/internal/core/dates"
	"progresstracker/internal/core/domain"
	"progresstracker/internal/core/ports"
)

// Date-only columns are stored as "YYYY-MM-DD" strings and rebuilt from
// their components on read, so a task's calendar day never shifts with the
// session timezone.

const listTasksQuery = `
SELECT * FROM tasks
WHERE owner_id = ?
ORDER BY created_at DESC, id;
`

const getTaskQuery = `
SELECT * FROM tasks
WHERE id = ? AND owner_id = ?;
`

const insertTaskQuery = `
INSERT INTO tasks (id, owner_id, title, description, type, status, priority, start_date, due_date, completed_at, created_at, updated_at)
VALUES (:id, :owner_id, :title, :description, :type, :status, :priority, :start_date, :due_date, :completed_at, :created_at, :updated_at);
`

const updateTaskQuery = `
UPDATE tasks
SET title = :title,
    description = :description,
    type = :type,
    status = :status,
    priority = :priority,
    start_date = :start_date,
    due_date = :due_date,
    completed_at = :completed_at,
    updated_at = :updated_at
WHERE id = :id AND owner_id = :owner_id;
`

const deleteTaskQuery = `
DELETE FROM tasks WHERE id = ? AND owner_id = ?;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string         `db:"id"`
	OwnerID     string         `db:"owner_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Type        string         `db:"type"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	StartDate   string         `db:"start_date"`
	DueDate     sql.NullString `db:"due_date"`
	CompletedAt sql.NullString `db:"completed_at"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery, ownerID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id, ownerID string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	if _, err := r.db.NamedExecContext(ctx, insertTaskQuery, mapDomainTaskToRow(task)); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	result, err := r.db.NamedExecContext(ctx, updateTaskQuery, mapDomainTaskToRow(task))
	if err != nil {
		return domain.Task{}, err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		// The row may exist with identical values; confirm before reporting not found.
		if _, getErr := r.GetByID(ctx, task.ID, task.OwnerID); getErr != nil {
			return domain.Task{}, getErr
		}
	}
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID string) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id, ownerID)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Title:       row.Title,
		Description: row.Description,
		Type:        domain.TaskType(row.Type),
		Status:      domain.TaskStatus(row.Status),
		Priority:    domain.TaskPriority(row.Priority),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if day, ok := dates.ParseDay(row.StartDate); ok {
		task.StartDate = day
	}
	if row.DueDate.Valid {
		if day, ok := dates.ParseDay(row.DueDate.String); ok {
			task.DueDate = &day
		}
	}
	if row.CompletedAt.Valid {
		if day, ok := dates.ParseDay(row.CompletedAt.String); ok {
			task.CompletedAt = &day
		}
	}
	return task
}

func mapDomainTaskToRow(task domain.Task) taskRow {
	row := taskRow{
		ID:          task.ID,
		OwnerID:     task.OwnerID,
		Title:       task.Title,
		Description: task.Description,
		Type:        string(task.Type),
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		StartDate:   dates.FormatDay(task.StartDate),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if task.DueDate != nil {
		row.DueDate = sql.NullString{String: dates.FormatDay(*task.DueDate), Valid: true}
	}
	if task.CompletedAt != nil {
		row.CompletedAt = sql.NullString{String: dates.FormatDay(*task.CompletedAt), Valid: true}
	}
	return row
}
