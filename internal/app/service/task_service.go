package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"progresstracker/internal/core/dates"
	"progresstracker/internal/core/domain"
	"progresstracker/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	publisher      ports.TaskEventPublisher
}

func NewTaskService(taskRepository ports.TaskRepository, publisher ports.TaskEventPublisher) *TaskService {
	return &TaskService{taskRepository: taskRepository, publisher: publisher}
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return s.taskRepository.ListByOwner(ctx, ownerID)
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	now := time.Now()

	task := domain.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Type == "" {
		task.Type = domain.TaskTypeDaily
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}
	if input.StartDate != nil {
		task.StartDate = *input.StartDate
	} else {
		task.StartDate = dates.StartOfDay(now)
	}
	if task.Status == domain.TaskStatusCompleted {
		day := dates.StartOfDay(now)
		task.CompletedAt = &day
	}

	created, err := s.taskRepository.Create(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}
	s.publish(ownerID, domain.EventInsert, created)
	return created, nil
}

func (s *TaskService) PatchTask(ctx context.Context, id, ownerID string, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id, ownerID)
	if err != nil {
		return domain.Task{}, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		if input.Description != nil {
			task.Description = *input.Description
		} else {
			task.Description = ""
		}
	}
	if input.Type != nil {
		task.Type = *input.Type
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.StartDate != nil {
		task.StartDate = *input.StartDate
	}
	if input.DueDateSet {
		task.DueDate = input.DueDate
	}
	if input.Status != nil {
		task.ApplyStatus(*input.Status, time.Now())
	}
	task.UpdatedAt = time.Now()

	updated, err := s.taskRepository.Update(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}
	s.publish(ownerID, domain.EventUpdate, updated)
	return updated, nil
}

func (s *TaskService) ToggleTask(ctx context.Context, id, ownerID string) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id, ownerID)
	if err != nil {
		return domain.Task{}, err
	}

	task.ApplyStatus(domain.NextStatus(task.Status), time.Now())
	task.UpdatedAt = time.Now()

	updated, err := s.taskRepository.Update(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}
	s.publish(ownerID, domain.EventUpdate, updated)
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id, ownerID string) error {
	task, err := s.taskRepository.GetByID(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if err := s.taskRepository.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	s.publish(ownerID, domain.EventDelete, task)
	return nil
}

func (s *TaskService) publish(ownerID string, kind domain.EventKind, task domain.Task) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ownerID, domain.TaskEvent{Kind: kind, Task: task})
}

var _ ports.TaskService = (*TaskService)(nil)
