package service

import (
	"context"
	"time"

	"progresstracker/internal/core/ports"
	"progresstracker/internal/core/progress"
)

// ProgressService recomputes every view from the full task collection on
// each call; the derivations are cheap and keeping them stateless avoids
// any cache-invalidation coupling with the change feed.
type ProgressService struct {
	taskRepository ports.TaskRepository
}

func NewProgressService(taskRepository ports.TaskRepository) *ProgressService {
	return &ProgressService{taskRepository: taskRepository}
}

func (s *ProgressService) Dashboard(ctx context.Context, ownerID string, now time.Time) (ports.Dashboard, error) {
	tasks, err := s.taskRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return ports.Dashboard{}, err
	}

	return ports.Dashboard{
		Daily:    progress.StatsFor(tasks, progress.ScopeDaily, now),
		Weekly:   progress.StatsFor(tasks, progress.ScopeWeekly, now),
		Monthly:  progress.StatsFor(tasks, progress.ScopeMonthly, now),
		Overview: progress.BuildOverview(tasks, now),
	}, nil
}

func (s *ProgressService) Calendar(ctx context.Context, ownerID string, year int, month time.Month) (progress.MonthGrid, error) {
	tasks, err := s.taskRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return progress.MonthGrid{}, err
	}
	return progress.BuildMonthGrid(tasks, year, month), nil
}

func (s *ProgressService) Report(ctx context.Context, ownerID string, now time.Time) (progress.Report, error) {
	tasks, err := s.taskRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return progress.Report{}, err
	}
	return progress.BuildReport(tasks, now), nil
}

var _ ports.ProgressService = (*ProgressService)(nil)
