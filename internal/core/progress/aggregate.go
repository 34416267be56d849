// Package progress derives the dashboard, calendar and report views from
// the task collection. Everything here is pure: callers pass the tasks and
// a reference instant, nothing is cached between calls.
package progress

import (
	"math"
	"sort"
	"time"

	"progresstracker/internal/core/dates"
	"progresstracker/internal/core/domain"
)

type Scope string

const (
	ScopeDaily   Scope = "daily"
	ScopeWeekly  Scope = "weekly"
	ScopeMonthly Scope = "monthly"
)

// ScopeStats is the completion summary for one scope.
type ScopeStats struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// InScope reports membership: a task belongs to a scope when its type
// matches the scope name or its due date falls within the scope's window
// around now. Membership is a union, so one task can sit in several scopes.
func InScope(t domain.Task, scope Scope, now time.Time) bool {
	switch scope {
	case ScopeDaily:
		if t.Type == domain.TaskTypeDaily {
			return true
		}
		return t.DueDate != nil && dates.SameDay(*t.DueDate, now)
	case ScopeWeekly:
		if t.Type == domain.TaskTypeWeekly {
			return true
		}
		return t.DueDate != nil && dates.InRange(*t.DueDate, dates.StartOfWeek(now), dates.EndOfWeek(now))
	case ScopeMonthly:
		if t.Type == domain.TaskTypeMonthly {
			return true
		}
		return t.DueDate != nil && dates.InRange(*t.DueDate, dates.StartOfMonth(now), dates.EndOfMonth(now))
	default:
		return false
	}
}

// StatsFor computes completion counts and percentage for one scope.
func StatsFor(tasks []domain.Task, scope Scope, now time.Time) ScopeStats {
	var s ScopeStats
	for _, t := range tasks {
		if !InScope(t, scope, now) {
			continue
		}
		s.Total++
		if t.Status == domain.TaskStatusCompleted {
			s.Completed++
		}
	}
	s.Percent = percent(s.Completed, s.Total)
	return s
}

// percent never divides by zero: an empty scope is 0%.
func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// Overview is the dashboard summary across the whole collection.
type Overview struct {
	Total          int           `json:"total"`
	Completed      int           `json:"completed"`
	InProgress     int           `json:"in_progress"`
	Pending        int           `json:"pending"`
	DueToday       int           `json:"due_today"`
	Overdue        int           `json:"overdue"`
	CompletionRate int           `json:"completion_rate"`
	Upcoming       []domain.Task `json:"-"`
}

const upcomingLimit = 5

// BuildOverview computes the dashboard KPIs. Overdue means past-due and not
// completed; Upcoming is the next five open tasks ordered by due date, with
// creation time as the tie-break.
func BuildOverview(tasks []domain.Task, now time.Time) Overview {
	o := Overview{Total: len(tasks)}
	startOfToday := dates.StartOfDay(now)

	var upcoming []domain.Task
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskStatusCompleted:
			o.Completed++
		case domain.TaskStatusInProgress:
			o.InProgress++
		default:
			o.Pending++
		}

		if t.DueDate == nil {
			continue
		}
		if dates.SameDay(*t.DueDate, now) {
			o.DueToday++
		}
		if t.DueDate.Before(startOfToday) && t.Status != domain.TaskStatusCompleted {
			o.Overdue++
		}
		if t.Status != domain.TaskStatusCompleted {
			upcoming = append(upcoming, t)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if !upcoming[i].DueDate.Equal(*upcoming[j].DueDate) {
			return upcoming[i].DueDate.Before(*upcoming[j].DueDate)
		}
		return upcoming[i].CreatedAt.Before(upcoming[j].CreatedAt)
	})
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	o.Upcoming = upcoming
	o.CompletionRate = percent(o.Completed, o.Total)
	return o
}
