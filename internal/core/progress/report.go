package progress

import (
	"fmt"
	"time"

	"progresstracker/internal/core/dates"
	"progresstracker/internal/core/domain"
)

// DefaultReportWeeks is the length of the rolling created-vs-completed series.
const DefaultReportWeeks = 12

// StatusBreakdown counts tasks per status over the three known statuses.
type StatusBreakdown struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
}

// Breakdown tallies statuses; anything outside the closed set counts as pending.
func Breakdown(tasks []domain.Task) StatusBreakdown {
	var b StatusBreakdown
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskStatusCompleted:
			b.Completed++
		case domain.TaskStatusInProgress:
			b.InProgress++
		default:
			b.Pending++
		}
	}
	return b
}

// WeekPoint is one bucket of the rolling weekly series.
type WeekPoint struct {
	Label     string `json:"label"`
	Completed int    `json:"completed"`
	Created   int    `json:"created"`
}

// WeeklySeries builds the rolling Monday-anchored series of the last n
// weeks ending at now's week. Completed counts tasks whose due date falls
// in the bucket and are completed; Created counts tasks whose start date
// (or, if unset, creation day) falls in the bucket.
func WeeklySeries(tasks []domain.Task, now time.Time, n int) []WeekPoint {
	points := make([]WeekPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		ref := now.AddDate(0, 0, -i*7)
		from := dates.StartOfWeek(ref)
		to := dates.EndOfWeek(ref)

		p := WeekPoint{Label: fmt.Sprintf("%d/%d", int(from.Month()), from.Day())}
		for _, t := range tasks {
			if t.DueDate != nil && t.Status == domain.TaskStatusCompleted && dates.InRange(*t.DueDate, from, to) {
				p.Completed++
			}
			start := t.StartDate
			if start.IsZero() {
				start = dates.StartOfDay(t.CreatedAt)
			}
			if !start.IsZero() && dates.InRange(start, from, to) {
				p.Created++
			}
		}
		points = append(points, p)
	}
	return points
}

// MonthPoint is one month of the current-year completion totals.
type MonthPoint struct {
	Month     time.Month `json:"month"`
	Completed int        `json:"completed"`
}

// MonthlyCompleted counts completed tasks per due-date month of now's year.
func MonthlyCompleted(tasks []domain.Task, now time.Time) []MonthPoint {
	points := make([]MonthPoint, 12)
	for i := range points {
		points[i].Month = time.Month(i + 1)
	}
	for _, t := range tasks {
		if t.DueDate == nil || t.Status != domain.TaskStatusCompleted {
			continue
		}
		if t.DueDate.Year() != now.Year() {
			continue
		}
		points[int(t.DueDate.Month())-1].Completed++
	}
	return points
}

// RangeSummary is the planned-vs-completed breakdown for one due-date range.
type RangeSummary struct {
	Planned    int `json:"planned"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
}

// SummarizeRange tallies tasks whose due date falls in [from, to].
func SummarizeRange(tasks []domain.Task, from, to time.Time) RangeSummary {
	var s RangeSummary
	for _, t := range tasks {
		if t.DueDate == nil || !dates.InRange(*t.DueDate, from, to) {
			continue
		}
		s.Planned++
		switch t.Status {
		case domain.TaskStatusCompleted:
			s.Completed++
		case domain.TaskStatusInProgress:
			s.InProgress++
		default:
			s.Pending++
		}
	}
	return s
}

// Report bundles every reports-view derivation for one owner.
type Report struct {
	Statuses     StatusBreakdown `json:"statuses"`
	Weekly       []WeekPoint     `json:"weekly"`
	Monthly      []MonthPoint    `json:"monthly"`
	CurrentWeek  RangeSummary    `json:"current_week"`
	CurrentMonth RangeSummary    `json:"current_month"`
}

func BuildReport(tasks []domain.Task, now time.Time) Report {
	return Report{
		Statuses:     Breakdown(tasks),
		Weekly:       WeeklySeries(tasks, now, DefaultReportWeeks),
		Monthly:      MonthlyCompleted(tasks, now),
		CurrentWeek:  SummarizeRange(tasks, dates.StartOfWeek(now), dates.EndOfWeek(now)),
		CurrentMonth: SummarizeRange(tasks, dates.StartOfMonth(now), dates.EndOfMonth(now)),
	}
}
