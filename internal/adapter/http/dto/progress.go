package dto

import (
	"progresstracker/internal/core/progress"
)

type OverviewItem struct {
	Total          int        `json:"total"`
	Completed      int        `json:"completed"`
	InProgress     int        `json:"in_progress"`
	Pending        int        `json:"pending"`
	DueToday       int        `json:"due_today"`
	Overdue        int        `json:"overdue"`
	CompletionRate int        `json:"completion_rate"`
	Upcoming       []TaskItem `json:"upcoming"`
}

type DashboardResponse struct {
	Daily    progress.ScopeStats `json:"daily"`
	Weekly   progress.ScopeStats `json:"weekly"`
	Monthly  progress.ScopeStats `json:"monthly"`
	Overview OverviewItem        `json:"overview"`
}

type CalendarCell struct {
	Day       int        `json:"day"`
	Date      string     `json:"date,omitempty"`
	Tasks     []TaskItem `json:"tasks,omitempty"`
	Due       int        `json:"due"`
	Hidden    int        `json:"hidden"`
	Completed int        `json:"completed"`
}

type CalendarResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CalendarCell `json:"cells"`
}

type ReportResponse struct {
	Statuses     progress.StatusBreakdown `json:"statuses"`
	Weekly       []progress.WeekPoint     `json:"weekly"`
	Monthly      []MonthCount             `json:"monthly"`
	CurrentWeek  progress.RangeSummary    `json:"current_week"`
	CurrentMonth progress.RangeSummary    `json:"current_month"`
}

type MonthCount struct {
	Month     int `json:"month"`
	Completed int `json:"completed"`
}
