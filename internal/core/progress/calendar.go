package progress

import (
	"time"

	"progresstracker/internal/core/dates"
	"progresstracker/internal/core/domain"
)

// Calendar rendering keeps at most this many task chips per day; the rest
// are rolled into the cell's Hidden count.
const visibleChipLimit = 3

// DayCell is one cell of the month grid. Blank padding cells have Day == 0.
type DayCell struct {
	Day       int           `json:"day"`
	Date      string        `json:"date,omitempty"`
	Tasks     []domain.Task `json:"-"`
	Due       int           `json:"due"`
	Hidden    int           `json:"hidden"`
	Completed int           `json:"completed"`
}

// MonthGrid is a Sunday-first calendar for one month: leading blanks up to
// the weekday of the 1st, days 1..last, trailing blanks padding the final
// row to seven columns.
type MonthGrid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Cells []DayCell  `json:"cells"`
}

// BuildMonthGrid buckets tasks into the grid by string equality on the
// "YYYY-MM-DD" form of their due date, so a task never drifts into a
// neighbouring month across timezones.
func BuildMonthGrid(tasks []domain.Task, year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lastDay := dates.EndOfMonth(first).Day()

	byDay := make(map[string][]domain.Task)
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		key := dates.FormatDay(*t.DueDate)
		byDay[key] = append(byDay[key], t)
	}
	completedByDay := CompletedByDay(tasks)

	grid := MonthGrid{Year: year, Month: month}
	for i := 0; i < int(first.Weekday()); i++ {
		grid.Cells = append(grid.Cells, DayCell{})
	}
	for day := 1; day <= lastDay; day++ {
		key := dates.FormatDay(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
		due := byDay[key]
		visible := due
		if len(visible) > visibleChipLimit {
			visible = visible[:visibleChipLimit]
		}
		grid.Cells = append(grid.Cells, DayCell{
			Day:       day,
			Date:      key,
			Tasks:     visible,
			Due:       len(due),
			Hidden:    len(due) - len(visible),
			Completed: completedByDay[key],
		})
	}
	for len(grid.Cells)%7 != 0 {
		grid.Cells = append(grid.Cells, DayCell{})
	}
	return grid
}

// CompletedByDay counts completed tasks per calendar day, keyed by due date
// with start date as the fallback. Used for the calendar badges.
func CompletedByDay(tasks []domain.Task) map[string]int {
	m := make(map[string]int)
	for _, t := range tasks {
		if t.Status != domain.TaskStatusCompleted {
			continue
		}
		day := t.StartDate
		if t.DueDate != nil {
			day = *t.DueDate
		}
		if day.IsZero() {
			continue
		}
		m[dates.FormatDay(day)]++
	}
	return m
}
