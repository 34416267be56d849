package mapper

import (
	"progresstracker/internal/adapter/http/dto"
	"progresstracker/internal/core/ports"
	"progresstracker/internal/core/progress"
)

func ToDashboardResponse(d ports.Dashboard) dto.DashboardResponse {
	return dto.DashboardResponse{
		Daily:   d.Daily,
		Weekly:  d.Weekly,
		Monthly: d.Monthly,
		Overview: dto.OverviewItem{
			Total:          d.Overview.Total,
			Completed:      d.Overview.Completed,
			InProgress:     d.Overview.InProgress,
			Pending:        d.Overview.Pending,
			DueToday:       d.Overview.DueToday,
			Overdue:        d.Overview.Overdue,
			CompletionRate: d.Overview.CompletionRate,
			Upcoming:       ToTaskItems(d.Overview.Upcoming),
		},
	}
}

func ToCalendarResponse(grid progress.MonthGrid) dto.CalendarResponse {
	cells := make([]dto.CalendarCell, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		cells = append(cells, dto.CalendarCell{
			Day:       cell.Day,
			Date:      cell.Date,
			Tasks:     ToTaskItems(cell.Tasks),
			Due:       cell.Due,
			Hidden:    cell.Hidden,
			Completed: cell.Completed,
		})
	}
	return dto.CalendarResponse{
		Year:  grid.Year,
		Month: int(grid.Month),
		Cells: cells,
	}
}

func ToReportResponse(report progress.Report) dto.ReportResponse {
	monthly := make([]dto.MonthCount, 0, len(report.Monthly))
	for _, p := range report.Monthly {
		monthly = append(monthly, dto.MonthCount{Month: int(p.Month), Completed: p.Completed})
	}
	return dto.ReportResponse{
		Statuses:     report.Statuses,
		Weekly:       report.Weekly,
		Monthly:      monthly,
		CurrentWeek:  report.CurrentWeek,
		CurrentMonth: report.CurrentMonth,
	}
}
