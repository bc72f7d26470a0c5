package report

import (
	"context"
	"fmt"

	"github.com/workdayhq/workday-backend-go/internal/domain/report"
	"github.com/workdayhq/workday-backend-go/internal/domain/workday"
	"github.com/workdayhq/workday-backend-go/internal/pkg/dateutil"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.Service {
	return &ReportServiceImpl{reportRepo: reportRepo}
}

// Execute implements report.Service.
func (s *ReportServiceImpl) Execute(ctx context.Context, req report.ExecuteRequest) (report.Result, error) {
	if err := req.Validate(); err != nil {
		return report.Result{}, err
	}

	var filter report.Filter
	if req.Month != "" && req.Year != 0 {
		month, _ := dateutil.MonthNumber(req.Month)
		filter.Month = month
		filter.Year = req.Year
	}
	filter.EmployeeID = req.EmployeeID

	records, err := s.reportRepo.ListWorkdays(ctx, filter)
	if err != nil {
		return report.Result{}, fmt.Errorf("failed to list workdays for report: %w", err)
	}

	rows := make([]report.Row, 0, len(records))
	for _, rec := range records {
		actualSeconds := workday.SecondsFromHours(rec.ActualWorkingHours)
		rows = append(rows, report.Row{
			Name:                 rec.Name,
			LogDate:              dateutil.FormatDate(rec.LogDate),
			EmployeeID:           rec.EmployeeID,
			Status:               rec.Status,
			TargetHours:          rec.TargetHours,
			TotalWorkSeconds:     rec.TotalWorkSeconds,
			TotalTargetSeconds:   rec.TotalTargetSeconds,
			ActualWorkingSeconds: actualSeconds,
			DiffSeconds:          rec.TotalWorkSeconds - rec.TotalTargetSeconds,
			ActualDiffSeconds:    actualSeconds - rec.TotalTargetSeconds,
		})
	}

	return report.Result{
		Columns: report.Columns(),
		Rows:    rows,
	}, nil
}
