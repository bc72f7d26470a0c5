package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workdayhq/workday-backend-go/internal/domain/report"
)

type fakeReportRepo struct {
	records []report.WorkdayRecord
	filter  report.Filter
	err     error
}

func (f *fakeReportRepo) ListWorkdays(ctx context.Context, filter report.Filter) ([]report.WorkdayRecord, error) {
	f.filter = filter
	return f.records, f.err
}

func TestExecute_ComputesVariance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeReportRepo{
		records: []report.WorkdayRecord{
			{
				Name:               "WD-0001",
				LogDate:            time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
				EmployeeID:         "emp-1",
				Status:             "Present",
				TargetHours:        decimal.NewFromInt(7),
				TotalWorkSeconds:   28800,
				TotalTargetSeconds: 25200,
				ActualWorkingHours: decimal.NewFromFloat(7.5),
			},
		},
	}
	svc := NewReportService(repo)

	result, err := svc.Execute(ctx, report.ExecuteRequest{})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	assert.Equal(t, "WD-0001", row.Name)
	assert.Equal(t, "2024-03-01", row.LogDate)
	assert.Equal(t, int64(3600), row.DiffSeconds)
	assert.Equal(t, int64(27000), row.ActualWorkingSeconds)
	assert.Equal(t, int64(1800), row.ActualDiffSeconds)
}

func TestExecute_FixedColumnSchema(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewReportService(&fakeReportRepo{})

	result, err := svc.Execute(ctx, report.ExecuteRequest{})
	require.NoError(t, err)
	require.Len(t, result.Columns, 5)

	fieldnames := make([]string, 0, len(result.Columns))
	for _, c := range result.Columns {
		fieldnames = append(fieldnames, c.Fieldname)
	}
	assert.Equal(t, []string{"log_date", "name", "total_work_seconds", "total_target_seconds", "actual_diff_log"}, fieldnames)
	assert.Equal(t, "Datum", result.Columns[0].Label)
	assert.Equal(t, "Differenz", result.Columns[4].Label)
}

func TestExecute_PassesPeriodFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)

	_, err := svc.Execute(ctx, report.ExecuteRequest{
		Month:      "March",
		Year:       2024,
		EmployeeID: "emp-1",
	})
	require.NoError(t, err)
	assert.Equal(t, time.March, repo.filter.Month)
	assert.Equal(t, 2024, repo.filter.Year)
	assert.Equal(t, "emp-1", repo.filter.EmployeeID)
}

func TestExecute_RejectsMonthWithoutYear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewReportService(&fakeReportRepo{})

	_, err := svc.Execute(ctx, report.ExecuteRequest{Month: "March"})
	assert.Error(t, err)

	_, err = svc.Execute(ctx, report.ExecuteRequest{Year: 2024})
	assert.Error(t, err)
}

func TestExecute_RejectsUnknownMonth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewReportService(&fakeReportRepo{})

	_, err := svc.Execute(ctx, report.ExecuteRequest{Month: "Smarch", Year: 2024})
	assert.Error(t, err)
}

func TestExecute_EmptyStoreGivesEmptyRows(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewReportService(&fakeReportRepo{})

	result, err := svc.Execute(ctx, report.ExecuteRequest{})
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Len(t, result.Columns, 5)
}
