package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workdayhq/workday-backend-go/internal/domain/workday"
)

type fakeWorkdayService struct {
	unmarkedDaysFn  func(ctx context.Context, req workday.UnmarkedDaysRequest) ([]string, error)
	unmarkedRangeFn func(ctx context.Context, req workday.UnmarkedRangeRequest) ([]string, error)
	bulkProcessFn   func(ctx context.Context, req workday.BulkProcessRequest) (workday.BulkProcessResult, error)
	backgroundFn    func(ctx context.Context, req workday.BulkProcessRequest) error
}

func (f *fakeWorkdayService) UnmarkedDays(ctx context.Context, req workday.UnmarkedDaysRequest) ([]string, error) {
	return f.unmarkedDaysFn(ctx, req)
}

func (f *fakeWorkdayService) UnmarkedRange(ctx context.Context, req workday.UnmarkedRangeRequest) ([]string, error) {
	return f.unmarkedRangeFn(ctx, req)
}

func (f *fakeWorkdayService) BulkProcess(ctx context.Context, req workday.BulkProcessRequest) (workday.BulkProcessResult, error) {
	return f.bulkProcessFn(ctx, req)
}

func (f *fakeWorkdayService) BulkProcessBackground(ctx context.Context, req workday.BulkProcessRequest) error {
	return f.backgroundFn(ctx, req)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestUnmarkedDays_ParsesQueryParams(t *testing.T) {
	t.Parallel()

	var got workday.UnmarkedDaysRequest
	svc := &fakeWorkdayService{
		unmarkedDaysFn: func(ctx context.Context, req workday.UnmarkedDaysRequest) ([]string, error) {
			got = req
			return []string{"2024-03-01"}, nil
		},
	}
	handler := NewWorkdayHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workdays/unmarked-days?employee_id=emp-1&month=March&exclude_holidays=true", nil)
	rec := httptest.NewRecorder()
	handler.UnmarkedDays(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-1", got.EmployeeID)
	assert.Equal(t, "March", got.Month)
	assert.True(t, got.ExcludeHolidays)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []interface{}{"2024-03-01"}, body["data"])
}

func TestUnmarkedRange_ParsesQueryParams(t *testing.T) {
	t.Parallel()

	var got workday.UnmarkedRangeRequest
	svc := &fakeWorkdayService{
		unmarkedRangeFn: func(ctx context.Context, req workday.UnmarkedRangeRequest) ([]string, error) {
			got = req
			return []string{}, nil
		},
	}
	handler := NewWorkdayHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workdays/unmarked-range?employee_id=emp-1&from=2024-03-01&to=2024-03-03", nil)
	rec := httptest.NewRecorder()
	handler.UnmarkedRange(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-1", got.EmployeeID)
	assert.Equal(t, "2024-03-01", got.FromDate)
	assert.Equal(t, "2024-03-03", got.ToDate)
}

func TestBulkProcess_Synchronous(t *testing.T) {
	t.Parallel()

	svc := &fakeWorkdayService{
		bulkProcessFn: func(ctx context.Context, req workday.BulkProcessRequest) (workday.BulkProcessResult, error) {
			return workday.BulkProcessResult{
				Created: []string{"2024-03-01"},
				Skipped: []string{"2024-03-02"},
				Failed:  []workday.DateFailure{},
			}, nil
		},
	}
	handler := NewWorkdayHandler(svc)

	payload := `{"employee_id":"emp-1","unmarked_days":["2024-03-01","2024-03-02"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workdays/bulk", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.BulkProcess(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"2024-03-01"}, data["created"])
	assert.Equal(t, []interface{}{"2024-03-02"}, data["skipped"])
}

func TestBulkProcess_BackgroundAccepted(t *testing.T) {
	t.Parallel()

	var enqueued bool
	svc := &fakeWorkdayService{
		backgroundFn: func(ctx context.Context, req workday.BulkProcessRequest) error {
			enqueued = true
			return nil
		},
	}
	handler := NewWorkdayHandler(svc)

	payload := `{"employee_id":"emp-1","unmarked_days":["2024-03-01"],"background":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workdays/bulk", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.BulkProcess(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, enqueued)
}

func TestBulkProcess_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"inactive employee", workday.ErrEmployeeInactive, http.StatusBadRequest},
		{"no dates selected", workday.ErrNoDatesSelected, http.StatusBadRequest},
		{"workday exists", workday.ErrWorkdayExists, http.StatusConflict},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := &fakeWorkdayService{
				bulkProcessFn: func(ctx context.Context, req workday.BulkProcessRequest) (workday.BulkProcessResult, error) {
					return workday.BulkProcessResult{}, tc.err
				},
			}
			handler := NewWorkdayHandler(svc)

			payload := `{"employee_id":"emp-1","unmarked_days":["2024-03-01"]}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/workdays/bulk", strings.NewReader(payload))
			rec := httptest.NewRecorder()
			handler.BulkProcess(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestBulkProcess_MalformedJSON(t *testing.T) {
	t.Parallel()

	handler := NewWorkdayHandler(&fakeWorkdayService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workdays/bulk", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.BulkProcess(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
