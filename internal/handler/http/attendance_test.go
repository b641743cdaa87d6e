package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens/insight-backend-go/internal/domain/attendance"
	"github.com/seclens/insight-backend-go/internal/domain/netlog"
	"github.com/seclens/insight-backend-go/internal/domain/profile"
	"github.com/seclens/insight-backend-go/internal/handler/http/response"
	"github.com/seclens/insight-backend-go/internal/pkg/task"
)

type fakeAttendanceService struct {
	anomalies    attendance.AnomalySummaryResponse
	distribution attendance.DistributionResponse
	heatmap      *attendance.HeatmapResponse
	err          error
}

func (f *fakeAttendanceService) GetAnomalySummary(_ context.Context) (attendance.AnomalySummaryResponse, error) {
	return f.anomalies, f.err
}

func (f *fakeAttendanceService) GetTimeDistribution(_ context.Context, dept profile.Department) (attendance.DistributionResponse, error) {
	if !dept.Known() {
		return attendance.DistributionResponse{}, attendance.ErrUnknownDepartment
	}
	return f.distribution, f.err
}

func (f *fakeAttendanceService) GetHeatmap(_ context.Context) (*attendance.HeatmapResponse, error) {
	return f.heatmap, f.err
}

type fakeNetlogService struct {
	parallel *netlog.ParallelResponse
	err      error
}

func (f *fakeNetlogService) GetParallelData(ctx context.Context) (*netlog.ParallelResponse, error) {
	return f.parallel, f.err
}

func (f *fakeNetlogService) SubmitParallelData(ctx context.Context) *task.Task[*netlog.ParallelResponse] {
	return task.Submit(ctx, f.GetParallelData)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestGetDistributionRequiresDepartmentParam(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/distribution", nil)
	rec := httptest.NewRecorder()
	handler.GetDistribution(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestGetDistributionRejectsUnknownDepartment(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/distribution?department=Sales", nil)
	rec := httptest.NewRecorder()
	handler.GetDistribution(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDistributionSuccess(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{
		distribution: attendance.DistributionResponse{
			CheckinProportion:  []float64{0.5, 0.5},
			CheckoutProportion: []float64{1, 0},
			XLabels:            []string{"00:00", ""},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/distribution?department=Finance", nil)
	rec := httptest.NewRecorder()
	handler.GetDistribution(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.NotNil(t, envelope.Data)
}

func TestGetAnomaliesMapsServiceErrorTo500(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/anomalies", nil)
	rec := httptest.NewRecorder()
	handler.GetAnomalies(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", envelope.Error.Code)
}

func TestGetParallelAwaitsBackgroundTask(t *testing.T) {
	handler := NewNetlogHandler(&fakeNetlogService{
		parallel: &netlog.ParallelResponse{TotalOriginalLogs: 7},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/netlog/parallel", nil)
	rec := httptest.NewRecorder()
	handler.GetParallel(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}

func TestGetParallelReportsTaskError(t *testing.T) {
	handler := NewNetlogHandler(&fakeNetlogService{err: errors.New("load failed")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/netlog/parallel", nil)
	rec := httptest.NewRecorder()
	handler.GetParallel(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
