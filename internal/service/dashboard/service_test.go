package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens/insight-backend-go/internal/domain/attendance"
	"github.com/seclens/insight-backend-go/internal/domain/netlog"
	"github.com/seclens/insight-backend-go/internal/domain/profile"
	"github.com/seclens/insight-backend-go/internal/pkg/task"
)

type fakeAttendanceService struct {
	anomalies  attendance.AnomalySummaryResponse
	heatmap    *attendance.HeatmapResponse
	anomalyErr error
	heatmapErr error
}

func (f *fakeAttendanceService) GetAnomalySummary(_ context.Context) (attendance.AnomalySummaryResponse, error) {
	return f.anomalies, f.anomalyErr
}

func (f *fakeAttendanceService) GetTimeDistribution(_ context.Context, _ profile.Department) (attendance.DistributionResponse, error) {
	return attendance.DistributionResponse{}, nil
}

func (f *fakeAttendanceService) GetHeatmap(_ context.Context) (*attendance.HeatmapResponse, error) {
	return f.heatmap, f.heatmapErr
}

type fakeNetlogService struct {
	parallel *netlog.ParallelResponse
	err      error
}

func (f *fakeNetlogService) GetParallelData(_ context.Context) (*netlog.ParallelResponse, error) {
	return f.parallel, f.err
}

func (f *fakeNetlogService) SubmitParallelData(ctx context.Context) *task.Task[*netlog.ParallelResponse] {
	return task.Submit(ctx, f.GetParallelData)
}

func TestGetOverviewCombinesAllPipelines(t *testing.T) {
	anomalies := attendance.AnomalySummaryResponse{
		profile.DepartmentFinance: {TotalEmployees: 3},
	}
	heatmap := &attendance.HeatmapResponse{MaxValue: 10}
	parallel := &netlog.ParallelResponse{TotalOriginalLogs: 42}

	svc := NewDashboardService(
		&fakeAttendanceService{anomalies: anomalies, heatmap: heatmap},
		&fakeNetlogService{parallel: parallel},
	)

	overview, err := svc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, anomalies, overview.AttendanceAnomalies)
	assert.Equal(t, heatmap, overview.AttendanceHeatmap)
	assert.Equal(t, parallel, overview.NetworkParallel)
}

func TestGetOverviewFailsWithoutPartialPayload(t *testing.T) {
	wantErr := errors.New("netlog unavailable")

	svc := NewDashboardService(
		&fakeAttendanceService{anomalies: attendance.AnomalySummaryResponse{}, heatmap: &attendance.HeatmapResponse{}},
		&fakeNetlogService{err: wantErr},
	)

	overview, err := svc.GetOverview(context.Background())
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, overview)
}
