package dashboard

import (
	"context"

	"github.com/seclens/insight-backend-go/internal/domain/attendance"
	"github.com/seclens/insight-backend-go/internal/domain/dashboard"
	"github.com/seclens/insight-backend-go/internal/domain/netlog"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	attendanceService attendance.AttendanceService
	netlogService     netlog.NetlogService
}

func NewDashboardService(
	attendanceService attendance.AttendanceService,
	netlogService netlog.NetlogService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendanceService: attendanceService,
		netlogService:     netlogService,
	}
}

// GetOverview runs the three aggregation pipelines in parallel and combines
// their results. The first error wins and no partial payload is returned.
func (s *DashboardServiceImpl) GetOverview(ctx context.Context) (*dashboard.OverviewResponse, error) {
	var (
		anomalies attendance.AnomalySummaryResponse
		heatmap   *attendance.HeatmapResponse
		parallel  *netlog.ParallelResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		anomalies, err = s.attendanceService.GetAnomalySummary(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		heatmap, err = s.attendanceService.GetHeatmap(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		parallel, err = s.netlogService.GetParallelData(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.OverviewResponse{
		AttendanceAnomalies: anomalies,
		AttendanceHeatmap:   heatmap,
		NetworkParallel:     parallel,
	}, nil
}
