package dashboard

import (
	"github.com/seclens/insight-backend-go/internal/domain/attendance"
	"github.com/seclens/insight-backend-go/internal/domain/netlog"
)

// OverviewResponse is the combined payload for the overview page: all three
// aggregation pipelines in one round trip.
type OverviewResponse struct {
	AttendanceAnomalies attendance.AnomalySummaryResponse `json:"attendance_anomalies"`
	AttendanceHeatmap   *attendance.HeatmapResponse       `json:"attendance_heatmap"`
	NetworkParallel     *netlog.ParallelResponse          `json:"network_parallel"`
}
