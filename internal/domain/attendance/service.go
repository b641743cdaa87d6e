package attendance

import (
	"context"

	"github.com/seclens/insight-backend-go/internal/domain/profile"
)

// AttendanceService defines the attendance aggregation pipelines.
type AttendanceService interface {
	// GetAnomalySummary classifies every attendance record against its
	// employee's work-hour rule and folds the results into per-department
	// ratios and top-20 leaderboards.
	GetAnomalySummary(ctx context.Context) (AnomalySummaryResponse, error)

	// GetTimeDistribution builds the 96-bin time-of-day histogram of check-in
	// and check-out events for one department.
	GetTimeDistribution(ctx context.Context, dept profile.Department) (DistributionResponse, error)

	// GetHeatmap builds the per-employee-per-day worked-hours matrix with
	// department axis metadata.
	GetHeatmap(ctx context.Context) (*HeatmapResponse, error)
}
