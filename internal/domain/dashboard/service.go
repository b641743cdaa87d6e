package dashboard

import "context"

// DashboardService assembles the combined overview payload.
type DashboardService interface {
	GetOverview(ctx context.Context) (*OverviewResponse, error)
}
