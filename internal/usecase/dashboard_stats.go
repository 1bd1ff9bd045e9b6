package usecase

import (
	"context"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// DashboardStatsOutput contains the role-scoped aggregate counters.
type DashboardStatsOutput struct {
	Stats *domain.DashboardStats
}

// DashboardStats is the use case behind the dashboard view. The server
// scopes the aggregates by role: employees see only their own counters.
type DashboardStats struct {
	gateway domain.Gateway
}

// NewDashboardStats creates a new DashboardStats use case.
func NewDashboardStats(gateway domain.Gateway) *DashboardStats {
	return &DashboardStats{gateway: gateway}
}

// Execute fetches the aggregates.
func (uc *DashboardStats) Execute(ctx context.Context) (*DashboardStatsOutput, error) {
	stats, err := uc.gateway.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStatsOutput{Stats: stats}, nil
}
