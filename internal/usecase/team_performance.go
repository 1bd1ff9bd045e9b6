package usecase

import (
	"cmp"
	"context"
	"slices"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// TeamPerformanceOutput contains per-employee completion stats, sorted
// by completion rate descending.
type TeamPerformanceOutput struct {
	Entries []*domain.PerformanceEntry
}

// TeamPerformance is the use case behind the performance view.
// Admin/manager only; the server enforces the restriction.
type TeamPerformance struct {
	gateway domain.Gateway
}

// NewTeamPerformance creates a new TeamPerformance use case.
func NewTeamPerformance(gateway domain.Gateway) *TeamPerformance {
	return &TeamPerformance{gateway: gateway}
}

// Execute fetches and sorts the entries.
func (uc *TeamPerformance) Execute(ctx context.Context) (*TeamPerformanceOutput, error) {
	entries, err := uc.gateway.Performance(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(entries, func(a, b *domain.PerformanceEntry) int {
		return cmp.Compare(b.CompletionRate, a.CompletionRate)
	})
	return &TeamPerformanceOutput{Entries: entries}, nil
}
