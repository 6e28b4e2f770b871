package ports

import (
	"context"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

type DashboardService interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}

// DashboardRepository computes entity counts and recent activity in one
// round trip per query; there is no in-process aggregation cache.
type DashboardRepository interface {
	Summary(ctx context.Context, recentLimit int) (*domain.DashboardSummary, error)
}
