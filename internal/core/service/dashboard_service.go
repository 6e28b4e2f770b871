package service

import (
	"context"

	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

const dashboardRecentLimit = 5

type DashboardService struct {
	dashboard ports.DashboardRepository
}

func NewDashboardService(dashboard ports.DashboardRepository) *DashboardService {
	return &DashboardService{dashboard: dashboard}
}

func (s *DashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	return s.dashboard.Summary(ctx, dashboardRecentLimit)
}
