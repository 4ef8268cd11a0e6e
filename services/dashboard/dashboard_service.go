package dashboardservice

import (
	"context"

	"assetverse/providers"
)

const (
	pendingPreviewSize = 5
	topRequestedSize   = 4
)

type DashboardService interface {
	HRPendingRequests(ctx context.Context, hrEmail string) ([]PendingRequestItem, error)
	HRLimitedStock(ctx context.Context, hrEmail string) ([]LimitedStockAsset, error)
	HRStats(ctx context.Context, hrEmail string) (RequestStats, error)
	HRTopRequests(ctx context.Context, hrEmail string) ([]TopRequestedItem, error)
	EmployeePendingRequests(ctx context.Context, email string) ([]EmployeeRequestItem, error)
	EmployeeMonthlyRequests(ctx context.Context, email string) ([]EmployeeRequestItem, error)
}

type dashboardService struct {
	repo   DashboardRepository
	logger providers.ZapLoggerProvider
}

func NewDashboardService(repo DashboardRepository, logger providers.ZapLoggerProvider) DashboardService {
	return &dashboardService{
		repo:   repo,
		logger: logger,
	}
}

func (s *dashboardService) HRPendingRequests(ctx context.Context, hrEmail string) ([]PendingRequestItem, error) {
	return s.repo.GetPendingRequestsForHR(ctx, hrEmail, pendingPreviewSize)
}

func (s *dashboardService) HRLimitedStock(ctx context.Context, hrEmail string) ([]LimitedStockAsset, error) {
	return s.repo.GetLimitedStockAssets(ctx, hrEmail)
}

func (s *dashboardService) HRStats(ctx context.Context, hrEmail string) (RequestStats, error) {
	return s.repo.GetRequestStats(ctx, hrEmail)
}

func (s *dashboardService) HRTopRequests(ctx context.Context, hrEmail string) ([]TopRequestedItem, error) {
	return s.repo.GetTopRequestedItems(ctx, hrEmail, topRequestedSize)
}

func (s *dashboardService) EmployeePendingRequests(ctx context.Context, email string) ([]EmployeeRequestItem, error) {
	return s.repo.GetPendingRequestsForEmployee(ctx, email)
}

func (s *dashboardService) EmployeeMonthlyRequests(ctx context.Context, email string) ([]EmployeeRequestItem, error) {
	return s.repo.GetMonthlyRequestsForEmployee(ctx, email)
}
