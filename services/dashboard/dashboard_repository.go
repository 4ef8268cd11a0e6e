package dashboardservice

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const limitedStockThreshold = 10

type DashboardRepository interface {
	GetPendingRequestsForHR(ctx context.Context, hrEmail string, limit int) ([]PendingRequestItem, error)
	GetLimitedStockAssets(ctx context.Context, hrEmail string) ([]LimitedStockAsset, error)
	GetRequestStats(ctx context.Context, hrEmail string) (RequestStats, error)
	GetTopRequestedItems(ctx context.Context, hrEmail string, limit int) ([]TopRequestedItem, error)
	GetPendingRequestsForEmployee(ctx context.Context, email string) ([]EmployeeRequestItem, error)
	GetMonthlyRequestsForEmployee(ctx context.Context, email string) ([]EmployeeRequestItem, error)
}

type PostgresDashboardRepository struct {
	DB *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) DashboardRepository {
	return &PostgresDashboardRepository{DB: db}
}

func (r *PostgresDashboardRepository) GetPendingRequestsForHR(ctx context.Context, hrEmail string, limit int) ([]PendingRequestItem, error) {
	items := make([]PendingRequestItem, 0)
	err := r.DB.SelectContext(ctx, &items, `
		SELECT id, product_name, product_type, requester_name, requester_email,
		       to_char(request_date, 'YYYY-MM-DD') AS request_date
		FROM requests
		WHERE hr_email = $1 AND status = 'pending'
		ORDER BY request_date DESC, id
		LIMIT $2
	`, hrEmail, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending requests: %w", err)
	}
	return items, nil
}

func (r *PostgresDashboardRepository) GetLimitedStockAssets(ctx context.Context, hrEmail string) ([]LimitedStockAsset, error) {
	assets := make([]LimitedStockAsset, 0)
	err := r.DB.SelectContext(ctx, &assets, `
		SELECT id, product_name, product_type, product_quantity
		FROM assets
		WHERE hr_email = $1 AND product_quantity < $2
		ORDER BY product_quantity ASC, product_name
	`, hrEmail, limitedStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch limited stock assets: %w", err)
	}
	return assets, nil
}

func (r *PostgresDashboardRepository) GetRequestStats(ctx context.Context, hrEmail string) (RequestStats, error) {
	var stats RequestStats
	err := r.DB.GetContext(ctx, &stats, `
		SELECT count(*) AS total_requests,
		       count(*) FILTER (WHERE product_type = 'Returnable') AS returnable,
		       count(*) FILTER (WHERE product_type = 'Non-returnable') AS non_returnable,
		       count(*) FILTER (WHERE status = 'pending') AS pending
		FROM requests
		WHERE hr_email = $1
	`, hrEmail)
	if err != nil {
		return RequestStats{}, fmt.Errorf("failed to fetch request stats: %w", err)
	}
	return stats, nil
}

func (r *PostgresDashboardRepository) GetTopRequestedItems(ctx context.Context, hrEmail string, limit int) ([]TopRequestedItem, error) {
	items := make([]TopRequestedItem, 0)
	err := r.DB.SelectContext(ctx, &items, `
		SELECT product_name, product_type, count(*) AS request_count
		FROM requests
		WHERE hr_email = $1
		GROUP BY product_name, product_type
		ORDER BY request_count DESC, product_name
		LIMIT $2
	`, hrEmail, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top requested items: %w", err)
	}
	return items, nil
}

func (r *PostgresDashboardRepository) GetPendingRequestsForEmployee(ctx context.Context, email string) ([]EmployeeRequestItem, error) {
	items := make([]EmployeeRequestItem, 0)
	err := r.DB.SelectContext(ctx, &items, `
		SELECT id, product_name, product_type,
		       to_char(request_date, 'YYYY-MM-DD') AS request_date, status
		FROM requests
		WHERE requester_email = $1 AND status = 'pending'
		ORDER BY request_date DESC, id
	`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee pending requests: %w", err)
	}
	return items, nil
}

func (r *PostgresDashboardRepository) GetMonthlyRequestsForEmployee(ctx context.Context, email string) ([]EmployeeRequestItem, error) {
	items := make([]EmployeeRequestItem, 0)
	err := r.DB.SelectContext(ctx, &items, `
		SELECT id, product_name, product_type,
		       to_char(request_date, 'YYYY-MM-DD') AS request_date, status
		FROM requests
		WHERE requester_email = $1
		  AND date_trunc('month', request_date) = date_trunc('month', CURRENT_DATE)
		ORDER BY request_date DESC, id
	`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee monthly requests: %w", err)
	}
	return items, nil
}
