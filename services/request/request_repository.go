package requestservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"assetverse/apperror"
	"assetverse/models"
)

type RequestRepository interface {
	RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	InsertRequest(ctx context.Context, req Request) (uuid.UUID, error)
	GetRequestForUpdate(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID) (Request, error)
	UpdateStatus(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID, status models.RequestStatus) (int64, error)
	DeleteRequestIfPending(ctx context.Context, requestID uuid.UUID, requesterEmail string) (int64, error)
	GetRequestsByHR(ctx context.Context, hrEmail string, limit, offset int) ([]Request, int, error)
	SearchRequestsByRequester(ctx context.Context, requesterEmail string, filter RequestFilter) ([]Request, int, error)
	DecrementAssetStock(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID) (int64, error)
	IncrementAssetStock(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID) error
	GetEmployeeHRForUpdate(ctx context.Context, tx *sqlx.Tx, employeeEmail string) (*string, error)
	GetSeatUsageForUpdate(ctx context.Context, tx *sqlx.Tx, hrEmail string) (int, int, error)
	AttachEmployeeToTeam(ctx context.Context, tx *sqlx.Tx, employeeEmail, hrEmail string) error
	GetAssetSnapshot(ctx context.Context, assetID uuid.UUID) (AssetSnapshot, error)
	GetUserName(ctx context.Context, email string) (string, error)
}

type PostgresRequestRepository struct {
	DB *sqlx.DB
}

func NewRequestRepository(db *sqlx.DB) RequestRepository {
	return &PostgresRequestRepository{DB: db}
}

func (r *PostgresRequestRepository) RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(tx)
	return err
}

func (r *PostgresRequestRepository) InsertRequest(ctx context.Context, req Request) (uuid.UUID, error) {
	var requestID uuid.UUID
	err := r.DB.GetContext(ctx, &requestID, `
		INSERT INTO requests (
			asset_id, product_name, product_type, hr_email, hr_name,
			requester_name, requester_email, request_date, status, note
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_DATE, $8, $9)
		RETURNING id
	`, req.AssetID, req.ProductName, req.ProductType, req.HREmail, req.HRName,
		req.RequesterName, req.RequesterEmail, req.Status, req.Note)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert request: %w", err)
	}
	return requestID, nil
}

func (r *PostgresRequestRepository) GetRequestForUpdate(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID) (Request, error) {
	var req Request
	err := tx.GetContext(ctx, &req, `
		SELECT id, asset_id, product_name, product_type, hr_email, hr_name,
		       requester_name, requester_email,
		       to_char(request_date, 'YYYY-MM-DD') AS request_date,
		       status, note
		FROM requests
		WHERE id = $1
		FOR UPDATE
	`, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Request{}, apperror.NotFound("request not found")
		}
		return Request{}, fmt.Errorf("failed to fetch request: %w", err)
	}
	return req, nil
}

func (r *PostgresRequestRepository) UpdateStatus(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID, status models.RequestStatus) (int64, error) {
	result, err := tx.ExecContext(ctx, `
		UPDATE requests SET status = $1 WHERE id = $2
	`, status, requestID)
	if err != nil {
		return 0, fmt.Errorf("failed to update request status: %w", err)
	}
	modified, _ := result.RowsAffected()
	return modified, nil
}

// DeleteRequestIfPending is the cancel path: the status predicate makes a
// concurrent decide and a cancel mutually exclusive without extra locking.
func (r *PostgresRequestRepository) DeleteRequestIfPending(ctx context.Context, requestID uuid.UUID, requesterEmail string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM requests
		WHERE id = $1 AND requester_email = $2 AND status = 'pending'
	`, requestID, requesterEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to delete request: %w", err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

func (r *PostgresRequestRepository) GetRequestsByHR(ctx context.Context, hrEmail string, limit, offset int) ([]Request, int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `
		SELECT count(*) FROM requests WHERE hr_email = $1
	`, hrEmail)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	requests := make([]Request, 0)
	err = r.DB.SelectContext(ctx, &requests, `
		SELECT id, asset_id, product_name, product_type, hr_email, hr_name,
		       requester_name, requester_email,
		       to_char(request_date, 'YYYY-MM-DD') AS request_date,
		       status, note
		FROM requests
		WHERE hr_email = $1
		ORDER BY request_date DESC, id
		LIMIT $2 OFFSET $3
	`, hrEmail, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch requests: %w", err)
	}
	return requests, count, nil
}

func (r *PostgresRequestRepository) SearchRequestsByRequester(ctx context.Context, requesterEmail string, filter RequestFilter) ([]Request, int, error) {
	args := []interface{}{
		requesterEmail,
		filter.Search == "",
		filter.Search,
		filter.Status == "",
		filter.Status,
	}
	where := `
		requester_email = $1
		AND ($2 OR product_name ILIKE '%' || $3 || '%')
		AND ($4 OR status = $5)
	`

	var count int
	err := r.DB.GetContext(ctx, &count, `
		SELECT count(*) FROM requests WHERE `+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	order := "request_date DESC, id"
	if filter.Sort == "asc" {
		order = "request_date ASC, id"
	}

	requests := make([]Request, 0)
	err = r.DB.SelectContext(ctx, &requests, `
		SELECT id, asset_id, product_name, product_type, hr_email, hr_name,
		       requester_name, requester_email,
		       to_char(request_date, 'YYYY-MM-DD') AS request_date,
		       status, note
		FROM requests
		WHERE `+where+`
		ORDER BY `+order+`
		LIMIT $6 OFFSET $7
	`, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search requests: %w", err)
	}
	return requests, count, nil
}

// DecrementAssetStock floors at zero: the quantity predicate means an
// already-empty asset reports zero rows instead of going negative.
func (r *PostgresRequestRepository) DecrementAssetStock(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID) (int64, error) {
	result, err := tx.ExecContext(ctx, `
		UPDATE assets SET product_quantity = product_quantity - 1
		WHERE id = $1 AND product_quantity > 0
	`, assetID)
	if err != nil {
		return 0, fmt.Errorf("failed to decrement asset stock: %w", err)
	}
	modified, _ := result.RowsAffected()
	return modified, nil
}

func (r *PostgresRequestRepository) IncrementAssetStock(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE assets SET product_quantity = product_quantity + 1
		WHERE id = $1
	`, assetID)
	if err != nil {
		return fmt.Errorf("failed to increment asset stock: %w", err)
	}
	return nil
}

func (r *PostgresRequestRepository) GetEmployeeHRForUpdate(ctx context.Context, tx *sqlx.Tx, employeeEmail string) (*string, error) {
	var hrEmail *string
	err := tx.GetContext(ctx, &hrEmail, `
		SELECT hr_email FROM users WHERE email = $1 FOR UPDATE
	`, employeeEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("requester not found")
		}
		return nil, fmt.Errorf("failed to fetch requester affiliation: %w", err)
	}
	return hrEmail, nil
}

func (r *PostgresRequestRepository) GetSeatUsageForUpdate(ctx context.Context, tx *sqlx.Tx, hrEmail string) (int, int, error) {
	var seat struct {
		PackageLimit     int `db:"package_limit"`
		CurrentEmployees int `db:"current_employees"`
	}
	err := tx.GetContext(ctx, &seat, `
		SELECT COALESCE(package_limit, 0) AS package_limit,
		       COALESCE(current_employees, 0) AS current_employees
		FROM users
		WHERE email = $1 AND role = 'hr'
		FOR UPDATE
	`, hrEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, apperror.NotFound("hr account not found")
		}
		return 0, 0, fmt.Errorf("failed to fetch seat usage: %w", err)
	}
	return seat.PackageLimit, seat.CurrentEmployees, nil
}

// GetAssetSnapshot reads the asset fields a new request copies in. The copy
// is intentional: a request keeps describing what was asked for even after
// the asset itself is edited or deleted.
func (r *PostgresRequestRepository) GetAssetSnapshot(ctx context.Context, assetID uuid.UUID) (AssetSnapshot, error) {
	var snap AssetSnapshot
	err := r.DB.GetContext(ctx, &snap, `
		SELECT a.id, a.product_name, a.product_type, a.product_quantity,
		       a.hr_email, u.name AS hr_name
		FROM assets a
		JOIN users u ON u.email = a.hr_email
		WHERE a.id = $1
	`, assetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AssetSnapshot{}, apperror.NotFound("asset not found")
		}
		return AssetSnapshot{}, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return snap, nil
}

func (r *PostgresRequestRepository) GetUserName(ctx context.Context, email string) (string, error) {
	var name string
	err := r.DB.GetContext(ctx, &name, `
		SELECT name FROM users WHERE email = $1
	`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperror.NotFound("user not found")
		}
		return "", fmt.Errorf("failed to fetch user name: %w", err)
	}
	return name, nil
}

func (r *PostgresRequestRepository) AttachEmployeeToTeam(ctx context.Context, tx *sqlx.Tx, employeeEmail, hrEmail string) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE users SET hr_email = $1 WHERE email = $2
	`, hrEmail, employeeEmail)
	if err != nil {
		return fmt.Errorf("failed to attach employee to team: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users SET current_employees = current_employees + 1
		WHERE email = $1 AND role = 'hr'
	`, hrEmail)
	if err != nil {
		return fmt.Errorf("failed to increment current employees: %w", err)
	}
	return nil
}
