package assetservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"assetverse/apperror"
)

type AssetRepository interface {
	AddAsset(ctx context.Context, req AddAssetReq, hrEmail string) (uuid.UUID, error)
	GetAssetByID(ctx context.Context, assetID uuid.UUID) (Asset, error)
	UpdateAsset(ctx context.Context, assetID uuid.UUID, hrEmail string, req UpdateAssetReq) (int64, error)
	DeleteAsset(ctx context.Context, assetID uuid.UUID, hrEmail string) (int64, error)
	SearchAssetsWithFilter(ctx context.Context, hrEmail string, filter AssetFilter) ([]Asset, int, error)
	SearchAvailableAssets(ctx context.Context, filter AssetFilter) ([]Asset, int, error)
}

type PostgresAssetRepository struct {
	DB *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) AssetRepository {
	return &PostgresAssetRepository{DB: db}
}

func (r *PostgresAssetRepository) AddAsset(ctx context.Context, req AddAssetReq, hrEmail string) (uuid.UUID, error) {
	var assetID uuid.UUID
	err := r.DB.GetContext(ctx, &assetID, `
		INSERT INTO assets (product_name, product_type, product_quantity, date_added, hr_email)
		VALUES ($1, $2, $3, CURRENT_DATE, $4)
		RETURNING id
	`, req.ProductName, req.ProductType, req.ProductQuantity, hrEmail)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert asset: %w", err)
	}
	return assetID, nil
}

func (r *PostgresAssetRepository) GetAssetByID(ctx context.Context, assetID uuid.UUID) (Asset, error) {
	var asset Asset
	err := r.DB.GetContext(ctx, &asset, `
		SELECT a.id, a.product_name, a.product_type, a.product_quantity,
		       to_char(a.date_added, 'YYYY-MM-DD') AS date_added,
		       a.hr_email, u.name AS hr_name
		FROM assets a
		JOIN users u ON u.email = a.hr_email
		WHERE a.id = $1
	`, assetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Asset{}, apperror.NotFound("asset not found")
		}
		return Asset{}, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return asset, nil
}

func (r *PostgresAssetRepository) UpdateAsset(ctx context.Context, assetID uuid.UUID, hrEmail string, req UpdateAssetReq) (int64, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if req.ProductName != "" {
		sets = append(sets, fmt.Sprintf("product_name = $%d", argPos))
		args = append(args, req.ProductName)
		argPos++
	}
	if req.ProductType != "" {
		sets = append(sets, fmt.Sprintf("product_type = $%d", argPos))
		args = append(args, req.ProductType)
		argPos++
	}
	if req.ProductQuantity != nil {
		sets = append(sets, fmt.Sprintf("product_quantity = $%d", argPos))
		args = append(args, *req.ProductQuantity)
		argPos++
	}
	if len(sets) == 0 {
		return 0, apperror.Validation("at least one field must be provided for update")
	}

	query := fmt.Sprintf("UPDATE assets SET %s WHERE id = $%d AND hr_email = $%d",
		strings.Join(sets, ", "), argPos, argPos+1)
	args = append(args, assetID, hrEmail)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update asset: %w", err)
	}
	modified, _ := result.RowsAffected()
	return modified, nil
}

// DeleteAsset removes the inventory row regardless of open requests; request
// rows keep their own denormalized product copy so history survives.
func (r *PostgresAssetRepository) DeleteAsset(ctx context.Context, assetID uuid.UUID, hrEmail string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM assets WHERE id = $1 AND hr_email = $2
	`, assetID, hrEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to delete asset: %w", err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

func (r *PostgresAssetRepository) SearchAssetsWithFilter(ctx context.Context, hrEmail string, filter AssetFilter) ([]Asset, int, error) {
	args := []interface{}{
		hrEmail,
		filter.Search == "",
		filter.Search,
		filter.Type == "",
		filter.Type,
	}
	where := `
		a.hr_email = $1
		AND ($2 OR a.product_name ILIKE '%' || $3 || '%')
		AND ($4 OR a.product_type = $5)
	`

	var count int
	err := r.DB.GetContext(ctx, &count, `
		SELECT count(*) FROM assets a WHERE `+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	assets := make([]Asset, 0)
	err = r.DB.SelectContext(ctx, &assets, `
		SELECT a.id, a.product_name, a.product_type, a.product_quantity,
		       to_char(a.date_added, 'YYYY-MM-DD') AS date_added,
		       a.hr_email, u.name AS hr_name
		FROM assets a
		JOIN users u ON u.email = a.hr_email
		WHERE `+where+`
		ORDER BY a.date_added DESC, a.product_name
		LIMIT $6 OFFSET $7
	`, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search assets: %w", err)
	}
	return assets, count, nil
}

func (r *PostgresAssetRepository) SearchAvailableAssets(ctx context.Context, filter AssetFilter) ([]Asset, int, error) {
	args := []interface{}{
		filter.Search == "",
		filter.Search,
		filter.Type == "",
		filter.Type,
	}
	where := `
		a.product_quantity > 0
		AND ($1 OR a.product_name ILIKE '%' || $2 || '%')
		AND ($3 OR a.product_type = $4)
	`

	var count int
	err := r.DB.GetContext(ctx, &count, `
		SELECT count(*) FROM assets a WHERE `+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count available assets: %w", err)
	}

	assets := make([]Asset, 0)
	err = r.DB.SelectContext(ctx, &assets, `
		SELECT a.id, a.product_name, a.product_type, a.product_quantity,
		       to_char(a.date_added, 'YYYY-MM-DD') AS date_added,
		       a.hr_email, u.name AS hr_name
		FROM assets a
		JOIN users u ON u.email = a.hr_email
		WHERE `+where+`
		ORDER BY a.product_name
		LIMIT $5 OFFSET $6
	`, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search available assets: %w", err)
	}
	return assets, count, nil
}
