package assetservice

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"assetverse/providers"
)

type AssetService interface {
	AddAsset(ctx context.Context, req AddAssetReq, hrEmail string) (uuid.UUID, error)
	GetAsset(ctx context.Context, assetID uuid.UUID) (Asset, error)
	UpdateAsset(ctx context.Context, assetID uuid.UUID, hrEmail string, req UpdateAssetReq) (int64, error)
	DeleteAsset(ctx context.Context, assetID uuid.UUID, hrEmail string) (int64, error)
	GetAssetsForHR(ctx context.Context, hrEmail string, filter AssetFilter) ([]Asset, int, error)
	GetAvailableAssets(ctx context.Context, filter AssetFilter) ([]Asset, int, error)
}

type assetService struct {
	repo   AssetRepository
	logger providers.ZapLoggerProvider
}

func NewAssetService(repo AssetRepository, logger providers.ZapLoggerProvider) AssetService {
	return &assetService{repo: repo, logger: logger}
}

func (s *assetService) AddAsset(ctx context.Context, req AddAssetReq, hrEmail string) (uuid.UUID, error) {
	assetID, err := s.repo.AddAsset(ctx, req, hrEmail)
	if err != nil {
		return uuid.Nil, err
	}
	s.logger.GetLogger().Info("asset added",
		zap.String("asset_id", assetID.String()),
		zap.String("hr_email", hrEmail),
		zap.String("product_name", req.ProductName))
	return assetID, nil
}

func (s *assetService) GetAsset(ctx context.Context, assetID uuid.UUID) (Asset, error) {
	return s.repo.GetAssetByID(ctx, assetID)
}

func (s *assetService) UpdateAsset(ctx context.Context, assetID uuid.UUID, hrEmail string, req UpdateAssetReq) (int64, error) {
	return s.repo.UpdateAsset(ctx, assetID, hrEmail, req)
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID uuid.UUID, hrEmail string) (int64, error) {
	return s.repo.DeleteAsset(ctx, assetID, hrEmail)
}

func (s *assetService) GetAssetsForHR(ctx context.Context, hrEmail string, filter AssetFilter) ([]Asset, int, error) {
	return s.repo.SearchAssetsWithFilter(ctx, hrEmail, filter)
}

func (s *assetService) GetAvailableAssets(ctx context.Context, filter AssetFilter) ([]Asset, int, error) {
	return s.repo.SearchAvailableAssets(ctx, filter)
}
