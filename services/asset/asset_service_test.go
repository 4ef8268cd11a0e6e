package assetservice

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"assetverse/apperror"
	"assetverse/providers"
)

func newAssetServiceWithMocks(t *testing.T) (*assetService, *MockAssetRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockRepo := NewMockAssetRepository(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	service := &assetService{
		repo:   mockRepo,
		logger: mockLogger,
	}
	return service, mockRepo, ctrl
}

func TestAddAsset(t *testing.T) {
	service, mockRepo, ctrl := newAssetServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	assetID := uuid.New()

	req := AddAssetReq{
		ProductName:     "Dell Monitor",
		ProductType:     "Returnable",
		ProductQuantity: 12,
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().AddAsset(ctx, req, "hr@acme.test").Return(assetID, nil)

		id, err := service.AddAsset(ctx, req, "hr@acme.test")

		assert.NoError(t, err)
		assert.Equal(t, assetID, id)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().AddAsset(ctx, req, "hr@acme.test").Return(uuid.Nil, errors.New("db error"))

		_, err := service.AddAsset(ctx, req, "hr@acme.test")

		assert.Error(t, err)
	})
}

func TestGetAsset(t *testing.T) {
	service, mockRepo, ctrl := newAssetServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	assetID := uuid.New()

	t.Run("unknown asset", func(t *testing.T) {
		mockRepo.EXPECT().GetAssetByID(ctx, assetID).
			Return(Asset{}, apperror.NotFound("asset not found"))

		_, err := service.GetAsset(ctx, assetID)

		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestUpdateAsset(t *testing.T) {
	service, mockRepo, ctrl := newAssetServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	assetID := uuid.New()
	quantity := 4

	t.Run("owner updates quantity", func(t *testing.T) {
		req := UpdateAssetReq{ProductQuantity: &quantity}
		mockRepo.EXPECT().UpdateAsset(ctx, assetID, "hr@acme.test", req).Return(int64(1), nil)

		modified, err := service.UpdateAsset(ctx, assetID, "hr@acme.test", req)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), modified)
	})

	t.Run("someone else's asset is a no-op", func(t *testing.T) {
		req := UpdateAssetReq{ProductQuantity: &quantity}
		mockRepo.EXPECT().UpdateAsset(ctx, assetID, "other-hr@acme.test", req).Return(int64(0), nil)

		modified, err := service.UpdateAsset(ctx, assetID, "other-hr@acme.test", req)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), modified)
	})
}

func TestGetAvailableAssets(t *testing.T) {
	service, mockRepo, ctrl := newAssetServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	filter := AssetFilter{Search: "mac", Type: "Returnable", Limit: 10, Offset: 0}

	t.Run("passes the filter through", func(t *testing.T) {
		expected := []Asset{{ProductName: "MacBook Air", ProductType: "Returnable", ProductQuantity: 2}}
		mockRepo.EXPECT().SearchAvailableAssets(ctx, filter).Return(expected, 1, nil)

		assets, count, err := service.GetAvailableAssets(ctx, filter)

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, expected, assets)
	})
}
