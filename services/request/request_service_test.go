package requestservice

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"assetverse/apperror"
	"assetverse/models"
	"assetverse/providers"
)

func newServiceWithMocks(t *testing.T) (*requestService, *MockRequestRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockRepo := NewMockRequestRepository(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	service := &requestService{
		repo:   mockRepo,
		logger: mockLogger,
	}
	return service, mockRepo, ctrl
}

func passthroughTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func TestSubmit(t *testing.T) {
	service, mockRepo, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	assetID := uuid.New()
	requestID := uuid.New()

	snap := AssetSnapshot{
		ID:              assetID,
		ProductName:     "ThinkPad X1",
		ProductType:     string(models.Returnable),
		ProductQuantity: 3,
		HREmail:         "hr@acme.test",
		HRName:          "Hana Reyes",
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetAssetSnapshot(ctx, assetID).Return(snap, nil)
		mockRepo.EXPECT().GetUserName(ctx, "emp@acme.test").Return("Evan Park", nil)
		mockRepo.EXPECT().InsertRequest(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req Request) (uuid.UUID, error) {
				assert.Equal(t, "ThinkPad X1", req.ProductName)
				assert.Equal(t, string(models.StatusPending), req.Status)
				assert.Equal(t, "hr@acme.test", req.HREmail)
				assert.Equal(t, "Evan Park", req.RequesterName)
				return requestID, nil
			})

		id, err := service.Submit(ctx, "emp@acme.test", SubmitRequestReq{AssetID: assetID, Note: "need one"})

		assert.NoError(t, err)
		assert.Equal(t, requestID, id)
	})

	t.Run("unknown asset", func(t *testing.T) {
		mockRepo.EXPECT().GetAssetSnapshot(ctx, assetID).
			Return(AssetSnapshot{}, apperror.NotFound("asset not found"))

		_, err := service.Submit(ctx, "emp@acme.test", SubmitRequestReq{AssetID: assetID})

		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestCancel(t *testing.T) {
	service, mockRepo, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()

	t.Run("pending request is deleted", func(t *testing.T) {
		mockRepo.EXPECT().DeleteRequestIfPending(ctx, requestID, "emp@acme.test").Return(int64(1), nil)

		deleted, err := service.Cancel(ctx, "emp@acme.test", requestID)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	t.Run("already decided request is not found", func(t *testing.T) {
		mockRepo.EXPECT().DeleteRequestIfPending(ctx, requestID, "emp@acme.test").Return(int64(0), nil)

		_, err := service.Cancel(ctx, "emp@acme.test", requestID)

		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestDecide(t *testing.T) {
	service, mockRepo, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	assetID := uuid.New()
	hrEmail := "hr@acme.test"

	pending := Request{
		ID:             requestID,
		AssetID:        assetID,
		HREmail:        hrEmail,
		RequesterEmail: "emp@acme.test",
		Status:         string(models.StatusPending),
	}

	t.Run("reject", func(t *testing.T) {
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).DoAndReturn(passthroughTx)
		mockRepo.EXPECT().GetRequestForUpdate(ctx, gomock.Nil(), requestID).Return(pending, nil)
		mockRepo.EXPECT().UpdateStatus(ctx, gomock.Nil(), requestID, models.StatusRejected).Return(int64(1), nil)

		result, err := service.Decide(ctx, hrEmail, requestID, models.StatusRejected)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.ModifiedCount)
		assert.False(t, result.LimitReached)
	})

	t.Run("approve for an employee already on the team", func(t *testing.T) {
		onTeam := hrEmail
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).DoAndReturn(passthroughTx)
		mockRepo.EXPECT().GetRequestForUpdate(ctx, gomock.Nil(), requestID).Return(pending, nil)
		mockRepo.EXPECT().DecrementAssetStock(ctx, gomock.Nil(), assetID).Return(int64(1), nil)
		mockRepo.EXPECT().GetEmployeeHRForUpdate(ctx, gomock.Nil(), "emp@acme.test").Return(&onTeam, nil)
		mockRepo.EXPECT().UpdateStatus(ctx, gomock.Nil(), requestID, models.StatusApproved).Return(int64(1), nil)

		result, err := service.Decide(ctx, hrEmail, requestID, models.StatusApproved)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.ModifiedCount)
	})

	t.Run("approve attaches an unaffiliated employee", func(t *testing.T) {
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).DoAndReturn(passthroughTx)
		mockRepo.EXPECT().GetRequestForUpdate(ctx, gomock.Nil(), requestID).Return(pending, nil)
		mockRepo.EXPECT().DecrementAssetStock(ctx, gomock.Nil(), assetID).Return(int64(1), nil)
		mockRepo.EXPECT().GetEmployeeHRForUpdate(ctx, gomock.Nil(), "emp@acme.test").Return(nil, nil)
		mockRepo.EXPECT().GetSeatUsageForUpdate(ctx, gomock.Nil(), hrEmail).Return(5, 3, nil)
		mockRepo.EXPECT().AttachEmployeeToTeam(ctx, gomock.Nil(), "emp@acme.test", hrEmail).Return(nil)
		mockRepo.EXPECT().UpdateStatus(ctx, gomock.Nil(), requestID, models.StatusApproved).Return(int64(1), nil)

		result, err := service.Decide(ctx, hrEmail, requestID, models.StatusApproved)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.ModifiedCount)
	})

	t.Run("seat limit leaves the request pending", func(t *testing.T) {
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).DoAndReturn(passthroughTx)
		mockRepo.EXPECT().GetRequestForUpdate(ctx, gomock.Nil(), requestID).Return(pending, nil)
		mockRepo.EXPECT().DecrementAssetStock(ctx, gomock.Nil(), assetID).Return(int64(1), nil)
		mockRepo.EXPECT().GetEmployeeHRForUpdate(ctx, gomock.Nil(), "emp@acme.test").Return(nil, nil)
		mockRepo.EXPECT().GetSeatUsageForUpdate(ctx, gomock.Nil(), hrEmail).Return(5, 5, nil)

		result, err := service.Decide(ctx, hrEmail, requestID, models.StatusApproved)

		assert.NoError(t, err)
		assert.True(t, result.LimitReached)
		assert.Equal(t, 5, result.CurrentLimit)
		assert.Equal(t, int64(0), result.ModifiedCount)
	})

	t.Run("out of stock", func(t *testing.T) {
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).DoAndReturn(passthroughTx)
		mockRepo.EXPECT().GetRequestForUpdate(ctx, gomock.Nil(), requestID).Return(pending, nil)
		mockRepo.EXPECT().DecrementAssetStock(ctx, gomock.Nil(), assetID).Return(int64(0), nil)

		_, err := service.Decide(ctx, hrEmail, requestID, models.StatusApproved)

		assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))
	})

	t.Run("already decided request is a no-op", func(t *testing.T) {
		approved := pending
		approved.Status = string(models.StatusApproved)
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).DoAndReturn(passthroughTx)
		mockRepo.EXPECT().GetRequestForUpdate(ctx, gomock.Nil(), requestID).Return(approved, nil)

		result, err := service.Decide(ctx, hrEmail, requestID, models.StatusApproved)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), result.ModifiedCount)
	})

	t.Run("another team's request is forbidden", func(t *testing.T) {
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).DoAndReturn(passthroughTx)
		mockRepo.EXPECT().GetRequestForUpdate(ctx, gomock.Nil(), requestID).Return(pending, nil)

		_, err := service.Decide(ctx, "other-hr@acme.test", requestID, models.StatusApproved)

		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).DoAndReturn(passthroughTx)
		mockRepo.EXPECT().GetRequestForUpdate(ctx, gomock.Nil(), requestID).
			Return(Request{}, errors.New("db error"))

		_, err := service.Decide(ctx, hrEmail, requestID, models.StatusApproved)

		assert.Error(t, err)
	})
}

func TestReturn(t *testing.T) {
	service, mockRepo, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	assetID := uuid.New()

	approved := Request{
		ID:             requestID,
		AssetID:        assetID,
		ProductType:    string(models.Returnable),
		RequesterEmail: "emp@acme.test",
		Status:         string(models.StatusApproved),
	}

	t.Run("returnable approved request restores stock", func(t *testing.T) {
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).DoAndReturn(passthroughTx)
		mockRepo.EXPECT().GetRequestForUpdate(ctx, gomock.Nil(), requestID).Return(approved, nil)
		mockRepo.EXPECT().UpdateStatus(ctx, gomock.Nil(), requestID, models.StatusReturned).Return(int64(1), nil)
		mockRepo.EXPECT().IncrementAssetStock(ctx, gomock.Nil(), assetID).Return(nil)

		modified, err := service.Return(ctx, "emp@acme.test", requestID)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), modified)
	})

	t.Run("non-returnable asset", func(t *testing.T) {
		consumable := approved
		consumable.ProductType = string(models.NonReturnable)
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).DoAndReturn(passthroughTx)
		mockRepo.EXPECT().GetRequestForUpdate(ctx, gomock.Nil(), requestID).Return(consumable, nil)

		_, err := service.Return(ctx, "emp@acme.test", requestID)

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("not yet approved", func(t *testing.T) {
		stillPending := approved
		stillPending.Status = string(models.StatusPending)
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).DoAndReturn(passthroughTx)
		mockRepo.EXPECT().GetRequestForUpdate(ctx, gomock.Nil(), requestID).Return(stillPending, nil)

		_, err := service.Return(ctx, "emp@acme.test", requestID)

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("someone else's request", func(t *testing.T) {
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).DoAndReturn(passthroughTx)
		mockRepo.EXPECT().GetRequestForUpdate(ctx, gomock.Nil(), requestID).Return(approved, nil)

		_, err := service.Return(ctx, "other@acme.test", requestID)

		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})
}
