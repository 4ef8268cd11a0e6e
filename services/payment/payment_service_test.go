package paymentservice

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
	"assetverse/providers"
)

func newPaymentServiceWithMocks(t *testing.T) (*paymentService, *MockPaymentRepository, *providers.MockPaymentProvider, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockRepo := NewMockPaymentRepository(ctrl)
	mockGateway := providers.NewMockPaymentProvider(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	service := &paymentService{
		repo:    mockRepo,
		gateway: mockGateway,
		logger:  mockLogger,
	}
	return service, mockRepo, mockGateway, ctrl
}

func TestGetPackages(t *testing.T) {
	service, _, _, ctrl := newPaymentServiceWithMocks(t)
	defer ctrl.Finish()

	packages := service.GetPackages(context.Background())

	assert.Len(t, packages, 3)
	assert.Equal(t, Package{Members: 5, PriceCents: 500, Tier: "basic"}, packages[0])
	assert.Equal(t, Package{Members: 10, PriceCents: 800, Tier: "standard"}, packages[1])
	assert.Equal(t, Package{Members: 20, PriceCents: 1500, Tier: "premium"}, packages[2])
}

func TestCheckout(t *testing.T) {
	service, mockRepo, mockGateway, ctrl := newPaymentServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	paymentID := uuid.New()

	t.Run("upgrade to the standard plan", func(t *testing.T) {
		mockGateway.EXPECT().Charge(ctx, providers.ChargeReq{
			Email:       "hr@acme.test",
			AmountCents: 800,
			Description: "standard plan, 10 members",
		}).Return(providers.ChargeRes{TransactionID: "txn_123"}, nil)
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error { return fn(nil) })
		mockRepo.EXPECT().InsertPayment(ctx, gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment Payment) (uuid.UUID, error) {
				assert.Equal(t, 10, payment.PackageLimit)
				assert.Equal(t, 800, payment.AmountCents)
				assert.Equal(t, "txn_123", payment.TransactionID)
				return paymentID, nil
			})
		mockRepo.EXPECT().UpgradeSubscription(ctx, gomock.Nil(), "hr@acme.test", 10, "standard").
			Return(int64(1), nil)

		result, err := service.Checkout(ctx, "hr@acme.test", CheckoutReq{PackageLimit: 10})

		assert.NoError(t, err)
		assert.Equal(t, paymentID, result.InsertedID)
		assert.Equal(t, "txn_123", result.TransactionID)
		assert.Equal(t, "standard", result.Tier)
	})

	t.Run("unknown package", func(t *testing.T) {
		_, err := service.Checkout(ctx, "hr@acme.test", CheckoutReq{PackageLimit: 7})

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("declined charge", func(t *testing.T) {
		mockGateway.EXPECT().Charge(ctx, gomock.Any()).
			Return(providers.ChargeRes{}, errors.New("card declined"))

		_, err := service.Checkout(ctx, "hr@acme.test", CheckoutReq{PackageLimit: 5})

		assert.Error(t, err)
	})

	t.Run("missing hr account", func(t *testing.T) {
		mockGateway.EXPECT().Charge(ctx, gomock.Any()).
			Return(providers.ChargeRes{TransactionID: "txn_456"}, nil)
		mockRepo.EXPECT().RunInTx(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error { return fn(nil) })
		mockRepo.EXPECT().InsertPayment(ctx, gomock.Nil(), gomock.Any()).Return(paymentID, nil)
		mockRepo.EXPECT().UpgradeSubscription(ctx, gomock.Nil(), "ghost@acme.test", 5, "basic").
			Return(int64(0), nil)

		_, err := service.Checkout(ctx, "ghost@acme.test", CheckoutReq{PackageLimit: 5})

		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}
