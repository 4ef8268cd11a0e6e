package paymentservice

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"assetverse/apperror"
	"assetverse/providers"
)

var packageCatalog = []Package{
	{Members: 5, PriceCents: 500, Tier: "basic"},
	{Members: 10, PriceCents: 800, Tier: "standard"},
	{Members: 20, PriceCents: 1500, Tier: "premium"},
}

type PaymentService interface {
	GetPackages(ctx context.Context) []Package
	Checkout(ctx context.Context, hrEmail string, req CheckoutReq) (CheckoutResult, error)
	GetPaymentHistory(ctx context.Context, hrEmail string) ([]Payment, error)
}

type paymentService struct {
	repo    PaymentRepository
	gateway providers.PaymentProvider
	logger  providers.ZapLoggerProvider
}

func NewPaymentService(repo PaymentRepository, gateway providers.PaymentProvider, logger providers.ZapLoggerProvider) PaymentService {
	return &paymentService{
		repo:    repo,
		gateway: gateway,
		logger:  logger,
	}
}

func (s *paymentService) GetPackages(ctx context.Context) []Package {
	return packageCatalog
}

// Checkout charges the gateway first and records the upgrade after. A charge
// that succeeds but fails to record is surfaced as an error with the
// transaction id logged, so it can be reconciled by hand.
func (s *paymentService) Checkout(ctx context.Context, hrEmail string, req CheckoutReq) (CheckoutResult, error) {
	var chosen *Package
	for i := range packageCatalog {
		if packageCatalog[i].Members == req.PackageLimit {
			chosen = &packageCatalog[i]
			break
		}
	}
	if chosen == nil {
		return CheckoutResult{}, apperror.Validation("unknown package")
	}

	charge, err := s.gateway.Charge(ctx, providers.ChargeReq{
		Email:       hrEmail,
		AmountCents: chosen.PriceCents,
		Description: fmt.Sprintf("%s plan, %d members", chosen.Tier, chosen.Members),
	})
	if err != nil {
		return CheckoutResult{}, apperror.Wrap(apperror.KindInternal, "payment failed", err)
	}

	result := CheckoutResult{
		TransactionID: charge.TransactionID,
		PackageLimit:  chosen.Members,
		Tier:          chosen.Tier,
	}
	err = s.repo.RunInTx(ctx, func(tx *sqlx.Tx) error {
		paymentID, err := s.repo.InsertPayment(ctx, tx, Payment{
			HREmail:       hrEmail,
			PackageLimit:  chosen.Members,
			AmountCents:   chosen.PriceCents,
			Tier:          chosen.Tier,
			TransactionID: charge.TransactionID,
		})
		if err != nil {
			return err
		}
		result.InsertedID = paymentID

		modified, err := s.repo.UpgradeSubscription(ctx, tx, hrEmail, chosen.Members, chosen.Tier)
		if err != nil {
			return err
		}
		if modified == 0 {
			return apperror.NotFound("hr account not found")
		}
		return nil
	})
	if err != nil {
		s.logger.GetLogger().Error("charge succeeded but upgrade was not recorded",
			zap.String("hr", hrEmail),
			zap.String("transactionId", charge.TransactionID),
			zap.Error(err))
		return CheckoutResult{}, err
	}

	s.logger.GetLogger().Info("subscription upgraded",
		zap.String("hr", hrEmail),
		zap.String("tier", chosen.Tier),
		zap.Int("members", chosen.Members))
	return result, nil
}

func (s *paymentService) GetPaymentHistory(ctx context.Context, hrEmail string) ([]Payment, error) {
	return s.repo.GetPaymentsByHR(ctx, hrEmail)
}
