package requestservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"assetverse/apperror"
	"assetverse/models"
	"assetverse/providers"
)

type RequestService interface {
	Submit(ctx context.Context, requesterEmail string, req SubmitRequestReq) (uuid.UUID, error)
	Cancel(ctx context.Context, requesterEmail string, requestID uuid.UUID) (int64, error)
	Decide(ctx context.Context, hrEmail string, requestID uuid.UUID, status models.RequestStatus) (DecisionResult, error)
	Return(ctx context.Context, requesterEmail string, requestID uuid.UUID) (int64, error)
	GetHRRequests(ctx context.Context, hrEmail string, limit, offset int) ([]Request, int, error)
	GetMyRequests(ctx context.Context, requesterEmail string, filter RequestFilter) ([]Request, int, error)
}

type requestService struct {
	repo   RequestRepository
	logger providers.ZapLoggerProvider
}

func NewRequestService(repo RequestRepository, logger providers.ZapLoggerProvider) RequestService {
	return &requestService{
		repo:   repo,
		logger: logger,
	}
}

func (s *requestService) Submit(ctx context.Context, requesterEmail string, req SubmitRequestReq) (uuid.UUID, error) {
	snap, err := s.repo.GetAssetSnapshot(ctx, req.AssetID)
	if err != nil {
		return uuid.Nil, err
	}

	requesterName, err := s.repo.GetUserName(ctx, requesterEmail)
	if err != nil {
		return uuid.Nil, err
	}

	requestID, err := s.repo.InsertRequest(ctx, Request{
		AssetID:        snap.ID,
		ProductName:    snap.ProductName,
		ProductType:    snap.ProductType,
		HREmail:        snap.HREmail,
		HRName:         snap.HRName,
		RequesterName:  requesterName,
		RequesterEmail: requesterEmail,
		Status:         string(models.StatusPending),
		Note:           req.Note,
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.logger.GetLogger().Info("request submitted",
		zap.String("requestId", requestID.String()),
		zap.String("requester", requesterEmail),
		zap.String("product", snap.ProductName))
	return requestID, nil
}

func (s *requestService) Cancel(ctx context.Context, requesterEmail string, requestID uuid.UUID) (int64, error) {
	deleted, err := s.repo.DeleteRequestIfPending(ctx, requestID, requesterEmail)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, apperror.NotFound("no pending request to cancel")
	}
	return deleted, nil
}

// Decide moves a pending request to approved or rejected. Approval also
// consumes one unit of stock and, when the requester is not yet on a team,
// one seat of the HR's package. Every side effect rides the same transaction,
// so a seat-limit hit or empty stock leaves the request pending and the
// counters untouched.
func (s *requestService) Decide(ctx context.Context, hrEmail string, requestID uuid.UUID, status models.RequestStatus) (DecisionResult, error) {
	var result DecisionResult

	err := s.repo.RunInTx(ctx, func(tx *sqlx.Tx) error {
		req, err := s.repo.GetRequestForUpdate(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if req.HREmail != hrEmail {
			return apperror.Forbidden("request belongs to another team")
		}
		if req.Status != string(models.StatusPending) {
			result = DecisionResult{ModifiedCount: 0}
			return nil
		}

		if status == models.StatusRejected {
			modified, err := s.repo.UpdateStatus(ctx, tx, requestID, models.StatusRejected)
			if err != nil {
				return err
			}
			result = DecisionResult{ModifiedCount: modified}
			return nil
		}

		modified, err := s.repo.DecrementAssetStock(ctx, tx, req.AssetID)
		if err != nil {
			return err
		}
		if modified == 0 {
			return apperror.InsufficientStock("asset is out of stock")
		}

		currentHR, err := s.repo.GetEmployeeHRForUpdate(ctx, tx, req.RequesterEmail)
		if err != nil {
			return err
		}
		if currentHR == nil {
			limit, current, err := s.repo.GetSeatUsageForUpdate(ctx, tx, hrEmail)
			if err != nil {
				return err
			}
			if current >= limit {
				return apperror.SeatLimit(limit)
			}
			if err := s.repo.AttachEmployeeToTeam(ctx, tx, req.RequesterEmail, hrEmail); err != nil {
				return err
			}
		}

		modified, err = s.repo.UpdateStatus(ctx, tx, requestID, models.StatusApproved)
		if err != nil {
			return err
		}
		result = DecisionResult{ModifiedCount: modified}
		return nil
	})
	if err != nil {
		appErr := apperror.From(err)
		if appErr.Kind == apperror.KindSeatLimit {
			s.logger.GetLogger().Info("approval blocked by seat limit",
				zap.String("hr", hrEmail),
				zap.Int("limit", appErr.CurrentLimit))
			return DecisionResult{LimitReached: true, CurrentLimit: appErr.CurrentLimit}, nil
		}
		return DecisionResult{}, err
	}
	return result, nil
}

func (s *requestService) Return(ctx context.Context, requesterEmail string, requestID uuid.UUID) (int64, error) {
	var modified int64

	err := s.repo.RunInTx(ctx, func(tx *sqlx.Tx) error {
		req, err := s.repo.GetRequestForUpdate(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if req.RequesterEmail != requesterEmail {
			return apperror.Forbidden("request belongs to another employee")
		}
		if req.Status != string(models.StatusApproved) {
			return apperror.Validation("only approved requests can be returned")
		}
		if req.ProductType != string(models.Returnable) {
			return apperror.Validation("asset is not returnable")
		}

		modified, err = s.repo.UpdateStatus(ctx, tx, requestID, models.StatusReturned)
		if err != nil {
			return err
		}
		return s.repo.IncrementAssetStock(ctx, tx, req.AssetID)
	})
	if err != nil {
		return 0, err
	}
	return modified, nil
}

func (s *requestService) GetHRRequests(ctx context.Context, hrEmail string, limit, offset int) ([]Request, int, error) {
	return s.repo.GetRequestsByHR(ctx, hrEmail, limit, offset)
}

func (s *requestService) GetMyRequests(ctx context.Context, requesterEmail string, filter RequestFilter) ([]Request, int, error) {
	return s.repo.SearchRequestsByRequester(ctx, requesterEmail, filter)
}
