package requestservice

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"assetverse/models"
	"assetverse/providers"
)

func newHandlerWithMocks(t *testing.T) (*RequestHandler, *MockRequestService, *providers.MockAuthMiddlewareService, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockService := NewMockRequestService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	handler := NewRequestHandler(mockService, mockLogger, mockAuth)
	return handler, mockService, mockAuth, ctrl
}

func withRouteParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestDecideRequestHandler(t *testing.T) {
	handler, mockService, mockAuth, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	requestID := uuid.New()

	t.Run("approved", func(t *testing.T) {
		body := bytes.NewBufferString(`{"status":"approved"}`)
		r := httptest.NewRequest(http.MethodPatch, "/api/requests/"+requestID.String(), body)
		r = withRouteParam(r, "id", requestID.String())
		w := httptest.NewRecorder()

		mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("hr@acme.test", "hr", nil)
		mockService.EXPECT().Decide(gomock.Any(), "hr@acme.test", requestID, models.StatusApproved).
			Return(DecisionResult{ModifiedCount: 1}, nil)

		handler.DecideRequest(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"modifiedCount":1}`, w.Body.String())
	})

	t.Run("seat limit answers limit_reached with 200", func(t *testing.T) {
		body := bytes.NewBufferString(`{"status":"approved"}`)
		r := httptest.NewRequest(http.MethodPatch, "/api/requests/"+requestID.String(), body)
		r = withRouteParam(r, "id", requestID.String())
		w := httptest.NewRecorder()

		mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("hr@acme.test", "hr", nil)
		mockService.EXPECT().Decide(gomock.Any(), "hr@acme.test", requestID, models.StatusApproved).
			Return(DecisionResult{LimitReached: true, CurrentLimit: 5}, nil)

		handler.DecideRequest(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"limit_reached","currentLimit":5}`, w.Body.String())
	})

	t.Run("invalid status", func(t *testing.T) {
		body := bytes.NewBufferString(`{"status":"maybe"}`)
		r := httptest.NewRequest(http.MethodPatch, "/api/requests/"+requestID.String(), body)
		r = withRouteParam(r, "id", requestID.String())
		w := httptest.NewRecorder()

		mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("hr@acme.test", "hr", nil)

		handler.DecideRequest(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad request id", func(t *testing.T) {
		body := bytes.NewBufferString(`{"status":"approved"}`)
		r := httptest.NewRequest(http.MethodPatch, "/api/requests/not-a-uuid", body)
		r = withRouteParam(r, "id", "not-a-uuid")
		w := httptest.NewRecorder()

		mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("hr@acme.test", "hr", nil)

		handler.DecideRequest(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSubmitRequestHandler(t *testing.T) {
	handler, mockService, mockAuth, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	assetID := uuid.New()
	requestID := uuid.New()

	t.Run("created", func(t *testing.T) {
		body := bytes.NewBufferString(`{"assetId":"` + assetID.String() + `","note":"spare charger"}`)
		r := httptest.NewRequest(http.MethodPost, "/api/requests", body)
		w := httptest.NewRecorder()

		mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("emp@acme.test", "employee", nil)
		mockService.EXPECT().Submit(gomock.Any(), "emp@acme.test", SubmitRequestReq{AssetID: assetID, Note: "spare charger"}).
			Return(requestID, nil)

		handler.SubmitRequest(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), requestID.String())
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		body := bytes.NewBufferString(`{"assetId":"` + assetID.String() + `","bogus":true}`)
		r := httptest.NewRequest(http.MethodPost, "/api/requests", body)
		w := httptest.NewRecorder()

		mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("emp@acme.test", "employee", nil)

		handler.SubmitRequest(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetMyRequestsHandler(t *testing.T) {
	handler, mockService, mockAuth, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	t.Run("passes search, filter and paging through", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/my-requested-assets?search=mac&filter=pending&sort=asc&page=1&size=5", nil)
		w := httptest.NewRecorder()

		mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("emp@acme.test", "employee", nil)
		mockService.EXPECT().GetMyRequests(gomock.Any(), "emp@acme.test", RequestFilter{
			Search: "mac",
			Status: "pending",
			Sort:   "asc",
			Limit:  5,
			Offset: 5,
		}).Return([]Request{}, 0, nil)

		handler.GetMyRequests(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":[],"count":0}`, w.Body.String())
	})
}
