package userservice

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"assetverse/providers"
)

func newUserHandlerWithMocks(t *testing.T) (*UserHandler, *MockUserService, *providers.MockAuthMiddlewareService, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockService := NewMockUserService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	handler := NewUserHandler(mockService, mockLogger, mockAuth)
	return handler, mockService, mockAuth, ctrl
}

func withEmailParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRegisterHandler(t *testing.T) {
	handler, mockService, _, ctrl := newUserHandlerWithMocks(t)
	defer ctrl.Finish()

	t.Run("created", func(t *testing.T) {
		body := bytes.NewBufferString(`{
			"email": "hr@acme.test",
			"password": "s3cret-pass",
			"name": "Hana Reyes",
			"role": "hr",
			"companyName": "Acme"
		}`)
		r := httptest.NewRequest(http.MethodPost, "/api/users", body)
		w := httptest.NewRecorder()

		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return("hr@acme.test", nil)

		handler.Register(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "hr@acme.test")
	})

	t.Run("hr without a company name is rejected", func(t *testing.T) {
		body := bytes.NewBufferString(`{
			"email": "hr@acme.test",
			"password": "s3cret-pass",
			"name": "Hana Reyes",
			"role": "hr"
		}`)
		r := httptest.NewRequest(http.MethodPost, "/api/users", body)
		w := httptest.NewRecorder()

		handler.Register(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed date of birth is rejected", func(t *testing.T) {
		body := bytes.NewBufferString(`{
			"email": "emp@acme.test",
			"password": "s3cret-pass",
			"name": "Evan Park",
			"role": "employee",
			"dateOfBirth": "31-12-1990"
		}`)
		r := httptest.NewRequest(http.MethodPost, "/api/users", body)
		w := httptest.NewRecorder()

		handler.Register(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateUserHandler(t *testing.T) {
	handler, mockService, mockAuth, ctrl := newUserHandlerWithMocks(t)
	defer ctrl.Finish()

	t.Run("updates own profile", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"Evan P","dateOfBirth":"1990-12-31"}`)
		r := httptest.NewRequest(http.MethodPut, "/api/users/emp@acme.test", body)
		r = withEmailParam(r, "email", "emp@acme.test")
		w := httptest.NewRecorder()

		mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("emp@acme.test", "employee", nil)
		mockService.EXPECT().UpdateUser(gomock.Any(), "emp@acme.test", "emp@acme.test", gomock.Any()).Return(int64(1), nil)

		handler.UpdateUser(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"modifiedCount":1}`, w.Body.String())
	})

	t.Run("malformed date of birth is rejected", func(t *testing.T) {
		body := bytes.NewBufferString(`{"dateOfBirth":"next tuesday"}`)
		r := httptest.NewRequest(http.MethodPut, "/api/users/emp@acme.test", body)
		r = withEmailParam(r, "email", "emp@acme.test")
		w := httptest.NewRecorder()

		mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("emp@acme.test", "employee", nil)

		handler.UpdateUser(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRemoveEmployeeHandler(t *testing.T) {
	handler, mockService, mockAuth, ctrl := newUserHandlerWithMocks(t)
	defer ctrl.Finish()

	t.Run("removes from own team", func(t *testing.T) {
		body := bytes.NewBufferString(`{"hrEmail":"hr@acme.test"}`)
		r := httptest.NewRequest(http.MethodPatch, "/api/users/remove/emp@acme.test", body)
		r = withEmailParam(r, "id", "emp@acme.test")
		w := httptest.NewRecorder()

		mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("hr@acme.test", "hr", nil)
		mockService.EXPECT().RemoveEmployee(gomock.Any(), "emp@acme.test", "hr@acme.test").Return(int64(1), nil)

		handler.RemoveEmployee(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"modifiedCount":1}`, w.Body.String())
	})

	t.Run("cannot act for another hr", func(t *testing.T) {
		body := bytes.NewBufferString(`{"hrEmail":"other-hr@acme.test"}`)
		r := httptest.NewRequest(http.MethodPatch, "/api/users/remove/emp@acme.test", body)
		r = withEmailParam(r, "id", "emp@acme.test")
		w := httptest.NewRecorder()

		mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("hr@acme.test", "hr", nil)

		handler.RemoveEmployee(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetMyEmployeesHandler(t *testing.T) {
	handler, mockService, mockAuth, ctrl := newUserHandlerWithMocks(t)
	defer ctrl.Finish()

	t.Run("paged listing envelope", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/my-employees?page=0&size=5", nil)
		w := httptest.NewRecorder()

		mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("hr@acme.test", "hr", nil)
		mockService.EXPECT().GetMyEmployees(gomock.Any(), "hr@acme.test", 5, 0).
			Return([]User{{Email: "emp@acme.test", Name: "Evan Park", Role: "employee"}}, 1, nil)

		handler.GetMyEmployees(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":1`)
		assert.Contains(t, w.Body.String(), "emp@acme.test")
	})
}
