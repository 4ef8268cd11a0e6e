package dashboardservice

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"assetverse/providers"
)

func newDashboardHandlerWithMocks(t *testing.T) (*DashboardHandler, *MockDashboardService, *providers.MockAuthMiddlewareService, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockService := NewMockDashboardService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	handler := NewDashboardHandler(mockService, mockLogger, mockAuth)
	return handler, mockService, mockAuth, ctrl
}

func TestHRStatsHandler(t *testing.T) {
	handler, mockService, mockAuth, ctrl := newDashboardHandlerWithMocks(t)
	defer ctrl.Finish()

	r := httptest.NewRequest(http.MethodGet, "/api/hr-stats", nil)
	w := httptest.NewRecorder()

	mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("hr@acme.test", "hr", nil)
	mockService.EXPECT().HRStats(gomock.Any(), "hr@acme.test").
		Return(RequestStats{TotalRequests: 10, Returnable: 6, NonReturnable: 4, Pending: 2}, nil)

	handler.HRStats(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalRequests":10,"returnable":6,"nonReturnable":4,"pending":2}`, w.Body.String())
}

func TestEmployeeMonthlyRequestsHandler(t *testing.T) {
	handler, mockService, mockAuth, ctrl := newDashboardHandlerWithMocks(t)
	defer ctrl.Finish()

	r := httptest.NewRequest(http.MethodGet, "/api/employee-monthly-requests", nil)
	w := httptest.NewRecorder()

	mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("emp@acme.test", "employee", nil)
	mockService.EXPECT().EmployeeMonthlyRequests(gomock.Any(), "emp@acme.test").
		Return([]EmployeeRequestItem{}, nil)

	handler.EmployeeMonthlyRequests(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDashboardUnauthorized(t *testing.T) {
	handler, _, mockAuth, ctrl := newDashboardHandlerWithMocks(t)
	defer ctrl.Finish()

	r := httptest.NewRequest(http.MethodGet, "/api/hr-pending-requests", nil)
	w := httptest.NewRecorder()

	mockAuth.EXPECT().GetUserAndRoleFromContext(gomock.Any()).Return("", "", assert.AnError)

	handler.HRPendingRequests(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
