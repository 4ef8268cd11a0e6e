package dashboardservice

import (
	"net/http"

	"assetverse/providers"
	"assetverse/utils"
)

type DashboardHandler struct {
	Service        DashboardService
	Logger         providers.ZapLoggerProvider
	AuthMiddleware providers.AuthMiddlewareService
}

func NewDashboardHandler(service DashboardService, logger providers.ZapLoggerProvider, auth providers.AuthMiddlewareService) *DashboardHandler {
	return &DashboardHandler{
		Service:        service,
		Logger:         logger,
		AuthMiddleware: auth,
	}
}

func (h *DashboardHandler) sessionEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return "", false
	}
	return email, true
}

func (h *DashboardHandler) HRPendingRequests(w http.ResponseWriter, r *http.Request) {
	hrEmail, ok := h.sessionEmail(w, r)
	if !ok {
		return
	}
	items, err := h.Service.HRPendingRequests(r.Context(), hrEmail)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}

func (h *DashboardHandler) HRLimitedStock(w http.ResponseWriter, r *http.Request) {
	hrEmail, ok := h.sessionEmail(w, r)
	if !ok {
		return
	}
	assets, err := h.Service.HRLimitedStock(r.Context(), hrEmail)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, assets)
}

func (h *DashboardHandler) HRStats(w http.ResponseWriter, r *http.Request) {
	hrEmail, ok := h.sessionEmail(w, r)
	if !ok {
		return
	}
	stats, err := h.Service.HRStats(r.Context(), hrEmail)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) HRTopRequests(w http.ResponseWriter, r *http.Request) {
	hrEmail, ok := h.sessionEmail(w, r)
	if !ok {
		return
	}
	items, err := h.Service.HRTopRequests(r.Context(), hrEmail)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}

func (h *DashboardHandler) EmployeePendingRequests(w http.ResponseWriter, r *http.Request) {
	email, ok := h.sessionEmail(w, r)
	if !ok {
		return
	}
	items, err := h.Service.EmployeePendingRequests(r.Context(), email)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}

func (h *DashboardHandler) EmployeeMonthlyRequests(w http.ResponseWriter, r *http.Request) {
	email, ok := h.sessionEmail(w, r)
	if !ok {
		return
	}
	items, err := h.Service.EmployeeMonthlyRequests(r.Context(), email)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}
