package userservice

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"assetverse/providers"
	"assetverse/utils"
)

type UserHandler struct {
	Service        UserService
	Logger         providers.ZapLoggerProvider
	AuthMiddleware providers.AuthMiddlewareService
}

func NewUserHandler(service UserService, logger providers.ZapLoggerProvider, auth providers.AuthMiddlewareService) *UserHandler {
	return &UserHandler{
		Service:        service,
		Logger:         logger,
		AuthMiddleware: auth,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		h.Logger.GetLogger().Error("failed to parse register body", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	insertedID, err := h.Service.Register(r.Context(), req)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"insertedId": insertedID})
}

func (h *UserHandler) SessionLogin(w http.ResponseWriter, r *http.Request) {
	var req SessionLoginReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	user, accessToken, refreshToken, err := h.Service.SessionLogin(r.Context(), req.IDToken)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"user":          user,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	email, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	if err := h.Service.Logout(r.Context(), email); err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	user, err := h.Service.GetUser(r.Context(), email)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	callerEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req UpdateUserReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	modified, err := h.Service.UpdateUser(r.Context(), callerEmail, chi.URLParam(r, "email"), req)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}

func (h *UserHandler) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	hrEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req RemoveEmployeeReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}
	if req.HREmail != hrEmail {
		utils.RespondError(w, http.StatusForbidden, nil, "can only remove employees from your own team")
		return
	}

	modified, err := h.Service.RemoveEmployee(r.Context(), chi.URLParam(r, "id"), hrEmail)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}

func (h *UserHandler) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	email, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	members, err := h.Service.GetMyTeam(r.Context(), email)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, members)
}

func (h *UserHandler) GetMyEmployees(w http.ResponseWriter, r *http.Request) {
	hrEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	query := utils.ParseListQuery(r)
	limit, offset := query.LimitOffset()
	employees, count, err := h.Service.GetMyEmployees(r.Context(), hrEmail, limit, offset)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"result": employees, "count": count})
}
