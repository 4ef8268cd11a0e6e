package requestservice

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"assetverse/models"
	"assetverse/providers"
	"assetverse/utils"
)

type RequestHandler struct {
	Service        RequestService
	Logger         providers.ZapLoggerProvider
	AuthMiddleware providers.AuthMiddlewareService
}

func NewRequestHandler(service RequestService, logger providers.ZapLoggerProvider, auth providers.AuthMiddlewareService) *RequestHandler {
	return &RequestHandler{
		Service:        service,
		Logger:         logger,
		AuthMiddleware: auth,
	}
}

func (h *RequestHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	requesterEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req SubmitRequestReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	requestID, err := h.Service.Submit(r.Context(), requesterEmail, req)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"insertedId": requestID})
}

func (h *RequestHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	requesterEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request id")
		return
	}

	deleted, err := h.Service.Cancel(r.Context(), requesterEmail, requestID)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

func (h *RequestHandler) DecideRequest(w http.ResponseWriter, r *http.Request) {
	hrEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request id")
		return
	}

	var req DecideRequestReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	result, err := h.Service.Decide(r.Context(), hrEmail, requestID, models.RequestStatus(req.Status))
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	if result.LimitReached {
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"message":      "limit_reached",
			"currentLimit": result.CurrentLimit,
		})
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]int64{"modifiedCount": result.ModifiedCount})
}

func (h *RequestHandler) ReturnRequest(w http.ResponseWriter, r *http.Request) {
	requesterEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request id")
		return
	}

	modified, err := h.Service.Return(r.Context(), requesterEmail, requestID)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}

func (h *RequestHandler) GetHRRequests(w http.ResponseWriter, r *http.Request) {
	hrEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	query := utils.ParseListQuery(r)
	limit, offset := query.LimitOffset()
	requests, count, err := h.Service.GetHRRequests(r.Context(), hrEmail, limit, offset)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"result": requests, "count": count})
}

func (h *RequestHandler) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	requesterEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	query := utils.ParseListQuery(r)
	limit, offset := query.LimitOffset()
	requests, count, err := h.Service.GetMyRequests(r.Context(), requesterEmail, RequestFilter{
		Search: query.Search,
		Status: query.Filter,
		Sort:   query.Sort,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"result": requests, "count": count})
}
