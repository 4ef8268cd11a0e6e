package paymentservice

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"assetverse/providers"
	"assetverse/utils"
)

type PaymentHandler struct {
	Service        PaymentService
	Logger         providers.ZapLoggerProvider
	AuthMiddleware providers.AuthMiddlewareService
}

func NewPaymentHandler(service PaymentService, logger providers.ZapLoggerProvider, auth providers.AuthMiddlewareService) *PaymentHandler {
	return &PaymentHandler{
		Service:        service,
		Logger:         logger,
		AuthMiddleware: auth,
	}
}

func (h *PaymentHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.Service.GetPackages(r.Context()))
}

func (h *PaymentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	hrEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req CheckoutReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	result, err := h.Service.Checkout(r.Context(), hrEmail, req)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, result)
}

func (h *PaymentHandler) GetPaymentHistory(w http.ResponseWriter, r *http.Request) {
	hrEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	payments, err := h.Service.GetPaymentHistory(r.Context(), hrEmail)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"result": payments, "count": len(payments)})
}
