package assetservice

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"assetverse/providers"
	"assetverse/utils"
)

type AssetHandler struct {
	Service        AssetService
	Logger         providers.ZapLoggerProvider
	AuthMiddleware providers.AuthMiddlewareService
}

func NewAssetHandler(service AssetService, logger providers.ZapLoggerProvider, auth providers.AuthMiddlewareService) *AssetHandler {
	return &AssetHandler{
		Service:        service,
		Logger:         logger,
		AuthMiddleware: auth,
	}
}

func (h *AssetHandler) AddAsset(w http.ResponseWriter, r *http.Request) {
	hrEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	var req AddAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	assetID, err := h.Service.AddAsset(r.Context(), req, hrEmail)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"insertedId": assetID})
}

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}

	asset, err := h.Service.GetAsset(r.Context(), assetID)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	hrEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	assetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}

	var req UpdateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := validator.New().Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}

	modified, err := h.Service.UpdateAsset(r.Context(), assetID, hrEmail, req)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}

func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	hrEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	assetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}

	deleted, err := h.Service.DeleteAsset(r.Context(), assetID, hrEmail)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

func (h *AssetHandler) GetAssets(w http.ResponseWriter, r *http.Request) {
	hrEmail, _, err := h.AuthMiddleware.GetUserAndRoleFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	query := utils.ParseListQuery(r)
	limit, offset := query.LimitOffset()
	assets, count, err := h.Service.GetAssetsForHR(r.Context(), hrEmail, AssetFilter{
		Search: query.Search,
		Type:   query.Filter,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"result": assets, "count": count})
}

func (h *AssetHandler) GetAvailableAssets(w http.ResponseWriter, r *http.Request) {
	query := utils.ParseListQuery(r)
	limit, offset := query.LimitOffset()
	assets, count, err := h.Service.GetAvailableAssets(r.Context(), AssetFilter{
		Search: query.Search,
		Type:   query.Filter,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"result": assets, "count": count})
}
