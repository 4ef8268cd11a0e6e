package utils

import (
	"encoding/json"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"assetverse/apperror"
)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(dst)
	if err != nil {
		return err
	}
	return nil
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		zap.L().Error(message, zap.Error(err))
	}
	RespondJSON(w, statusCode, map[string]string{"error": message})
}

// RespondAppError maps a typed service error onto the wire. Seat-limit is
// the one non-error outcome: the original contract answers it with a 200
// limit_reached body so the client can offer the upgrade path.
func RespondAppError(w http.ResponseWriter, err error) {
	appErr := apperror.From(err)
	if appErr.Kind == apperror.KindSeatLimit {
		RespondJSON(w, http.StatusOK, map[string]interface{}{
			"message":      "limit_reached",
			"currentLimit": appErr.CurrentLimit,
		})
		return
	}
	RespondError(w, appErr.HTTPStatus(), appErr.Err, appErr.Msg)
}
