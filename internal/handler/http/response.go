package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-cloud-editor/internal/app"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/utils"
)

// decodeBody decodes the JSON body into v. On failure it answers 400 and
// returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, funcName string, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError answers with the status and message mapped from err.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if resp.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", resp.status).Msg("request failed")

	utils.WriteError(w, resp.message, resp.status)
}

func writeResult(w http.ResponseWriter, r *http.Request, funcName string, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}
