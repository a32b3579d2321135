package http

import (
	"net/http"
)

type versionResponse struct {
	Version string `json:"version"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	writeResult(w, r, "*Handler.getServerVersion", versionResponse{Version: serverVersion}, http.StatusOK)
}
