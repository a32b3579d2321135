package http

import "net/http"

func (h *Handler) getTree(w http.ResponseWriter, r *http.Request) {
	forest, err := h.services.TreeService.Tree(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.getTree", err)
		return
	}

	writeResult(w, r, "*Handler.getTree", forest, http.StatusOK)
}
