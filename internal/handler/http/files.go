package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-cloud-editor/models"
)

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.services.FileService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listFiles", err)
		return
	}
	if files == nil {
		files = []models.File{}
	}

	writeResult(w, r, "*Handler.listFiles", models.ListFilesResponse{Files: files, Length: len(files)}, http.StatusOK)
}

func (h *Handler) createFile(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFileRequest
	if !decodeBody(w, r, "*Handler.createFile", &req) {
		return
	}

	created, err := h.services.FileService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.createFile", err)
		return
	}

	writeResult(w, r, "*Handler.createFile", created, http.StatusCreated)
}

func (h *Handler) updateFile(w http.ResponseWriter, r *http.Request) {
	var update models.FileUpdate
	if !decodeBody(w, r, "*Handler.updateFile", &update) {
		return
	}
	update.ID = chi.URLParam(r, "id")

	updated, err := h.services.FileService.Update(r.Context(), update)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateFile", err)
		return
	}

	writeResult(w, r, "*Handler.updateFile", updated, http.StatusOK)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	if err := h.services.FileService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteFile", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
