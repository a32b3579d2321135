package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-cloud-editor/models"
)

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.services.FolderService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listFolders", err)
		return
	}
	if folders == nil {
		folders = []models.Folder{}
	}

	writeResult(w, r, "*Handler.listFolders", models.ListFoldersResponse{Folders: folders, Length: len(folders)}, http.StatusOK)
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFolderRequest
	if !decodeBody(w, r, "*Handler.createFolder", &req) {
		return
	}

	created, err := h.services.FolderService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.createFolder", err)
		return
	}

	writeResult(w, r, "*Handler.createFolder", created, http.StatusCreated)
}

// updateFolder renames and/or moves a folder. A move that would create a
// parent cycle is answered with 409.
func (h *Handler) updateFolder(w http.ResponseWriter, r *http.Request) {
	var update models.FolderUpdate
	if !decodeBody(w, r, "*Handler.updateFolder", &update) {
		return
	}
	update.ID = chi.URLParam(r, "id")

	updated, err := h.services.FolderService.Update(r.Context(), update)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateFolder", err)
		return
	}

	writeResult(w, r, "*Handler.updateFolder", updated, http.StatusOK)
}

// deleteFolder removes only the folder row. Its children keep their
// parent_id and show up as roots.
func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.services.FolderService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteFolder", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
