package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cloud-editor/internal/app"
	"github.com/MKhiriev/go-cloud-editor/internal/service"
	"github.com/MKhiriev/go-cloud-editor/internal/store"
	"github.com/MKhiriev/go-cloud-editor/internal/tree"
	"github.com/MKhiriev/go-cloud-editor/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked in order: a missing parent is reported as such
// even when the wrapped store error is a missing folder.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{tree.ErrParentNotFound, errorResponse{http.StatusBadRequest, app.MsgParentNotFound}},
	{tree.ErrParentCycle, errorResponse{http.StatusConflict, app.MsgParentCycle}},

	{validators.ErrInvalidID, errorResponse{http.StatusBadRequest, app.MsgInvalidID}},
	{validators.ErrInvalidParentID, errorResponse{http.StatusBadRequest, app.MsgInvalidID}},
	{validators.ErrEmptyName, errorResponse{http.StatusBadRequest, app.MsgInvalidName}},
	{validators.ErrNameTooLong, errorResponse{http.StatusBadRequest, app.MsgInvalidName}},
	{validators.ErrNameHasSlash, errorResponse{http.StatusBadRequest, app.MsgInvalidName}},
	{validators.ErrNoFieldsToUpdate, errorResponse{http.StatusBadRequest, app.MsgNoFieldsToUpdate}},
	{validators.ErrUnsupportedType, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{validators.ErrUnknownField, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{store.ErrEmptyUpdate, errorResponse{http.StatusBadRequest, app.MsgNoFieldsToUpdate}},

	{store.ErrFileNotFound, errorResponse{http.StatusNotFound, app.MsgFileNotFound}},
	{store.ErrFolderNotFound, errorResponse{http.StatusNotFound, app.MsgFolderNotFound}},
	{store.ErrAlreadyExists, errorResponse{http.StatusConflict, app.MsgAlreadyExists}},

	{store.ErrBuildingSQLQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingStatement, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRow, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRows, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}
