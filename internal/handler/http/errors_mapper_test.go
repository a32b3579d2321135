package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-cloud-editor/internal/app"
	"github.com/MKhiriev/go-cloud-editor/internal/service"
	"github.com/MKhiriev/go-cloud-editor/internal/store"
	"github.com/MKhiriev/go-cloud-editor/internal/tree"
	"github.com/MKhiriev/go-cloud-editor/internal/validators"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"parent not found", tree.ErrParentNotFound, http.StatusBadRequest, app.MsgParentNotFound},
		{"parent not found wrapping store error",
			fmt.Errorf("%w: %w", tree.ErrParentNotFound, store.ErrFolderNotFound), http.StatusBadRequest, app.MsgParentNotFound},
		{"parent cycle", fmt.Errorf("move: %w", tree.ErrParentCycle), http.StatusConflict, app.MsgParentCycle},
		{"invalid id", validators.ErrInvalidID, http.StatusBadRequest, app.MsgInvalidID},
		{"invalid parent id", validators.ErrInvalidParentID, http.StatusBadRequest, app.MsgInvalidID},
		{"empty name", validators.ErrEmptyName, http.StatusBadRequest, app.MsgInvalidName},
		{"long name", validators.ErrNameTooLong, http.StatusBadRequest, app.MsgInvalidName},
		{"no fields", validators.ErrNoFieldsToUpdate, http.StatusBadRequest, app.MsgNoFieldsToUpdate},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"file not found", store.ErrFileNotFound, http.StatusNotFound, app.MsgFileNotFound},
		{"folder not found", store.ErrFolderNotFound, http.StatusNotFound, app.MsgFolderNotFound},
		{"already exists", store.ErrAlreadyExists, http.StatusConflict, app.MsgAlreadyExists},
		{"sql failure", fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("conn reset")), http.StatusInternalServerError, app.MsgInternalServerError},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, got.status)
			assert.Equal(t, tt.wantMessage, got.message)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}
