package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloud-editor/internal/app"
	"github.com/MKhiriev/go-cloud-editor/internal/store"
	"github.com/MKhiriev/go-cloud-editor/internal/tree"
	"github.com/MKhiriev/go-cloud-editor/internal/validators"
	"github.com/MKhiriev/go-cloud-editor/models"
)

const (
	testFolderID  = "0195c0de-0000-7000-8000-000000000002"
	testFolderID2 = "0195c0de-0000-7000-8000-000000000003"
)

func serveFolders(t *testing.T, folders *mockFolderService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	svcs := newTestServices()
	svcs.FolderService = folders
	router := newTestHandler(svcs).Init()

	req := authorize(t, httptest.NewRequest(method, path, strings.NewReader(body)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestListFolders(t *testing.T) {
	folders := &mockFolderService{
		listFn: func(context.Context) ([]models.Folder, error) {
			return []models.Folder{{ID: testFolderID, Name: "src"}}, nil
		},
	}

	rr := serveFolders(t, folders, http.MethodGet, "/api/folders", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.ListFoldersResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Length)
	assert.Equal(t, "src", resp.Folders[0].Name)
}

func TestListFolders_EmptyIsArray(t *testing.T) {
	rr := serveFolders(t, &mockFolderService{}, http.MethodGet, "/api/folders", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"folders":[],"length":0}`, rr.Body.String())
}

func TestCreateFolder(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		wantError  string
	}{
		{"created", `{"name":"src"}`, nil, http.StatusCreated, ""},
		{"invalid json", `name=src`, nil, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"slash in name", `{"name":"a/b"}`, validators.ErrNameHasSlash, http.StatusBadRequest, app.MsgInvalidName},
		{"missing parent", `{"name":"lib","parent_id":"` + testFolderID2 + `"}`,
			fmt.Errorf("%w: %s", tree.ErrParentNotFound, testFolderID2), http.StatusBadRequest, app.MsgParentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folders := &mockFolderService{
				createFn: func(_ context.Context, req models.CreateFolderRequest) (models.Folder, error) {
					if tt.createErr != nil {
						return models.Folder{}, tt.createErr
					}
					return models.Folder{ID: testFolderID, Name: req.Name}, nil
				},
			}

			rr := serveFolders(t, folders, http.MethodPost, "/api/folders", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rr))
				return
			}

			var created models.Folder
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
			assert.Equal(t, testFolderID, created.ID)
			assert.Equal(t, "src", created.Name)
		})
	}
}

func TestUpdateFolder(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		updateErr  error
		wantStatus int
		wantError  string
	}{
		{"rename", `{"name":"lib"}`, nil, http.StatusOK, ""},
		{"move", `{"parent_id":"` + testFolderID2 + `"}`, nil, http.StatusOK, ""},
		{"move into descendant", `{"parent_id":"` + testFolderID2 + `"}`, tree.ErrParentCycle, http.StatusConflict, app.MsgParentCycle},
		{"folder not found", `{"name":"lib"}`, store.ErrFolderNotFound, http.StatusNotFound, app.MsgFolderNotFound},
		{"empty update", `{}`, store.ErrEmptyUpdate, http.StatusBadRequest, app.MsgNoFieldsToUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.FolderUpdate
			folders := &mockFolderService{
				updateFn: func(_ context.Context, update models.FolderUpdate) (models.Folder, error) {
					got = update
					if tt.updateErr != nil {
						return models.Folder{}, tt.updateErr
					}
					return models.Folder{ID: update.ID, ParentID: update.ParentID}, nil
				},
			}

			rr := serveFolders(t, folders, http.MethodPatch, "/api/folders/"+testFolderID, tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, testFolderID, got.ID)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rr))
			}
		})
	}
}

func TestDeleteFolder(t *testing.T) {
	var gotID string
	folders := &mockFolderService{
		deleteFn: func(_ context.Context, id string) error {
			gotID = id
			return nil
		},
	}

	rr := serveFolders(t, folders, http.MethodDelete, "/api/folders/"+testFolderID, "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, testFolderID, gotID)
}

func TestDeleteFolder_NotFound(t *testing.T) {
	folders := &mockFolderService{
		deleteFn: func(context.Context, string) error { return store.ErrFolderNotFound },
	}

	rr := serveFolders(t, folders, http.MethodDelete, "/api/folders/"+testFolderID, "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgFolderNotFound, decodeError(t, rr))
}
