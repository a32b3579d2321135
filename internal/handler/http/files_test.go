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
	"github.com/MKhiriev/go-cloud-editor/internal/utils"
	"github.com/MKhiriev/go-cloud-editor/internal/validators"
	"github.com/MKhiriev/go-cloud-editor/models"
)

const testFileID = "0195c0de-0000-7000-8000-000000000001"

func serveFiles(t *testing.T, files *mockFileService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	svcs := newTestServices()
	svcs.FileService = files
	router := newTestHandler(svcs).Init()

	req := authorize(t, httptest.NewRequest(method, path, strings.NewReader(body)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func TestListFiles(t *testing.T) {
	tests := []struct {
		name       string
		listFn     func(context.Context) ([]models.File, error)
		wantStatus int
		wantLen    int
		wantError  string
	}{
		{
			name: "two files",
			listFn: func(context.Context) ([]models.File, error) {
				return []models.File{{ID: "a", Name: "main.js"}, {ID: "b", Name: "util.js"}}, nil
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
		{
			name:       "empty store",
			listFn:     func(context.Context) ([]models.File, error) { return nil, nil },
			wantStatus: http.StatusOK,
		},
		{
			name: "store failure",
			listFn: func(context.Context) ([]models.File, error) {
				return nil, fmt.Errorf("%w: boom", store.ErrExecutingQuery)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serveFiles(t, &mockFileService{listFn: tt.listFn}, http.MethodGet, "/api/files", "")

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rr))
				return
			}

			var resp models.ListFilesResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantLen, resp.Length)
			assert.Len(t, resp.Files, tt.wantLen)
			assert.NotNil(t, resp.Files)
		})
	}
}

func TestCreateFile(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		wantError  string
	}{
		{
			name:       "created",
			body:       `{"name":"main.js","parent_id":"0195c0de-0000-7000-8000-000000000002"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDataProvided,
		},
		{
			name:       "empty name",
			body:       `{"name":"  "}`,
			createErr:  fmt.Errorf("validation: %w", validators.ErrEmptyName),
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidName,
		},
		{
			name:       "missing parent",
			body:       `{"name":"a.js","parent_id":"0195c0de-0000-7000-8000-00000000ffff"}`,
			createErr:  fmt.Errorf("%w: x", tree.ErrParentNotFound),
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgParentNotFound,
		},
		{
			name:       "duplicate id",
			body:       `{"name":"a.js"}`,
			createErr:  fmt.Errorf("error creating file: %w", store.ErrAlreadyExists),
			wantStatus: http.StatusConflict,
			wantError:  app.MsgAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.CreateFileRequest
			files := &mockFileService{
				createFn: func(_ context.Context, req models.CreateFileRequest) (models.File, error) {
					got = req
					if tt.createErr != nil {
						return models.File{}, tt.createErr
					}
					return models.File{ID: testFileID, Name: req.Name, Code: models.DefaultFileCode, ParentID: req.ParentID}, nil
				},
			}

			rr := serveFiles(t, files, http.MethodPost, "/api/files", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rr))
				return
			}

			var created models.File
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
			assert.Equal(t, testFileID, created.ID)
			assert.Equal(t, "main.js", got.Name)
			require.NotNil(t, got.ParentID)
			assert.Equal(t, "0195c0de-0000-7000-8000-000000000002", *got.ParentID)
		})
	}
}

func TestUpdateFile_TakesIDFromPath(t *testing.T) {
	var got models.FileUpdate
	files := &mockFileService{
		updateFn: func(_ context.Context, update models.FileUpdate) (models.File, error) {
			got = update
			return models.File{ID: update.ID, Name: "main.js", Code: *update.Code, Question: update.Question}, nil
		},
	}

	rr := serveFiles(t, files, http.MethodPatch, "/api/files/"+testFileID,
		`{"id":"ignored","code":"console.log(1)","question":"why?"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testFileID, got.ID)
	require.NotNil(t, got.Code)
	assert.Equal(t, "console.log(1)", *got.Code)
	require.NotNil(t, got.Question)
	assert.Equal(t, "why?", *got.Question)

	var updated models.File
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "console.log(1)", updated.Code)
}

func TestUpdateFile_MoveToRoot(t *testing.T) {
	var got models.FileUpdate
	files := &mockFileService{
		updateFn: func(_ context.Context, update models.FileUpdate) (models.File, error) {
			got = update
			return models.File{ID: update.ID}, nil
		},
	}

	rr := serveFiles(t, files, http.MethodPatch, "/api/files/"+testFileID, `{"move_to_root":true}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, got.MoveToRoot)
	assert.Nil(t, got.ParentID)
}

func TestUpdateFile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		updateErr  error
		wantStatus int
		wantError  string
	}{
		{"invalid json", `[`, nil, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"no fields", `{}`, validators.ErrNoFieldsToUpdate, http.StatusBadRequest, app.MsgNoFieldsToUpdate},
		{"not found", `{"code":"x"}`, store.ErrFileNotFound, http.StatusNotFound, app.MsgFileNotFound},
		{"invalid id", `{"code":"x"}`, validators.ErrInvalidID, http.StatusBadRequest, app.MsgInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := &mockFileService{
				updateFn: func(context.Context, models.FileUpdate) (models.File, error) {
					return models.File{}, tt.updateErr
				},
			}

			rr := serveFiles(t, files, http.MethodPatch, "/api/files/"+testFileID, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rr))
		})
	}
}

func TestDeleteFile(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", store.ErrFileNotFound, http.StatusNotFound},
		{"store failure", store.ErrExecutingStatement, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			files := &mockFileService{
				deleteFn: func(_ context.Context, id string) error {
					gotID = id
					return tt.deleteErr
				},
			}

			rr := serveFiles(t, files, http.MethodDelete, "/api/files/"+testFileID, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, testFileID, gotID)
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.Bytes())
			}
		})
	}
}
