package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloud-editor/internal/config"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/service"
	"github.com/MKhiriev/go-cloud-editor/internal/utils"
	"github.com/MKhiriev/go-cloud-editor/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "test-issuer"
	testHashKey = "test-hash-key"
)

// ---- Mock: FileService ----

type mockFileService struct {
	listFn   func(ctx context.Context) ([]models.File, error)
	createFn func(ctx context.Context, req models.CreateFileRequest) (models.File, error)
	updateFn func(ctx context.Context, update models.FileUpdate) (models.File, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockFileService) List(ctx context.Context) ([]models.File, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockFileService) Create(ctx context.Context, req models.CreateFileRequest) (models.File, error) {
	return m.createFn(ctx, req)
}

func (m *mockFileService) Update(ctx context.Context, update models.FileUpdate) (models.File, error) {
	return m.updateFn(ctx, update)
}

func (m *mockFileService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// ---- Mock: FolderService ----

type mockFolderService struct {
	listFn   func(ctx context.Context) ([]models.Folder, error)
	createFn func(ctx context.Context, req models.CreateFolderRequest) (models.Folder, error)
	updateFn func(ctx context.Context, update models.FolderUpdate) (models.Folder, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockFolderService) List(ctx context.Context) ([]models.Folder, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockFolderService) Create(ctx context.Context, req models.CreateFolderRequest) (models.Folder, error) {
	return m.createFn(ctx, req)
}

func (m *mockFolderService) Update(ctx context.Context, update models.FolderUpdate) (models.Folder, error) {
	return m.updateFn(ctx, update)
}

func (m *mockFolderService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// ---- Mock: TreeService ----

type mockTreeService struct {
	treeFn func(ctx context.Context) (models.Forest, error)
}

func (m *mockTreeService) Tree(ctx context.Context) (models.Forest, error) {
	return m.treeFn(ctx)
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Helpers ----

func testConfig(hashKey string) config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey: testSignKey,
			TokenIssuer:  testIssuer,
			HashKey:      hashKey,
		},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

// newTestServices fills every service with an empty mock so that routes do
// not hit nil interfaces.
func newTestServices() *service.Services {
	return &service.Services{
		FileService:    &mockFileService{},
		FolderService:  &mockFolderService{},
		TreeService:    &mockTreeService{treeFn: func(context.Context) (models.Forest, error) { return models.Forest{}, nil }},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, testConfig(""), logger.Nop())
}

// newAPIKey signs a key accepted by handlers built with testConfig.
func newAPIKey(t *testing.T) string {
	t.Helper()

	token, err := utils.GenerateAPIKey(testIssuer, models.RoleAnon, time.Hour, testSignKey)
	require.NoError(t, err)
	return token.SignedString
}

func authorize(t *testing.T, r *http.Request) *http.Request {
	t.Helper()

	r.Header.Set("Authorization", "Bearer "+newAPIKey(t))
	return r
}

func strPtr(s string) *string {
	return &s
}
