package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-cloud-editor/internal/config"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/utils"
	"github.com/MKhiriev/go-cloud-editor/models"
)

const (
	filesPath   = "/api/files"
	foldersPath = "/api/folders"
	versionPath = "/api/version"
)

type httpRemoteStore struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPRemoteStore builds the REST implementation of [RemoteStore] from
// the client configuration. Requests carry the API key as a bearer token and,
// when a hash key is set, an HMAC signature of the body.
func NewHTTPRemoteStore(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpRemoteStore{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, appCfg.APIKey),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteStore) ListFiles(ctx context.Context) ([]models.File, error) {
	var list models.ListFilesResponse

	resp, err := h.request(ctx, nil).SetResult(&list).Get(filesPath)
	if err != nil {
		return nil, fmt.Errorf("list files request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	return list.Files, nil
}

func (h *httpRemoteStore) CreateFile(ctx context.Context, req models.CreateFileRequest) (models.File, error) {
	var created models.File

	resp, err := h.request(ctx, req).SetResult(&created).Post(filesPath)
	if err != nil {
		return models.File{}, fmt.Errorf("create file request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.File{}, err
	}

	return created, nil
}

func (h *httpRemoteStore) UpdateFile(ctx context.Context, update models.FileUpdate) (models.File, error) {
	var updated models.File

	resp, err := h.request(ctx, update).
		SetResult(&updated).
		SetPathParam("id", update.ID).
		Patch(filesPath + "/{id}")
	if err != nil {
		return models.File{}, fmt.Errorf("update file request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.File{}, err
	}

	return updated, nil
}

func (h *httpRemoteStore) DeleteFile(ctx context.Context, id string) error {
	resp, err := h.request(ctx, nil).SetPathParam("id", id).Delete(filesPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete file request: %w", err)
	}
	return h.checkResponse(resp)
}

func (h *httpRemoteStore) ListFolders(ctx context.Context) ([]models.Folder, error) {
	var list models.ListFoldersResponse

	resp, err := h.request(ctx, nil).SetResult(&list).Get(foldersPath)
	if err != nil {
		return nil, fmt.Errorf("list folders request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return nil, err
	}

	return list.Folders, nil
}

func (h *httpRemoteStore) CreateFolder(ctx context.Context, req models.CreateFolderRequest) (models.Folder, error) {
	var created models.Folder

	resp, err := h.request(ctx, req).SetResult(&created).Post(foldersPath)
	if err != nil {
		return models.Folder{}, fmt.Errorf("create folder request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Folder{}, err
	}

	return created, nil
}

func (h *httpRemoteStore) UpdateFolder(ctx context.Context, update models.FolderUpdate) (models.Folder, error) {
	var updated models.Folder

	resp, err := h.request(ctx, update).
		SetResult(&updated).
		SetPathParam("id", update.ID).
		Patch(foldersPath + "/{id}")
	if err != nil {
		return models.Folder{}, fmt.Errorf("update folder request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return models.Folder{}, err
	}

	return updated, nil
}

func (h *httpRemoteStore) DeleteFolder(ctx context.Context, id string) error {
	resp, err := h.request(ctx, nil).SetPathParam("id", id).Delete(foldersPath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete folder request: %w", err)
	}
	return h.checkResponse(resp)
}

func (h *httpRemoteStore) Version(ctx context.Context) (string, error) {
	var version struct {
		Version string `json:"version"`
	}

	resp, err := h.request(ctx, nil).SetResult(&version).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = h.checkResponse(resp); err != nil {
		return "", err
	}

	return version.Version, nil
}

// request prepares a request carrying ctx. A non-nil body is sent as JSON
// and signed when a hasher is configured.
func (h *httpRemoteStore) request(ctx context.Context, body any) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if body == nil {
		return req
	}

	payload, err := json.Marshal(body)
	if err != nil {
		// resty reports the marshal error itself on send
		return req.SetBody(body)
	}

	req.SetBody(payload)
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(payload))
	}
	return req
}

// checkResponse maps the status code and, for signed successful responses,
// verifies the body signature.
func (h *httpRemoteStore) checkResponse(resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		h.logger.Warn().
			Str("func", "httpRemoteStore.checkResponse").
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Msg("server returned an error")
		return err
	}

	signature := resp.Header().Get(utils.HashHeader)
	if h.hasher == nil || signature == "" {
		return nil
	}
	if !h.hasher.Verify(resp.Body(), signature) {
		return ErrResponseSignature
	}
	return nil
}
