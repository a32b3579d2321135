// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the cloud-editor server on behalf of the client.
//
// [RemoteStore] is the only view the client has of the remote database: two
// collections, files and folders, with list, insert, update-by-id and
// delete-by-id. The HTTP implementation maps status codes back to the
// sentinel errors in errors.go so callers can match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cloud-editor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore is the remote CRUD store for files and folders.
type RemoteStore interface {
	// ListFiles returns every file row.
	ListFiles(ctx context.Context) ([]models.File, error)
	// CreateFile inserts a file and returns the stored row.
	CreateFile(ctx context.Context, req models.CreateFileRequest) (models.File, error)
	// UpdateFile writes the non-nil fields of update to the file update.ID.
	UpdateFile(ctx context.Context, update models.FileUpdate) (models.File, error)
	// DeleteFile removes the file with the given id.
	DeleteFile(ctx context.Context, id string) error

	ListFolders(ctx context.Context) ([]models.Folder, error)
	CreateFolder(ctx context.Context, req models.CreateFolderRequest) (models.Folder, error)
	UpdateFolder(ctx context.Context, update models.FolderUpdate) (models.Folder, error)
	DeleteFolder(ctx context.Context, id string) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
