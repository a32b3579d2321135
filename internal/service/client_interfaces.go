// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-cloud-editor/internal/search"
	"github.com/MKhiriev/go-cloud-editor/models"
)

// Workspace is a consistent copy of the client's mirror of the remote store.
type Workspace struct {
	Files   []models.File
	Folders []models.Folder
	Forest  models.Forest
}

// WorkspaceService mirrors the remote files and folders on the client and
// runs every CRUD action against the remote store. After each successful
// write the mirror is reloaded.
//
// Name checks (non-empty, unique among siblings ignoring case) happen before
// any write and are subject to races with other sessions.
type WorkspaceService interface {
	// Reload lists both collections and rebuilds the forest.
	Reload(ctx context.Context) error
	// Snapshot returns the current mirror.
	Snapshot() Workspace
	// File looks up a mirrored file by id.
	File(id string) (models.File, bool)

	CreateFile(ctx context.Context, name string, parentID *string) (models.File, error)
	CreateFolder(ctx context.Context, name string, parentID *string) (models.Folder, error)

	RenameFile(ctx context.Context, id, name string) (models.File, error)
	RenameFolder(ctx context.Context, id, name string) (models.Folder, error)

	DeleteFile(ctx context.Context, id string) error
	DeleteFolder(ctx context.Context, id string) error

	// MoveFile places a file under parentID, or at the root when nil.
	MoveFile(ctx context.Context, id string, parentID *string) (models.File, error)
	// MoveFolder places a folder under parentID, rejecting cycles.
	MoveFolder(ctx context.Context, id string, parentID *string) (models.Folder, error)

	// UpdateFile writes an editor save and refreshes the mirrored row.
	UpdateFile(ctx context.Context, update models.FileUpdate) (models.File, error)

	// Search fuzzy-matches file names, best first.
	Search(query string, limit int) []search.Match

	// ServerVersion asks the server for its version string.
	ServerVersion(ctx context.Context) (string, error)
}
