// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Folder groups files and other folders. It has no content of its own.
type Folder struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// FolderUpdate is a partial update of a folder: rename and/or move.
type FolderUpdate struct {
	ID string `json:"-"`

	Name     *string `json:"name,omitempty"`
	ParentID *string `json:"parent_id,omitempty"`

	// MoveToRoot clears parent_id.
	MoveToRoot bool `json:"move_to_root,omitempty"`
}

// IsEmpty reports whether the update carries no field to write.
func (u FolderUpdate) IsEmpty() bool {
	return u.Name == nil && u.ParentID == nil && !u.MoveToRoot
}
