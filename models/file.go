// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultFileCode is the code a freshly created file starts with.
const DefaultFileCode = "// new file"

// File is a single source file stored in the "files" collection.
//
// Code holds the full text of the file. Question is a free-form annotation
// attached to the file by the user. ParentID points at the containing
// [Folder]; nil means the file lives at the root of the tree.
type File struct {
	// ID is the store-assigned identifier (UUID string).
	ID string `json:"id"`

	// Name is the display name, unique among siblings (case-insensitive).
	// Uniqueness is checked by clients only.
	Name string `json:"name"`

	// Code is the file contents.
	Code string `json:"code"`

	// Question is the optional annotation shown next to the editor.
	Question *string `json:"question,omitempty"`

	// ParentID references the containing folder, nil for root.
	ParentID *string `json:"parent_id,omitempty"`

	// IsFolder marks rows of the single-collection layout, where folders
	// are stored as files. The tree builder turns such rows into folders.
	IsFolder bool `json:"is_folder,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// QuestionText returns the question or an empty string when none is set.
func (f File) QuestionText() string {
	if f.Question == nil {
		return ""
	}
	return *f.Question
}

// AsFolder converts a file row flagged with IsFolder into a [Folder].
func (f File) AsFolder() Folder {
	return Folder{
		ID:        f.ID,
		Name:      f.Name,
		ParentID:  f.ParentID,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// FileUpdate is a partial update of a single file. Only non-nil fields are
// written. ParentID uses a double pointer semantics through MoveToRoot: when
// MoveToRoot is true the parent is cleared regardless of ParentID.
type FileUpdate struct {
	// ID identifies the file to update. Required.
	ID string `json:"-"`

	Name     *string `json:"name,omitempty"`
	Code     *string `json:"code,omitempty"`
	Question *string `json:"question,omitempty"`
	ParentID *string `json:"parent_id,omitempty"`

	// MoveToRoot clears parent_id.
	MoveToRoot bool `json:"move_to_root,omitempty"`
}

// IsEmpty reports whether the update carries no field to write.
func (u FileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Code == nil && u.Question == nil && u.ParentID == nil && !u.MoveToRoot
}
