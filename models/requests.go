package models

// CreateFileRequest is the body of POST /api/files.
type CreateFileRequest struct {
	Name     string  `json:"name"`
	Code     *string `json:"code,omitempty"`
	Question *string `json:"question,omitempty"`
	ParentID *string `json:"parent_id,omitempty"`
	IsFolder bool    `json:"is_folder,omitempty"`
}

// CreateFolderRequest is the body of POST /api/folders.
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"`
}

// ListFilesResponse is returned by GET /api/files.
type ListFilesResponse struct {
	Files  []File `json:"files"`
	Length int    `json:"length"`
}

// ListFoldersResponse is returned by GET /api/folders.
type ListFoldersResponse struct {
	Folders []Folder `json:"folders"`
	Length  int      `json:"length"`
}
