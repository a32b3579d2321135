package store

import "github.com/MKhiriev/go-cloud-editor/internal/logger"

// Repositories groups every repository backed by one database.
type Repositories struct {
	FileRepository   FileRepository
	FolderRepository FolderRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		FileRepository:   NewFileRepository(db, log),
		FolderRepository: NewFolderRepository(db, log),
	}
}
