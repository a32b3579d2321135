package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/go-cloud-editor/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFile(row rowScanner) (models.File, error) {
	var (
		f                    models.File
		question, parentID   sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	if err := row.Scan(&f.ID, &f.Name, &f.Code, &question, &parentID, &f.IsFolder, &createdAt, &updatedAt); err != nil {
		return models.File{}, err
	}

	f.Question = nullString(question)
	f.ParentID = nullString(parentID)
	f.CreatedAt = nullTime(createdAt)
	f.UpdatedAt = nullTime(updatedAt)
	return f, nil
}

func scanFolder(row rowScanner) (models.Folder, error) {
	var (
		f                    models.Folder
		parentID             sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	if err := row.Scan(&f.ID, &f.Name, &parentID, &createdAt, &updatedAt); err != nil {
		return models.Folder{}, err
	}

	f.ParentID = nullString(parentID)
	f.CreatedAt = nullTime(createdAt)
	f.UpdatedAt = nullTime(updatedAt)
	return f, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
