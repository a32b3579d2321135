package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cloud-editor/models"
)

const (
	filesTable   = "files"
	foldersTable = "folders"
)

var (
	fileColumns   = []string{"id", "name", "code", "question", "parent_id", "is_folder", "created_at", "updated_at"}
	folderColumns = []string{"id", "name", "parent_id", "created_at", "updated_at"}
)

func returning(cols []string) string {
	out := "RETURNING "
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

func buildListFilesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(fileColumns...).
		From(filesTable).
		OrderBy("created_at", "id").
		ToSql()
}

func buildInsertFileQuery(b sq.StatementBuilderType, f models.File) (string, []any, error) {
	return b.Insert(filesTable).
		Columns(fileColumns...).
		Values(f.ID, f.Name, f.Code, f.Question, f.ParentID, f.IsFolder, f.CreatedAt, f.UpdatedAt).
		Suffix(returning(fileColumns)).
		ToSql()
}

// buildUpdateFileQuery sets only the fields present in update and always
// bumps updated_at.
func buildUpdateFileQuery(b sq.StatementBuilderType, update models.FileUpdate, now time.Time) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrEmptyUpdate
	}

	q := b.Update(filesTable).Set("updated_at", now)
	if update.Name != nil {
		q = q.Set("name", *update.Name)
	}
	if update.Code != nil {
		q = q.Set("code", *update.Code)
	}
	if update.Question != nil {
		q = q.Set("question", *update.Question)
	}
	switch {
	case update.MoveToRoot:
		q = q.Set("parent_id", nil)
	case update.ParentID != nil:
		q = q.Set("parent_id", *update.ParentID)
	}

	query, args, err := q.Where(sq.Eq{"id": update.ID}).
		Suffix(returning(fileColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteQuery(b sq.StatementBuilderType, table, id string) (string, []any, error) {
	return b.Delete(table).Where(sq.Eq{"id": id}).ToSql()
}

func buildListFoldersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(folderColumns...).
		From(foldersTable).
		OrderBy("created_at", "id").
		ToSql()
}

func buildGetFolderQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(folderColumns...).
		From(foldersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertFolderQuery(b sq.StatementBuilderType, f models.Folder) (string, []any, error) {
	return b.Insert(foldersTable).
		Columns(folderColumns...).
		Values(f.ID, f.Name, f.ParentID, f.CreatedAt, f.UpdatedAt).
		Suffix(returning(folderColumns)).
		ToSql()
}

func buildUpdateFolderQuery(b sq.StatementBuilderType, update models.FolderUpdate, now time.Time) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrEmptyUpdate
	}

	q := b.Update(foldersTable).Set("updated_at", now)
	if update.Name != nil {
		q = q.Set("name", *update.Name)
	}
	switch {
	case update.MoveToRoot:
		q = q.Set("parent_id", nil)
	case update.ParentID != nil:
		q = q.Set("parent_id", *update.ParentID)
	}

	query, args, err := q.Where(sq.Eq{"id": update.ID}).
		Suffix(returning(folderColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
