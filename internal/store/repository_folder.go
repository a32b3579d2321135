package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/models"
)

// folderRepository stores folders in the "folders" table. Deleting a folder
// leaves its children in place; they become orphans.
type folderRepository struct {
	*DB
	logger *logger.Logger
}

func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	return &folderRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *folderRepository) ListFolders(ctx context.Context) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFoldersQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "folderRepository.ListFolders").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.withRetry(ctx, func() error {
		var qErr error
		rows, qErr = r.DB.QueryContext(ctx, query, args...)
		return qErr
	})
	if err != nil {
		log.Err(err).Str("func", "folderRepository.ListFolders").Msg("failed to execute query for listing folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0, 16)
	for rows.Next() {
		f, scanErr := scanFolder(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "folderRepository.ListFolders").Msg("failed to scan folder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		folders = append(folders, f)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "folderRepository.ListFolders").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return folders, nil
}

func (r *folderRepository) GetFolder(ctx context.Context, id string) (models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetFolderQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "folderRepository.GetFolder").Msg("failed to build query")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var folder models.Folder
	err = r.withRetry(ctx, func() error {
		var scanErr error
		folder, scanErr = scanFolder(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "folderRepository.GetFolder").Str("folder_id", id).Msg("failed to get folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return folder, nil
}

func (r *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if folder.CreatedAt == nil {
		folder.CreatedAt = &now
	}
	if folder.UpdatedAt == nil {
		folder.UpdatedAt = &now
	}

	query, args, err := buildInsertFolderQuery(r.builder(), folder)
	if err != nil {
		log.Err(err).Str("func", "folderRepository.CreateFolder").Msg("failed to build query")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Folder
	err = r.withRetry(ctx, func() error {
		var scanErr error
		created, scanErr = scanFolder(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.CreateFolder").
			Str("folder_id", folder.ID).
			Msg("failed to insert folder")
		if isUniqueViolation(err) {
			return models.Folder{}, fmt.Errorf("%w: %w", ErrAlreadyExists, err)
		}
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *folderRepository) UpdateFolder(ctx context.Context, update models.FolderUpdate) (models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateFolderQuery(r.builder(), update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "folderRepository.UpdateFolder").Str("folder_id", update.ID).Msg("failed to build query")
		return models.Folder{}, err
	}

	var updated models.Folder
	err = r.withRetry(ctx, func() error {
		var scanErr error
		updated, scanErr = scanFolder(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.UpdateFolder").
			Str("folder_id", update.ID).
			Msg("failed to update folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *folderRepository) DeleteFolder(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.builder(), foldersTable, id)
	if err != nil {
		log.Err(err).Str("func", "folderRepository.DeleteFolder").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "folderRepository.DeleteFolder").Str("folder_id", id).Msg("failed to delete folder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFolderNotFound
	}

	return nil
}
