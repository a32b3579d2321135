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

// fileRepository stores files in the "files" table. Every method is a
// single statement, so no transactions are used.
type fileRepository struct {
	*DB
	logger *logger.Logger
}

func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	return &fileRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *fileRepository) ListFiles(ctx context.Context) ([]models.File, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFilesQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "fileRepository.ListFiles").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.withRetry(ctx, func() error {
		var qErr error
		rows, qErr = r.DB.QueryContext(ctx, query, args...)
		return qErr
	})
	if err != nil {
		log.Err(err).Str("func", "fileRepository.ListFiles").Msg("failed to execute query for listing files")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.File, 0, 32)
	for rows.Next() {
		f, scanErr := scanFile(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "fileRepository.ListFiles").Msg("failed to scan file row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		files = append(files, f)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "fileRepository.ListFiles").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return files, nil
}

// CreateFile inserts file as given. Timestamps left nil are set to now.
func (r *fileRepository) CreateFile(ctx context.Context, file models.File) (models.File, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if file.CreatedAt == nil {
		file.CreatedAt = &now
	}
	if file.UpdatedAt == nil {
		file.UpdatedAt = &now
	}

	query, args, err := buildInsertFileQuery(r.builder(), file)
	if err != nil {
		log.Err(err).Str("func", "fileRepository.CreateFile").Msg("failed to build query")
		return models.File{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.File
	err = r.withRetry(ctx, func() error {
		var scanErr error
		created, scanErr = scanFile(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.CreateFile").
			Str("file_id", file.ID).
			Msg("failed to insert file")
		if isUniqueViolation(err) {
			return models.File{}, fmt.Errorf("%w: %w", ErrAlreadyExists, err)
		}
		return models.File{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "fileRepository.CreateFile").Str("file_id", created.ID).Msg("file created")
	return created, nil
}

func (r *fileRepository) UpdateFile(ctx context.Context, update models.FileUpdate) (models.File, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateFileQuery(r.builder(), update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "fileRepository.UpdateFile").Str("file_id", update.ID).Msg("failed to build query")
		return models.File{}, err
	}

	var updated models.File
	err = r.withRetry(ctx, func() error {
		var scanErr error
		updated, scanErr = scanFile(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.File{}, ErrFileNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.UpdateFile").
			Str("file_id", update.ID).
			Msg("failed to update file")
		return models.File{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *fileRepository) DeleteFile(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.builder(), filesTable, id)
	if err != nil {
		log.Err(err).Str("func", "fileRepository.DeleteFile").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "fileRepository.DeleteFile").Str("file_id", id).Msg("failed to delete file")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFileNotFound
	}

	return nil
}
