package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/models"
)

// formCatalogRepository is the SQLite-backed implementation of
// [CatalogRepository]. It executes all catalog operations against the "forms"
// and "media_files" tables using the embedded [*DB] connection.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database interactions are traced with structured fields (form_id,
// version, etc.).
type formCatalogRepository struct {
	*DB
	logger *logger.Logger
}

// NewFormCatalogRepository constructs a [CatalogRepository] backed by the
// provided database connection and logger.
func NewFormCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &formCatalogRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAllForms implements [CatalogRepository].
func (r *formCatalogRepository) GetAllForms(ctx context.Context) ([]models.FormRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllFormsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "formCatalogRepository.GetAllForms").
			Msg("failed to execute query for all catalog forms")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var forms []models.FormRecord
	for rows.Next() {
		form, err := scanFormRow(rows)
		if err != nil {
			log.Err(err).
				Str("func", "formCatalogRepository.GetAllForms").
				Msg("failed to scan form row")
			return nil, err
		}
		forms = append(forms, form)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return forms, nil
}

// GetForm implements [CatalogRepository]. Returns [ErrFormNotFound] when no
// record exists for formID.
func (r *formCatalogRepository) GetForm(ctx context.Context, formID string) (models.FormRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFormQuery(formID)
	if err != nil {
		return models.FormRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	form, err := scanFormRow(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FormRecord{}, ErrFormNotFound
		}
		log.Err(err).
			Str("func", "formCatalogRepository.GetForm").
			Str("form_id", formID).
			Msg("failed to get form record")
		return models.FormRecord{}, err
	}

	return form, nil
}

// SaveForm implements [CatalogRepository]. Saving over an existing form id
// replaces the record and clears its cached composite version hash.
func (r *formCatalogRepository) SaveForm(ctx context.Context, form models.FormRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertFormQuery(form)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "formCatalogRepository.SaveForm").
			Str("form_id", form.FormID).
			Str("version", form.Version).
			Msg("failed to upsert form record")
		return fmt.Errorf("failed to save form (form_id=%s): %w", form.FormID, err)
	}

	return nil
}

// DeleteForm implements [CatalogRepository]. The form record and all of its
// media records are removed in one transaction.
func (r *formCatalogRepository) DeleteForm(ctx context.Context, formID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	mediaQuery, mediaArgs, err := buildDeleteMediaFilesQuery(formID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, mediaQuery, mediaArgs...); err != nil {
		log.Err(err).
			Str("func", "formCatalogRepository.DeleteForm").
			Str("form_id", formID).
			Msg("failed to delete media file records")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	formQuery, formArgs, err := buildDeleteFormQuery(formID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, formQuery, formArgs...); err != nil {
		log.Err(err).
			Str("func", "formCatalogRepository.DeleteForm").
			Str("form_id", formID).
			Msg("failed to delete form record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetMediaFiles implements [CatalogRepository].
func (r *formCatalogRepository) GetMediaFiles(ctx context.Context, formID, version string) ([]models.MediaFileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMediaFilesQuery(formID, version)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "formCatalogRepository.GetMediaFiles").
			Str("form_id", formID).
			Str("version", version).
			Msg("failed to execute query for media file records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var files []models.MediaFileRecord
	for rows.Next() {
		var file models.MediaFileRecord
		if err := rows.Scan(&file.FormID, &file.FormVersion, &file.Name, &file.ContentHash, &file.FilePath); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return files, nil
}

// ReplaceMediaFiles implements [CatalogRepository].
func (r *formCatalogRepository) ReplaceMediaFiles(ctx context.Context, formID, version string, files []models.MediaFileRecord) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	deleteQuery, deleteArgs, err := buildDeleteMediaFilesQuery(formID, version)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "formCatalogRepository.ReplaceMediaFiles").
			Str("form_id", formID).
			Str("version", version).
			Msg("failed to delete previous media file records")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, file := range files {
		file.FormID = formID
		file.FormVersion = version

		insertQuery, insertArgs, err := buildInsertMediaFileQuery(file)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "formCatalogRepository.ReplaceMediaFiles").
				Str("form_id", formID).
				Str("name", file.Name).
				Msg("failed to insert media file record")
			return fmt.Errorf("failed to save media file (form_id=%s, name=%s): %w", formID, file.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetCachedVersionHash implements [CatalogRepository].
func (r *formCatalogRepository) GetCachedVersionHash(ctx context.Context, formID string) (string, error) {
	query, args, err := buildSelectCachedHashQuery(formID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var hash sql.NullString
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrFormNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return hash.String, nil
}

// SetCachedVersionHash implements [CatalogRepository].
func (r *formCatalogRepository) SetCachedVersionHash(ctx context.Context, formID, hash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCachedHashQuery(formID, hash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "formCatalogRepository.SetCachedVersionHash").
			Str("form_id", formID).
			Msg("failed to update cached version hash")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrFormNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFormRow(row rowScanner) (models.FormRecord, error) {
	var form models.FormRecord
	var cachedHash sql.NullString

	err := row.Scan(
		&form.ID,
		&form.FormID,
		&form.Version,
		&form.Title,
		&form.ContentHash,
		&cachedHash,
		&form.FilePath,
		&form.CreatedAt,
		&form.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FormRecord{}, err
		}
		return models.FormRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	form.CachedVersionHash = cachedHash.String
	return form, nil
}
