// Package store implements the device-local form catalog on top of SQLite.
//
// The catalog is exposed through [CatalogRepository]; the schema is owned by
// the embedded goose migrations in the migrations package. Callers classify
// failures with [errors.Is] against the sentinel values in errors.go.
package store

import (
	"context"

	"github.com/MKhiriev/go-form-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_repository_mock.go -package=mock

// CatalogRepository is the device-local form catalog. At most one record
// exists per form id; media files belong to exactly one (form id, version)
// pair.
type CatalogRepository interface {
	// GetAllForms returns every form record in the local catalog.
	GetAllForms(ctx context.Context) ([]models.FormRecord, error)

	// GetForm returns the record for formID, or [ErrFormNotFound].
	GetForm(ctx context.Context, formID string) (models.FormRecord, error)

	// SaveForm inserts the record, or replaces the existing record with the
	// same form id. Replacing clears the cached composite version hash so the
	// next diff recomputes it against the new content.
	SaveForm(ctx context.Context, form models.FormRecord) error

	// DeleteForm removes the record for formID together with all of its media
	// file records. Deleting an absent form is not an error.
	DeleteForm(ctx context.Context, formID string) error

	// GetMediaFiles enumerates the media file records of one form version.
	GetMediaFiles(ctx context.Context, formID, version string) ([]models.MediaFileRecord, error)

	// ReplaceMediaFiles replaces the media file records of one form version
	// with files, atomically.
	ReplaceMediaFiles(ctx context.Context, formID, version string, files []models.MediaFileRecord) error

	// GetCachedVersionHash returns the composite version hash recorded by the
	// most recent diff for formID, or an empty string if none is cached.
	// Returns [ErrFormNotFound] when no record exists for formID.
	GetCachedVersionHash(ctx context.Context, formID string) (string, error)

	// SetCachedVersionHash records hash as formID's composite version hash.
	SetCachedVersionHash(ctx context.Context, formID, hash string) error
}
