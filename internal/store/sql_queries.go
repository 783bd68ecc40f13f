package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-form-sync/models"
)

var formColumns = []string{
	"id",
	"form_id",
	"version",
	"title",
	"content_hash",
	"cached_version_hash",
	"file_path",
	"created_at",
	"updated_at",
}

var mediaFileColumns = []string{
	"form_id",
	"form_version",
	"name",
	"content_hash",
	"file_path",
}

func buildSelectAllFormsQuery() (string, []any, error) {
	return sq.Select(formColumns...).
		From("forms").
		OrderBy("form_id").
		ToSql()
}

func buildSelectFormQuery(formID string) (string, []any, error) {
	return sq.Select(formColumns...).
		From("forms").
		Where(sq.Eq{"form_id": formID}).
		ToSql()
}

// buildUpsertFormQuery inserts a catalog record or replaces the existing one
// for the same form id. The replace path resets cached_version_hash: the
// cached composite hash described the previous content and must be recomputed
// by the next diff.
func buildUpsertFormQuery(form models.FormRecord) (string, []any, error) {
	return sq.Insert("forms").
		Columns(formColumns[1:]...).
		Values(
			form.FormID,
			form.Version,
			form.Title,
			form.ContentHash,
			nil,
			form.FilePath,
			form.CreatedAt,
			form.UpdatedAt,
		).
		Suffix(`ON CONFLICT (form_id) DO UPDATE SET
			version = excluded.version,
			title = excluded.title,
			content_hash = excluded.content_hash,
			cached_version_hash = NULL,
			file_path = excluded.file_path,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildDeleteFormQuery(formID string) (string, []any, error) {
	return sq.Delete("forms").
		Where(sq.Eq{"form_id": formID}).
		ToSql()
}

func buildSelectMediaFilesQuery(formID, version string) (string, []any, error) {
	return sq.Select(mediaFileColumns...).
		From("media_files").
		Where(sq.Eq{"form_id": formID, "form_version": version}).
		OrderBy("name").
		ToSql()
}

func buildInsertMediaFileQuery(file models.MediaFileRecord) (string, []any, error) {
	return sq.Insert("media_files").
		Columns(mediaFileColumns...).
		Values(file.FormID, file.FormVersion, file.Name, file.ContentHash, file.FilePath).
		ToSql()
}

func buildDeleteMediaFilesQuery(formID string, versions ...string) (string, []any, error) {
	del := sq.Delete("media_files").Where(sq.Eq{"form_id": formID})
	if len(versions) > 0 {
		del = del.Where(sq.Eq{"form_version": versions})
	}
	return del.ToSql()
}

func buildSelectCachedHashQuery(formID string) (string, []any, error) {
	return sq.Select("cached_version_hash").
		From("forms").
		Where(sq.Eq{"form_id": formID}).
		ToSql()
}

func buildUpdateCachedHashQuery(formID, hash string) (string, []any, error) {
	return sq.Update("forms").
		Set("cached_version_hash", hash).
		Where(sq.Eq{"form_id": formID}).
		ToSql()
}
