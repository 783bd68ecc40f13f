// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-sync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldFormID targets the server-assigned identifier of a form.
	FieldFormID = "form_id"

	// FieldContentHash targets the content hash of a form or manifest entry.
	FieldContentHash = "hash"

	// FieldDownloadURL targets the URL a form definition or media file is
	// fetched from.
	FieldDownloadURL = "download_url"

	// FieldMediaFileName targets the on-device file name of a manifest entry.
	FieldMediaFileName = "name"

	// FieldMediaFiles targets the media file list of a manifest.
	FieldMediaFiles = "media_files"
)

// CatalogValidator checks payloads received from the remote form server
// before they enter a reconciliation pass. A descriptor or manifest entry
// missing the fields the engine relies on is rejected up front instead of
// failing halfway through a download.
type CatalogValidator struct {
}

func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RemoteFormDescriptor:
		return v.validateDescriptor(ctx, value, fields...)
	case *models.RemoteFormDescriptor:
		return v.validateDescriptor(ctx, *value, fields...)

	case models.ManifestSnapshot:
		return v.validateManifest(ctx, value, fields...)
	case *models.ManifestSnapshot:
		return v.validateManifest(ctx, *value, fields...)

	case models.ManifestMediaFile:
		return v.validateMediaFile(ctx, value, fields...)
	case *models.ManifestMediaFile:
		return v.validateMediaFile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CatalogValidator) validateDescriptor(_ context.Context, descriptor models.RemoteFormDescriptor, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormID, FieldContentHash, FieldDownloadURL}
	}

	for _, f := range fields {
		switch f {
		case FieldFormID:
			if descriptor.FormID == "" {
				return ErrEmptyFormID
			}
		case FieldContentHash:
			if descriptor.Hash == "" {
				return ErrEmptyContentHash
			}
		case FieldDownloadURL:
			if descriptor.DownloadURL == "" {
				return ErrEmptyDownloadURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateManifest(ctx context.Context, manifest models.ManifestSnapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMediaFiles}
	}

	for _, f := range fields {
		switch f {
		case FieldMediaFiles:
			// zero entries is a valid, if unusual, manifest
			for i, file := range manifest.MediaFiles {
				if err := v.validateMediaFile(ctx, file); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateMediaFile(_ context.Context, file models.ManifestMediaFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMediaFileName, FieldContentHash, FieldDownloadURL}
	}

	for _, f := range fields {
		switch f {
		case FieldMediaFileName:
			if file.Name == "" {
				return ErrEmptyMediaFileName
			}
		case FieldContentHash:
			if file.Hash == "" {
				return ErrEmptyMediaFileHash
			}
		case FieldDownloadURL:
			if file.DownloadURL == "" {
				return ErrEmptyDownloadURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
