// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-form-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validDescriptor() models.RemoteFormDescriptor {
	return models.RemoteFormDescriptor{
		FormID:      "birds",
		Version:     "3",
		Hash:        "md5:aaa",
		DownloadURL: "/forms/birds.xml",
	}
}

func validMediaFile() models.ManifestMediaFile {
	return models.ManifestMediaFile{
		Name:        "species.csv",
		Hash:        "md5:bbb",
		DownloadURL: "/media/species.csv",
	}
}

// ---------------------------------------------------------------------------
// TestNewCatalogValidator
// ---------------------------------------------------------------------------

func TestNewCatalogValidator(t *testing.T) {
	v := NewCatalogValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("descriptor value", func(t *testing.T) {
		d := validDescriptor()
		require.NoError(t, v.Validate(ctx, d))
	})

	t.Run("descriptor pointer", func(t *testing.T) {
		d := validDescriptor()
		require.NoError(t, v.Validate(ctx, &d))
	})

	t.Run("manifest value", func(t *testing.T) {
		m := models.ManifestSnapshot{MediaFiles: []models.ManifestMediaFile{validMediaFile()}}
		require.NoError(t, v.Validate(ctx, m))
	})

	t.Run("media file pointer", func(t *testing.T) {
		f := validMediaFile()
		require.NoError(t, v.Validate(ctx, &f))
	})
}

// ---------------------------------------------------------------------------
// TestValidate_Descriptor
// ---------------------------------------------------------------------------

func TestValidate_Descriptor(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.RemoteFormDescriptor)
		wantErr error
	}{
		{name: "missing form id", mutate: func(d *models.RemoteFormDescriptor) { d.FormID = "" }, wantErr: ErrEmptyFormID},
		{name: "missing hash", mutate: func(d *models.RemoteFormDescriptor) { d.Hash = "" }, wantErr: ErrEmptyContentHash},
		{name: "missing download url", mutate: func(d *models.RemoteFormDescriptor) { d.DownloadURL = "" }, wantErr: ErrEmptyDownloadURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDescriptor()
			tt.mutate(&d)
			assert.ErrorIs(t, v.Validate(ctx, d), tt.wantErr)
		})
	}

	t.Run("version and manifest url are optional", func(t *testing.T) {
		d := validDescriptor()
		d.Version = ""
		d.ManifestURL = ""
		assert.NoError(t, v.Validate(ctx, d))
	})

	t.Run("field scoping skips other fields", func(t *testing.T) {
		d := validDescriptor()
		d.DownloadURL = ""
		assert.NoError(t, v.Validate(ctx, d, FieldFormID, FieldContentHash))
	})

	t.Run("unknown field", func(t *testing.T) {
		d := validDescriptor()
		assert.ErrorIs(t, v.Validate(ctx, d, "no-such-field"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_Manifest
// ---------------------------------------------------------------------------

func TestValidate_Manifest(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	t.Run("empty media list is valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.ManifestSnapshot{}))
	})

	t.Run("manifest hash is optional", func(t *testing.T) {
		m := models.ManifestSnapshot{Hash: "", MediaFiles: []models.ManifestMediaFile{validMediaFile()}}
		assert.NoError(t, v.Validate(ctx, m))
	})

	t.Run("invalid entry reports index", func(t *testing.T) {
		bad := validMediaFile()
		bad.Name = ""
		m := models.ManifestSnapshot{MediaFiles: []models.ManifestMediaFile{validMediaFile(), bad}}

		err := v.Validate(ctx, m)
		require.ErrorIs(t, err, ErrEmptyMediaFileName)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("entry without hash", func(t *testing.T) {
		bad := validMediaFile()
		bad.Hash = ""
		m := models.ManifestSnapshot{MediaFiles: []models.ManifestMediaFile{bad}}
		assert.ErrorIs(t, v.Validate(ctx, m), ErrEmptyMediaFileHash)
	})
}
