// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/store"
	"github.com/MKhiriev/go-form-sync/internal/utils"
	"github.com/MKhiriev/go-form-sync/models"
)

type catalogDiffer struct {
	repo store.CatalogRepository
}

// NewCatalogDiffer constructs the [CatalogDiffer] used during catalog
// fetches. It reads and writes the composite-hash cache through repo.
func NewCatalogDiffer(repo store.CatalogRepository) CatalogDiffer {
	return &catalogDiffer{repo: repo}
}

// Diff implements [CatalogDiffer].
//
// A descriptor without a manifest is treated as having an empty manifest
// hash; media comparison is skipped entirely for such forms. The composite
// hash is written back after every full comparison regardless of outcome, so
// a no-op run immediately after an update still primes the fast path.
func (d *catalogDiffer) Diff(ctx context.Context, remote models.RemoteFormDescriptor, manifest *models.ManifestSnapshot, local *models.FormRecord) (notOnDevice, updated bool, err error) {
	if local == nil {
		return true, false, nil
	}

	manifestHash := ""
	if manifest != nil {
		manifestHash = utils.NormalizeHash(manifest.Hash)
	}
	compositeHash := utils.VersionHash(utils.NormalizeHash(remote.Hash), manifestHash)

	if local.CachedVersionHash == compositeHash {
		// fast path: composite state unchanged since the last comparison
		return false, false, nil
	}

	updated, err = d.compare(ctx, remote, manifest, local)
	if err != nil {
		return false, false, err
	}

	if err = d.repo.SetCachedVersionHash(ctx, local.FormID, compositeHash); err != nil {
		return false, false, fmt.Errorf("cache version hash for %s: %w", local.FormID, err)
	}

	return false, updated, nil
}

func (d *catalogDiffer) compare(ctx context.Context, remote models.RemoteFormDescriptor, manifest *models.ManifestSnapshot, local *models.FormRecord) (bool, error) {
	if utils.NormalizeHash(remote.Hash) != utils.NormalizeHash(local.ContentHash) {
		return true, nil
	}

	if manifest == nil {
		return false, nil
	}

	localFiles, err := d.repo.GetMediaFiles(ctx, local.FormID, local.Version)
	if err != nil {
		return false, fmt.Errorf("get media files for %s: %w", local.FormID, err)
	}

	changed := mediaFilesChanged(manifest.MediaFiles, localFiles)
	if changed {
		logger.FromContext(ctx).Debug().
			Str("func", "catalogDiffer.compare").
			Str("form_id", local.FormID).
			Msg("media files differ from manifest")
	}

	return changed, nil
}

// mediaFilesChanged reports whether the manifest and the local media records
// disagree by name or hash in either direction.
func mediaFilesChanged(manifestFiles []models.ManifestMediaFile, localFiles []models.MediaFileRecord) bool {
	if len(manifestFiles) != len(localFiles) {
		return true
	}

	localByName := make(map[string]string, len(localFiles))
	for _, f := range localFiles {
		localByName[f.Name] = utils.NormalizeHash(f.ContentHash)
	}

	for _, f := range manifestFiles {
		localHash, ok := localByName[f.Name]
		if !ok || localHash != utils.NormalizeHash(f.Hash) {
			return true
		}
	}

	return false
}
