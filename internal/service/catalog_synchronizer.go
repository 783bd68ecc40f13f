// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/store"
	"github.com/MKhiriev/go-form-sync/models"
)

type catalogSynchronizer struct {
	fetcher    CatalogFetcher
	downloader FormDownloader
	repo       store.CatalogRepository
	logger     *logger.Logger
}

// NewCatalogSynchronizer constructs the [Synchronizer] that drives one
// match-exactly reconciliation pass.
func NewCatalogSynchronizer(fetcher CatalogFetcher, downloader FormDownloader, repo store.CatalogRepository, logger *logger.Logger) Synchronizer {
	return &catalogSynchronizer{
		fetcher:    fetcher,
		downloader: downloader,
		repo:       repo,
		logger:     logger,
	}
}

// Synchronize implements [Synchronizer]. Fetch strictly precedes deletion and
// deletion strictly precedes downloads; a fetch failure therefore never
// causes a local deletion, and deletions are applied even when every
// subsequent download fails.
func (s *catalogSynchronizer) Synchronize(ctx context.Context) error {
	log := s.logger.With().Str("run_id", uuid.NewString()).Logger()
	ctx = log.WithContext(ctx)

	snapshot, err := s.fetcher.FetchCatalog(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "catalogSynchronizer.Synchronize").Msg("catalog fetch failed")
		return mapFetchError(err)
	}

	if err = s.deleteAbsentForms(ctx, snapshot); err != nil {
		return &SyncError{Kind: KindFetch, Err: err}
	}

	failed := s.downloadEligibleForms(ctx, snapshot)
	if len(failed) > 0 {
		return &SyncError{
			Kind:        KindFetch,
			FailedForms: failed,
			Err:         fmt.Errorf("%w: %d of %d eligible", ErrDownloadFailed, len(failed), len(snapshot)),
		}
	}

	log.Info().
		Str("func", "catalogSynchronizer.Synchronize").
		Int("remote_forms", len(snapshot)).
		Msg("catalog synchronized")

	return nil
}

// deleteAbsentForms removes every local form the remote catalog no longer
// lists. Deletions are cheap and safe to apply unconditionally, so they run
// before any download attempt.
func (s *catalogSynchronizer) deleteAbsentForms(ctx context.Context, snapshot []models.ServerFormDetails) error {
	log := logger.FromContext(ctx)

	localForms, err := s.repo.GetAllForms(ctx)
	if err != nil {
		return fmt.Errorf("get local catalog: %w", err)
	}

	remoteIDs := make(map[string]struct{}, len(snapshot))
	for _, details := range snapshot {
		remoteIDs[details.FormID] = struct{}{}
	}

	for _, local := range localForms {
		if _, ok := remoteIDs[local.FormID]; ok {
			continue
		}

		mediaFiles, err := s.repo.GetMediaFiles(ctx, local.FormID, local.Version)
		if err != nil {
			return fmt.Errorf("get media files of %s: %w", local.FormID, err)
		}

		if err = s.repo.DeleteForm(ctx, local.FormID); err != nil {
			return fmt.Errorf("delete form %s: %w", local.FormID, err)
		}

		removeFormFiles(local, mediaFiles)

		log.Info().
			Str("func", "catalogSynchronizer.deleteAbsentForms").
			Str("form_id", local.FormID).
			Msg("form removed from device")
	}

	return nil
}

// downloadEligibleForms attempts every new or updated form even when earlier
// ones failed and returns the form ids that could not be installed, in
// catalog order.
func (s *catalogSynchronizer) downloadEligibleForms(ctx context.Context, snapshot []models.ServerFormDetails) []string {
	log := logger.FromContext(ctx)

	var failed []string
	for _, details := range snapshot {
		if !details.NotOnDevice && !details.Updated {
			continue
		}

		if err := s.downloader.DownloadForm(ctx, details); err != nil {
			log.Warn().Err(err).
				Str("func", "catalogSynchronizer.downloadEligibleForms").
				Str("form_id", details.FormID).
				Msg("form download failed")
			failed = append(failed, details.FormID)
		}
	}

	return failed
}

// removeFormFiles deletes the on-disk artifacts of a form, best effort: the
// catalog record is already gone and a leftover file is harmless.
func removeFormFiles(form models.FormRecord, mediaFiles []models.MediaFileRecord) {
	if form.FilePath != "" {
		_ = os.Remove(form.FilePath)
	}
	for _, file := range mediaFiles {
		if file.FilePath != "" {
			_ = os.Remove(file.FilePath)
			_ = os.Remove(filepath.Dir(file.FilePath)) // removes the media dir once empty
		}
	}
}
