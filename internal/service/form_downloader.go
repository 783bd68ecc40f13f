// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-sync/internal/adapter"
	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/store"
	"github.com/MKhiriev/go-form-sync/internal/utils"
	"github.com/MKhiriev/go-form-sync/models"
)

type formDownloader struct {
	server   adapter.FormServer
	repo     store.CatalogRepository
	formsDir string
}

// NewFormDownloader constructs the [FormDownloader] that installs forms under
// formsDir and records them in repo.
func NewFormDownloader(server adapter.FormServer, repo store.CatalogRepository, formsDir string) FormDownloader {
	return &formDownloader{server: server, repo: repo, formsDir: formsDir}
}

// DownloadForm implements [FormDownloader]. The form definition is fetched
// first and verified against the server-reported hash; media files follow.
// The catalog record is written only after every file landed on disk, so a
// failed download leaves no record claiming the form is present.
func (d *formDownloader) DownloadForm(ctx context.Context, details models.ServerFormDetails) error {
	log := logger.FromContext(ctx)

	formPath, err := d.downloadFormDefinition(ctx, details)
	if err != nil {
		return err
	}

	mediaRecords, err := d.downloadMediaFiles(ctx, details)
	if err != nil {
		return err
	}

	now := time.Now()
	record := models.FormRecord{
		FormID:      details.FormID,
		Version:     details.Version,
		Title:       details.Title,
		ContentHash: utils.NormalizeHash(details.Hash),
		FilePath:    formPath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = d.repo.SaveForm(ctx, record); err != nil {
		return fmt.Errorf("save form record %s: %w", details.FormID, err)
	}
	if err = d.repo.ReplaceMediaFiles(ctx, details.FormID, details.Version, mediaRecords); err != nil {
		return fmt.Errorf("save media records for %s: %w", details.FormID, err)
	}

	log.Info().
		Str("func", "formDownloader.DownloadForm").
		Str("form_id", details.FormID).
		Str("version", details.Version).
		Int("media_files", len(mediaRecords)).
		Msg("form installed")

	return nil
}

func (d *formDownloader) downloadFormDefinition(ctx context.Context, details models.ServerFormDetails) (string, error) {
	data, err := d.server.DownloadFile(ctx, details.DownloadURL)
	if err != nil {
		return "", fmt.Errorf("download form %s: %w", details.FormID, err)
	}
	if err = verifyHash(data, details.Hash); err != nil {
		return "", fmt.Errorf("verify form %s: %w", details.FormID, err)
	}

	formPath := filepath.Join(d.formsDir, sanitizeFileName(details.FormID)+".xml")
	if err = writeFile(formPath, data); err != nil {
		return "", fmt.Errorf("write form %s: %w", details.FormID, err)
	}

	return formPath, nil
}

func (d *formDownloader) downloadMediaFiles(ctx context.Context, details models.ServerFormDetails) ([]models.MediaFileRecord, error) {
	if details.Manifest == nil {
		return nil, nil
	}

	mediaDir := filepath.Join(d.formsDir, sanitizeFileName(details.FormID)+"-media")
	records := make([]models.MediaFileRecord, 0, len(details.Manifest.MediaFiles))

	for _, file := range details.Manifest.MediaFiles {
		path := filepath.Join(mediaDir, sanitizeFileName(file.Name))

		if !onDiskHashMatches(path, file.Hash) {
			data, err := d.server.DownloadFile(ctx, file.DownloadURL)
			if err != nil {
				return nil, fmt.Errorf("download media %s of %s: %w", file.Name, details.FormID, err)
			}
			if err = verifyHash(data, file.Hash); err != nil {
				return nil, fmt.Errorf("verify media %s of %s: %w", file.Name, details.FormID, err)
			}
			if err = writeFile(path, data); err != nil {
				return nil, fmt.Errorf("write media %s of %s: %w", file.Name, details.FormID, err)
			}
		}

		records = append(records, models.MediaFileRecord{
			FormID:      details.FormID,
			FormVersion: details.Version,
			Name:        file.Name,
			ContentHash: utils.NormalizeHash(file.Hash),
			FilePath:    path,
		})
	}

	return records, nil
}

// verifyHash checks payload integrity against the server-reported hash. An
// empty expectation is accepted; the server is not obliged to publish hashes.
func verifyHash(data []byte, expected string) error {
	expected = utils.NormalizeHash(expected)
	if expected == "" {
		return nil
	}

	if actual := utils.ContentHash(data); actual != expected {
		return fmt.Errorf("content hash mismatch: got %s, want %s", actual, expected)
	}
	return nil
}

// onDiskHashMatches reports whether the file at path already carries the
// expected content, so a media file surviving from the previous version does
// not have to be fetched again. Any read error means the file must be fetched.
func onDiskHashMatches(path, expected string) bool {
	expected = utils.NormalizeHash(expected)
	if expected == "" {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	actual, err := utils.ReaderHash(f)
	return err == nil && actual == expected
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// sanitizeFileName keeps server-supplied names from escaping the forms
// directory.
func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "..", "_")
	return name
}
