// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-sync/internal/adapter"
	"github.com/MKhiriev/go-form-sync/internal/store"
	"github.com/MKhiriev/go-form-sync/models"
)

type serverFormsFetcher struct {
	server adapter.FormServer
	repo   store.CatalogRepository
	differ CatalogDiffer
}

// NewServerFormsFetcher constructs the [CatalogFetcher] that annotates the
// remote form list with diff results against the local catalog.
func NewServerFormsFetcher(server adapter.FormServer, repo store.CatalogRepository, differ CatalogDiffer) CatalogFetcher {
	return &serverFormsFetcher{server: server, repo: repo, differ: differ}
}

// FetchCatalog implements [CatalogFetcher]. A manifest fetch failure mid-list
// aborts the whole fetch; no partial catalog is produced.
func (f *serverFormsFetcher) FetchCatalog(ctx context.Context) ([]models.ServerFormDetails, error) {
	forms, err := f.server.FetchFormList(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch form list: %w", err)
	}

	details := make([]models.ServerFormDetails, 0, len(forms))
	for _, remote := range forms {
		var manifest *models.ManifestSnapshot
		if remote.ManifestURL != "" {
			snapshot, err := f.server.FetchManifest(ctx, remote.ManifestURL)
			if err != nil {
				return nil, fmt.Errorf("fetch manifest for %s: %w", remote.FormID, err)
			}
			manifest = &snapshot
		}

		local, err := f.localRecord(ctx, remote.FormID)
		if err != nil {
			return nil, err
		}

		notOnDevice, updated, err := f.differ.Diff(ctx, remote, manifest, local)
		if err != nil {
			return nil, fmt.Errorf("diff form %s: %w", remote.FormID, err)
		}

		details = append(details, models.ServerFormDetails{
			RemoteFormDescriptor: remote,
			Manifest:             manifest,
			NotOnDevice:          notOnDevice,
			Updated:              updated,
		})
	}

	return details, nil
}

func (f *serverFormsFetcher) localRecord(ctx context.Context, formID string) (*models.FormRecord, error) {
	record, err := f.repo.GetForm(ctx, formID)
	if err != nil {
		if errors.Is(err, store.ErrFormNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get local record for %s: %w", formID, err)
	}
	return &record, nil
}
