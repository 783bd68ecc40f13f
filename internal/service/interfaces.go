// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the match-exactly form catalog synchronization
// engine.
//
// One reconciliation pass forces the device-local catalog to mirror the remote
// one: the full remote list is fetched and diffed ([CatalogFetcher]), local
// forms absent from the remote are deleted, and every new or updated form is
// downloaded fail-soft ([Synchronizer]). A pass never runs concurrently with
// itself; both the scheduled job and the manual trigger go through
// [SyncManager], which serialises passes with a [SyncGate].
//
// Failures surface as [*SyncError]: an authentication rejection or transport
// fault during the fetch stage aborts the pass before any local mutation,
// while per-form download failures are folded into one aggregate error after
// every eligible download was attempted.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CatalogDiffer decides whether one remote form differs from its local copy.
type CatalogDiffer interface {
	// Diff compares a remote descriptor (and its manifest, when present)
	// against the local record. notOnDevice is true when local is nil;
	// updated is true when the local copy differs in form content or in any
	// media file.
	//
	// A composite hash of (content hash, manifest hash) is cached on the
	// local record after every full comparison; when the cached value already
	// matches, Diff returns without enumerating media files.
	Diff(ctx context.Context, remote models.RemoteFormDescriptor, manifest *models.ManifestSnapshot, local *models.FormRecord) (notOnDevice, updated bool, err error)
}

// CatalogFetcher retrieves the full remote catalog annotated with diff
// results.
type CatalogFetcher interface {
	// FetchCatalog fetches the remote form list, lazily fetches the manifest
	// of every descriptor that carries a manifest URL, and runs the differ
	// per entry. Server-supplied ordering is preserved.
	//
	// Any list or manifest failure aborts the whole fetch: no partial
	// catalog is ever returned.
	FetchCatalog(ctx context.Context) ([]models.ServerFormDetails, error)
}

// FormDownloader installs one remote form into the local catalog.
type FormDownloader interface {
	// DownloadForm downloads the form definition and every manifest media
	// file, verifies each payload against its server-reported hash, writes
	// the files under the forms directory and records the form in the local
	// catalog.
	DownloadForm(ctx context.Context, details models.ServerFormDetails) error
}

// Synchronizer runs one match-exactly reconciliation pass.
type Synchronizer interface {
	// Synchronize fetches the remote catalog, deletes every local form the
	// remote no longer lists, and downloads every new or updated form.
	// Download failures are collected per form and reported once as an
	// aggregate [*SyncError] after the whole batch was attempted.
	//
	// Fetch-stage failures (including authentication rejections) abort the
	// pass before any deletion.
	Synchronize(ctx context.Context) error
}

// SyncGate is the single-flight lock around reconciliation passes. It owns
// the process-wide [models.SyncStatus]; no other component mutates it.
type SyncGate interface {
	// TryAcquire marks the status as syncing and returns true, or returns
	// false when a pass is already in flight. Rejected callers are not
	// queued.
	TryAcquire() bool

	// Release clears the syncing flag. OutOfSync is set when success is
	// false and cleared only by a subsequent successful pass.
	Release(success bool)

	// Status returns a copy of the current synchronization status.
	Status() models.SyncStatus
}

// SyncManager is the reconciliation entry point shared by the scheduled job
// and the manual trigger.
type SyncManager interface {
	// SyncNow runs one reconciliation pass under the gate. Returns
	// [ErrSyncAlreadyRunning] when a pass is in flight; a failed pass
	// returns the [*SyncError] and reports it through the notifier.
	SyncNow(ctx context.Context) error

	// Status exposes the gate's current synchronization status.
	Status() models.SyncStatus
}

// SyncJob is the recurring background trigger that periodically invokes
// [SyncManager.SyncNow].
type SyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 15 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// Notifier is the outbound notification boundary. The engine reports each
// failed pass exactly once; the error's kind tells the consumer whether to
// offer a credentials prompt or a plain retry.
type Notifier interface {
	OnSyncFailure(ctx context.Context, err error)
}
