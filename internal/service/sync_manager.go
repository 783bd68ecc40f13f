// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/models"
)

type syncManager struct {
	synchronizer Synchronizer
	gate         SyncGate
	notifier     Notifier
	logger       *logger.Logger
}

// NewSyncManager constructs the [SyncManager] both triggers share. notifier
// may not be nil; use a no-op implementation to silence notifications.
func NewSyncManager(synchronizer Synchronizer, gate SyncGate, notifier Notifier, logger *logger.Logger) SyncManager {
	return &syncManager{
		synchronizer: synchronizer,
		gate:         gate,
		notifier:     notifier,
		logger:       logger,
	}
}

// SyncNow implements [SyncManager]. A pass runs to completion once started;
// there is no mid-pass cancellation contract beyond ctx reaching the network
// and storage boundaries.
func (m *syncManager) SyncNow(ctx context.Context) error {
	if !m.gate.TryAcquire() {
		return ErrSyncAlreadyRunning
	}

	err := m.synchronizer.Synchronize(ctx)
	m.gate.Release(err == nil)

	if err != nil {
		m.logger.Warn().Err(err).Str("func", "syncManager.SyncNow").Msg("sync pass failed")
		m.notifier.OnSyncFailure(ctx, err)
		return err
	}

	return nil
}

// Status implements [SyncManager].
func (m *syncManager) Status() models.SyncStatus {
	return m.gate.Status()
}
