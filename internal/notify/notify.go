// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify implements the outbound notification boundary of the sync
// engine. The default implementation reports failures through the structured
// log; richer consumers (a desktop notifier, a message bus) can replace it by
// implementing service.Notifier.
package notify

import (
	"context"

	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/service"
)

// LogNotifier reports sync failures as structured log entries.
type LogNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier constructs a [LogNotifier] writing through log.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

// OnSyncFailure implements service.Notifier. The entry carries both the
// machine-readable error and the user-facing message, so log consumers can
// surface either.
func (n *LogNotifier) OnSyncFailure(_ context.Context, err error) {
	event := n.logger.Error().Err(err).
		Str("func", "LogNotifier.OnSyncFailure").
		Str("message", service.SyncFailureMessage(err))

	if service.IsAuthError(err) {
		event = event.Str("action", "update credentials")
	} else {
		event = event.Str("action", "retry later")
	}

	event.Msg("sync failed")
}
