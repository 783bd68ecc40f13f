package service

import (
	"sync"

	"github.com/MKhiriev/go-form-sync/models"
)

// syncGate owns the process-wide sync status. Acquire attempts while a pass
// is in flight are rejected, never queued.
type syncGate struct {
	mu     sync.Mutex
	status models.SyncStatus
}

// NewSyncGate constructs an idle [SyncGate].
func NewSyncGate() SyncGate {
	return &syncGate{}
}

// TryAcquire implements [SyncGate].
func (g *syncGate) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status.Syncing {
		return false
	}
	g.status.Syncing = true
	return true
}

// Release implements [SyncGate]. OutOfSync survives until a successful pass
// clears it.
func (g *syncGate) Release(success bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.status.Syncing = false
	g.status.OutOfSync = !success
}

// Status implements [SyncGate].
func (g *syncGate) Status() models.SyncStatus {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.status
}
