package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/service"
	"github.com/MKhiriev/go-form-sync/internal/utils"
)

// syncResponse is the body of both trigger and status endpoints.
type syncResponse struct {
	Syncing   bool `json:"syncing"`
	OutOfSync bool `json:"out_of_sync"`
}

// triggerSync starts one reconciliation pass and answers 202 immediately. The
// pass runs on a context detached from the request, so a client disconnect
// cannot abort it mid-flight. A trigger arriving while a pass is in flight is
// rejected with 409; it is not queued.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.manager.Status().Syncing {
		log.Warn().Str("func", "*Handler.triggerSync").Msg("sync trigger rejected, pass already running")
		http.Error(w, "synchronization already running", http.StatusConflict)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	go func() {
		err := h.manager.SyncNow(ctx)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrSyncAlreadyRunning):
			// lost the race against another trigger; the gate dropped us
			log.Warn().Str("func", "*Handler.triggerSync").Msg("sync trigger rejected, pass already running")
		default:
			log.Err(err).Str("func", "*Handler.triggerSync").Msg("sync pass failed")
		}
	}()

	status := h.manager.Status()
	utils.WriteJSON(w, syncResponse{Syncing: true, OutOfSync: status.OutOfSync}, http.StatusAccepted)
}

// syncStatus reports the gate's current state without triggering anything.
func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	status := h.manager.Status()
	utils.WriteJSON(w, syncResponse{Syncing: status.Syncing, OutOfSync: status.OutOfSync}, http.StatusOK)
}
