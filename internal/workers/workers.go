package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-sync/internal/server"
	"github.com/MKhiriev/go-form-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates workers; Run starts them in registration order.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// syncJobWorker starts the recurring sync trigger.
type syncJobWorker struct {
	ctx      context.Context
	job      service.SyncJob
	interval time.Duration
}

// NewSyncJobWorker wraps job as a [Worker] that starts ticking with interval
// when Run is called. ctx bounds the job's lifetime.
func NewSyncJobWorker(ctx context.Context, job service.SyncJob, interval time.Duration) Worker {
	return &syncJobWorker{ctx: ctx, job: job, interval: interval}
}

func (w *syncJobWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}

// triggerServerWorker serves the manual trigger endpoint in the background.
type triggerServerWorker struct {
	server server.Server
}

// NewTriggerServerWorker wraps srv as a [Worker] whose Run starts listening
// in a background goroutine.
func NewTriggerServerWorker(srv server.Server) Worker {
	return &triggerServerWorker{server: srv}
}

func (w *triggerServerWorker) Run() {
	go w.server.RunServer()
}
