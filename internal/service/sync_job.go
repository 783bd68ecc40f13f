package service

import (
	"context"
	"errors"
	"sync"
	"time"
)

type syncJob struct {
	manager SyncManager

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that calls manager.SyncNow on a ticker. The
// job is idle until Start is called.
func NewSyncJob(manager SyncManager) SyncJob {
	return &syncJob{manager: manager}
}

// Start implements [SyncJob]. It stops any previously running job, then
// launches a background goroutine that triggers a sync pass every interval.
// If interval is zero or negative it defaults to 15 minutes. The goroutine
// exits when ctx is cancelled or Stop is called.
//
// A cycle whose trigger is rejected by the gate is simply skipped; rejected
// triggers are not queued.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.manager.SyncNow(jobCtx); errors.Is(err, ErrSyncAlreadyRunning) {
					continue
				}
			}
		}
	}()
}

// Stop implements [SyncJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
