package service

import (
	"errors"
	"fmt"
)

var (
	// ErrSyncAlreadyRunning is returned by SyncNow when a reconciliation
	// pass is already in flight. The trigger is dropped, not queued.
	ErrSyncAlreadyRunning = errors.New("synchronization already running")

	// ErrDownloadFailed marks a single form download failure. It never
	// crosses the synchronizer boundary individually; the synchronizer folds
	// all of them into one aggregate [*SyncError].
	ErrDownloadFailed = errors.New("form download failed")
)

// ErrorKind partitions sync failures by the caller action they suggest.
type ErrorKind string

const (
	// KindAuth marks an authentication rejection during the fetch stage.
	// The user should re-enter credentials rather than retry.
	KindAuth ErrorKind = "auth"

	// KindFetch marks a transport fault during fetch or an aggregate of
	// per-form download failures. A later retry is the appropriate action.
	KindFetch ErrorKind = "fetch"
)

// SyncError is the only error type a reconciliation pass surfaces.
type SyncError struct {
	Kind ErrorKind

	// FailedForms lists the form ids whose download failed, in catalog
	// order. Empty for fetch-stage failures.
	FailedForms []string

	Err error
}

func (e *SyncError) Error() string {
	switch {
	case e.Kind == KindAuth:
		return fmt.Sprintf("sync failed: authentication rejected: %v", e.Err)
	case len(e.FailedForms) > 0:
		return fmt.Sprintf("sync failed: %d form download(s) failed: %v", len(e.FailedForms), e.Err)
	default:
		return fmt.Sprintf("sync failed: %v", e.Err)
	}
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// IsAuthError reports whether err is a sync failure caused by an
// authentication rejection.
func IsAuthError(err error) bool {
	var syncErr *SyncError
	return errors.As(err, &syncErr) && syncErr.Kind == KindAuth
}
