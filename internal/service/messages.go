package service

import "errors"

// User-facing messages for the notification boundary. The error kind decides
// the action offered: re-enter credentials for auth failures, retry later for
// everything else.
const (
	MsgAuthRequired    = "server authentication failed, update the server credentials and sync again"
	MsgFetchFailed     = "form update check failed, will retry on the next sync"
	MsgDownloadsFailed = "some form updates could not be downloaded, will retry on the next sync"
)

// SyncFailureMessage maps a failed pass to its user-facing message.
func SyncFailureMessage(err error) string {
	var syncErr *SyncError
	if !errors.As(err, &syncErr) {
		return MsgFetchFailed
	}

	switch {
	case syncErr.Kind == KindAuth:
		return MsgAuthRequired
	case len(syncErr.FailedForms) > 0:
		return MsgDownloadsFailed
	default:
		return MsgFetchFailed
	}
}
