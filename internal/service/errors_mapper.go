// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-form-sync/internal/adapter"
)

// mapFetchError translates a fetch-stage transport error into the service
// business error. Authentication rejections are tagged distinctly so the
// caller can prompt for credentials instead of a generic retry.
func mapFetchError(err error) error {
	if err == nil {
		return nil
	}

	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return err
	}

	return &SyncError{Kind: classifyFetchError(err), Err: err}
}

func classifyFetchError(err error) ErrorKind {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrTokenExpired):
		return KindAuth
	default:
		return KindFetch
	}
}
