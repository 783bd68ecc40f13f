// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote form service.
//
// The primary abstraction is [FormServer], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPFormServer]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
// The service layer classifies [ErrUnauthorized] and [ErrForbidden] as
// authentication failures and every other transport fault generically.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-form-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/form_server_mock.go -package=mock

// FormServer defines transport-agnostic communication with the remote form
// service. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type FormServer interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// FetchFormList retrieves the complete remote form catalog in
	// server-supplied order. Returns an error if the request fails or the
	// server responds with a non-2xx status.
	FetchFormList(ctx context.Context) ([]models.RemoteFormDescriptor, error)

	// FetchManifest retrieves the media manifest published at manifestURL.
	// The URL comes from a [models.RemoteFormDescriptor] and may be absolute
	// or relative to the adapter's base URL.
	FetchManifest(ctx context.Context, manifestURL string) (models.ManifestSnapshot, error)

	// DownloadFile retrieves the raw bytes published at downloadURL. Used for
	// both form definitions and media files; content verification is the
	// caller's responsibility.
	DownloadFile(ctx context.Context, downloadURL string) ([]byte, error)
}
