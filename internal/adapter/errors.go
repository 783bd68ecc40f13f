package adapter

import "errors"

var (
	// ErrTokenExpired is returned before a request is sent when the stored
	// bearer token is a JWT whose expiry already passed.
	ErrTokenExpired = errors.New("bearer token expired")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
