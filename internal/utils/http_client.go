package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a thin wrapper around resty.Client. Embedding *resty.Client
// exposes the full resty API while leaving room for application-specific
// extensions.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a new HTTPClient with a default-configured underlying
// resty.Client. Each call returns an independent client with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
