package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-form-sync/internal/config"
	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/utils"
	"github.com/MKhiriev/go-form-sync/internal/validators"
	"github.com/MKhiriev/go-form-sync/models"
)

// downloadsPerSecond caps file downloads so a large catalog refresh does not
// hammer the form server. Burst of one keeps downloads evenly spaced.
const downloadsPerSecond = 5

type httpFormServer struct {
	client    *utils.HTTPClient
	limiter   *rate.Limiter
	validator validators.Validator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPFormServer constructs an HTTP/REST implementation of [FormServer].
// It normalises and validates the base URL from cfg.Address, configures the
// underlying HTTP client with the resolved base URL and request timeout, and
// stores cfg.Token as the initial bearer token.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid URL.
func NewHTTPFormServer(cfg config.ClientAdapter, logger *logger.Logger) (FormServer, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	server := &httpFormServer{
		client:    client,
		limiter:   rate.NewLimiter(rate.Limit(downloadsPerSecond), 1),
		validator: validators.NewCatalogValidator(),
		logger:    logger,
	}
	server.SetToken(cfg.Token)

	return server, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [FormServer]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpFormServer) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [FormServer]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpFormServer) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchFormList implements [FormServer]. It GETs the catalog endpoint
// GET /api/forms and decodes the response into remote form descriptors,
// preserving server-supplied ordering. Returns [ErrUnauthorized] or
// [ErrForbidden] (wrapped) on an authentication rejection.
func (h *httpFormServer) FetchFormList(ctx context.Context) ([]models.RemoteFormDescriptor, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/api/forms")
	if err != nil {
		return nil, fmt.Errorf("fetch form list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var forms []models.RemoteFormDescriptor
	if err = json.Unmarshal(resp.Body(), &forms); err != nil {
		return nil, fmt.Errorf("decode form list response: %w", err)
	}

	for i, form := range forms {
		if err = h.validator.Validate(ctx, form); err != nil {
			return nil, fmt.Errorf("invalid form list entry at index %d: %w", i, err)
		}
	}

	return forms, nil
}

// FetchManifest implements [FormServer]. It GETs manifestURL (absolute, or
// relative to the adapter's base URL) and decodes the media manifest.
func (h *httpFormServer) FetchManifest(ctx context.Context, manifestURL string) (models.ManifestSnapshot, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ManifestSnapshot{}, err
	}

	resp, err := req.Get(manifestURL)
	if err != nil {
		return models.ManifestSnapshot{}, fmt.Errorf("fetch manifest request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ManifestSnapshot{}, err
	}

	var manifest models.ManifestSnapshot
	if err = json.Unmarshal(resp.Body(), &manifest); err != nil {
		return models.ManifestSnapshot{}, fmt.Errorf("decode manifest response: %w", err)
	}

	if err = h.validator.Validate(ctx, manifest); err != nil {
		return models.ManifestSnapshot{}, fmt.Errorf("invalid manifest: %w", err)
	}

	return manifest, nil
}

// DownloadFile implements [FormServer]. Downloads are throttled by a shared
// rate limiter so one reconciliation pass cannot flood the server.
func (h *httpFormServer) DownloadFile(ctx context.Context, downloadURL string) ([]byte, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("download rate limit: %w", err)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(downloadURL)
	if err != nil {
		return nil, fmt.Errorf("download file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// authedRequest builds a request with the bearer token attached. A JWT whose
// expiry already passed fails fast with [ErrTokenExpired] instead of a
// round trip that is guaranteed to come back 401.
func (h *httpFormServer) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		if utils.TokenExpired(token, time.Now()) {
			return nil, ErrTokenExpired
		}
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req, nil
}
