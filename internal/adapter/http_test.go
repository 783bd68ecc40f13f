package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-sync/internal/config"
	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/validators"
	"github.com/MKhiriev/go-form-sync/models"
)

func newTestFormServer(t *testing.T, handler http.Handler) (FormServer, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	server, err := NewHTTPFormServer(config.ClientAdapter{
		Address:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return server, srv
}

func expiredJWT(t *testing.T) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "device-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return signed
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "scheme and host", raw: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "bare host gets http scheme", raw: "forms.example.org:8443", want: "http://forms.example.org:8443"},
		{name: "trailing slash trimmed", raw: "https://forms.example.org/", want: "https://forms.example.org"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPFormServer_FetchFormList(t *testing.T) {
	forms := []models.RemoteFormDescriptor{
		{FormID: "zoo", Version: "2", Hash: "md5:bbb", DownloadURL: "/forms/zoo.xml"},
		{FormID: "birds", Version: "1", Hash: "md5:aaa", DownloadURL: "/forms/birds.xml", ManifestURL: "/forms/birds/manifest"},
	}

	var gotAuth string
	server, _ := newTestFormServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/forms", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(forms)
	}))
	server.SetToken("opaque-token")

	got, err := server.FetchFormList(context.Background())

	require.NoError(t, err)
	assert.Equal(t, forms, got, "server-supplied ordering must be preserved")
	assert.Equal(t, "Bearer opaque-token", gotAuth)
}

func TestHTTPFormServer_FetchFormList_AuthErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "401", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "403", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "500", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "502", status: http.StatusBadGateway, wantErr: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newTestFormServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))

			_, err := server.FetchFormList(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPFormServer_FetchFormList_RejectsMalformedEntry(t *testing.T) {
	forms := []models.RemoteFormDescriptor{
		{FormID: "birds", Hash: "md5:aaa", DownloadURL: "/forms/birds.xml"},
		{FormID: "", Hash: "md5:bbb", DownloadURL: "/forms/unnamed.xml"},
	}

	server, _ := newTestFormServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(forms)
	}))

	_, err := server.FetchFormList(context.Background())

	require.ErrorIs(t, err, validators.ErrEmptyFormID)
	assert.Contains(t, err.Error(), "index 1")
}

func TestHTTPFormServer_FetchManifest_RejectsMalformedEntry(t *testing.T) {
	manifest := models.ManifestSnapshot{
		MediaFiles: []models.ManifestMediaFile{{Name: "species.csv", Hash: ""}},
	}

	server, _ := newTestFormServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(manifest)
	}))

	_, err := server.FetchManifest(context.Background(), "/forms/birds/manifest")

	assert.ErrorIs(t, err, validators.ErrEmptyMediaFileHash)
}

func TestHTTPFormServer_FetchManifest(t *testing.T) {
	manifest := models.ManifestSnapshot{
		Hash: "manifest-hash",
		MediaFiles: []models.ManifestMediaFile{
			{Name: "species.csv", Hash: "md5:ccc", DownloadURL: "/media/species.csv"},
		},
	}

	server, _ := newTestFormServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/forms/birds/manifest", r.URL.Path)
		json.NewEncoder(w).Encode(manifest)
	}))

	got, err := server.FetchManifest(context.Background(), "/forms/birds/manifest")

	require.NoError(t, err)
	assert.Equal(t, manifest, got)
}

func TestHTTPFormServer_DownloadFile(t *testing.T) {
	payload := []byte(`<h:html>form definition</h:html>`)

	server, _ := newTestFormServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/forms/birds.xml", r.URL.Path)
		w.Write(payload)
	}))

	got, err := server.DownloadFile(context.Background(), "/forms/birds.xml")

	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestHTTPFormServer_ExpiredTokenFailsFast(t *testing.T) {
	requests := 0
	server, _ := newTestFormServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	server.SetToken(expiredJWT(t))

	_, err := server.FetchFormList(context.Background())

	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Zero(t, requests, "no request should be sent with an expired token")
}

func TestHTTPFormServer_OpaqueTokenIsSent(t *testing.T) {
	server, _ := newTestFormServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer not-a-jwt", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	server.SetToken("not-a-jwt")

	_, err := server.FetchFormList(context.Background())
	assert.NoError(t, err)
}

func TestNewHTTPFormServer_InvalidAddress(t *testing.T) {
	_, err := NewHTTPFormServer(config.ClientAdapter{Address: ""}, logger.Nop())
	assert.Error(t, err)
}
