package config

import (
	"fmt"
	"time"
)

// Default values applied by [GetClientConfig] when a setting is absent from
// every configuration source.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 15 * time.Minute
	DefaultDatabaseDSN    = "formsync.db"
	DefaultFormsDir       = "forms"
)

// ClientAdapter holds network settings used by the transport layer talking to
// the remote form service.
type ClientAdapter struct {
	// Address is the base URL of the form-list service.
	Address string
	// Token is the bearer token supplied out of band.
	Token string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local catalog database settings.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups local catalog backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// FormsDir is the directory downloaded forms and media are written to.
	FormsDir string
}

// ClientTrigger holds the local trigger endpoint settings.
type ClientTrigger struct {
	// Address is the listen address of the HTTP trigger endpoint; empty
	// disables it.
	Address string
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the recurring sync job runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains transport settings for the remote form service.
	Adapter ClientAdapter
	// Storage contains local catalog settings.
	Storage ClientStorage
	// Trigger contains the local trigger endpoint settings.
	Trigger ClientTrigger
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration, applying defaults for settings no source
// provided.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			Address:        cfg.Server.Address,
			Token:          cfg.Server.Token,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			FormsDir: cfg.Storage.Files.FormsDir,
		},
		Trigger: ClientTrigger{
			Address: cfg.Trigger.Address,
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
		},
	}

	clientCfg.applyDefaults()

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDatabaseDSN
	}
	if cfg.Storage.FormsDir == "" {
		cfg.Storage.FormsDir = DefaultFormsDir
	}
}
