// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-sync/internal/config"
	"github.com/MKhiriev/go-form-sync/internal/logger"
)

// CatalogStorages bundles the repositories backing the local form catalog.
type CatalogStorages struct {
	Forms CatalogRepository

	db *DB
}

// NewCatalogStorages opens the local SQLite database, applies pending
// migrations and wires the catalog repository on top of it.
func NewCatalogStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*CatalogStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to local catalog database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate local catalog database: %w", err)
	}

	return &CatalogStorages{
		Forms: NewFormCatalogRepository(db, log),
		db:    db,
	}, nil
}

// Close releases the underlying database connection.
func (s *CatalogStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
