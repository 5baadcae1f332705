// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package store

import (
	"context"
	"fmt"

	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/logger"
)

// NewStore builds the collection store selected by cfg.Backend. SQL
// backends run their pending migrations before the store is returned.
func NewStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (CollectionStore, error) {
	switch cfg.Backend {
	case config.BackendMemory, "":
		return NewMemoryStore(), nil
	case config.BackendFile:
		return NewFileStore(cfg.Path)
	case config.BackendSQLite:
		return NewSQLiteStore(cfg.Path, log)
	case config.BackendPostgres:
		return NewPostgresStore(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
