// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package config

// validate checks that the final merged [ServerConfig] satisfies all
// application invariants before it is used at startup.
//
// Rules:
//   - Backend must be one of the supported values; an empty backend
//     defaults to memory.
//   - The postgres backend requires a non-empty DSN.
//   - The file and sqlite backends require a non-empty Path.
//   - TokenSignKey must be set.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *ServerConfig) validate() error {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendMemory
	}

	switch cfg.Storage.Backend {
	case BackendMemory:
	case BackendPostgres:
		if cfg.Storage.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendFile, BackendSQLite:
		if cfg.Storage.Path == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrUnknownStorageBackend
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ConsoleConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
