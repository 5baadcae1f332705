// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

// Package config loads, merges, and validates application configuration.
//
// Sources are layered by precedence: environment variables first, then
// command-line flags, then an optional JSON file that fills whatever is
// still unset. The JSON file path itself comes from the env or flag layer.
//
// Entry points: [GetServerConfig] for the API server, [GetConsoleConfig]
// for the terminal admin console.
package config
