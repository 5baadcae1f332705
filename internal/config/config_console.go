// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

// ConsoleConfig holds the configuration of the terminal admin console.
type ConsoleConfig struct {
	// Adapter holds connection settings for the server API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the console's background jobs.
	Workers Workers `envPrefix:"WORKERS_"`
}

// Adapter holds connection settings used by the console's HTTP adapter.
type Adapter struct {
	// ServerURL is the base URL of the API server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds each outbound API call (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs run by the console.
type Workers struct {
	// RefreshInterval is how often the console re-fetches visible records
	// in the background while a list screen is open (e.g. "5s").
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetConsoleConfig loads the console configuration from environment
// variables and command-line flags, applying defaults for anything unset.
func GetConsoleConfig() (*ConsoleConfig, error) {
	cfg := &ConsoleConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	var serverURL string
	var requestTimeout, refreshInterval time.Duration
	flag.StringVar(&serverURL, "server-url", "", "API server base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 5s)")
	flag.Parse()

	if serverURL != "" {
		cfg.Adapter.ServerURL = serverURL
	}
	if requestTimeout != 0 {
		cfg.Adapter.RequestTimeout = requestTimeout
	}
	if refreshInterval != 0 {
		cfg.Workers.RefreshInterval = refreshInterval
	}

	if cfg.Adapter.ServerURL == "" {
		cfg.Adapter.ServerURL = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = 5 * time.Second
	}

	return cfg, cfg.validate()
}
