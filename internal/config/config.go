// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// validator server and the console client. It is populated by merging
// defaults, environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application version and the client run mode.
	App App `envPrefix:"APP_"`

	// Rules holds the sources of the branch region whitelist.
	Rules Rules `envPrefix:"RULES_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote validator address used by the client. When
	// HTTPAddress is empty the client validates in-process.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds the log level and the client log file location.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Mode selects the client front end: console, tui or scenarios.
	// Ignored by the server.
	// Env: APP_MODE
	Mode string `env:"MODE"`
}

// Rules configures where the branch region whitelist comes from.
type Rules struct {
	// Regions is an explicit comma-separated region list (e.g. "N,S,E,O").
	// Takes precedence over RegionsFile.
	// Env: RULES_VALID_REGIONS
	Regions string `env:"VALID_REGIONS"`

	// RegionsFile is a properties-style file holding BANK_VALID_REGIONS.
	// Env: RULES_REGIONS_FILE
	RegionsFile string `env:"REGIONS_FILE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client-side settings for talking to a remote validator.
type Adapter struct {
	// HTTPAddress is the base address of the validator server
	// (e.g. "localhost:8080" or "http://validator:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name. Env: LOG_LEVEL
	Level string `env:"LEVEL"`
	// File is the client log file path. Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags (args, without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
