package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	Version string
	// Mode is one of ModeConsole, ModeTUI or ModeScenarios.
	Mode string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote validator address. Empty means in-process
	// validation.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientLog holds client logging settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Rules   Rules
	Adapter ClientAdapter
	Log     ClientLog
}

// Remote reports whether the client should validate against a remote server.
func (cfg *ClientConfig) Remote() bool {
	return cfg.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config from args, maps only the fields relevant to the
// client runtime, and validates the resulting [ClientConfig]. Server
// settings are not required here.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			Mode:    cfg.App.Mode,
		},
		Rules: cfg.Rules,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
