// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged server [StructuredConfig] can be used at
// startup: a listen address and a positive request timeout are required.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.App.Mode {
	case ModeConsole, ModeTUI, ModeScenarios:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAppConfigs, cfg.App.Mode)
	}

	if cfg.Remote() && cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}
