package config

import "errors"

// Validation errors returned by the validate methods when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a remote address without a request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown client mode).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
