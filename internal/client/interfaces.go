// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit or until ctx
	// is done.
	Run(ctx context.Context) error
}

// frontEnd is an interactive surface the client hands control to after the
// predefined scenarios have been printed.
type frontEnd interface {
	Run(ctx context.Context) error
}
