// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the transaction request rule engine.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - Validate: the pure rule function mapping a request and a region
//     whitelist to an ordered list of human-readable messages.
//   - IsWeakPIN: heuristic that flags repeated or sequential PINs.
//
// Every rule runs on every call (no short-circuiting), so a rejected request
// reports all of its problems at once. Rules are plain length and
// character-class scans; no regular expressions are involved.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
