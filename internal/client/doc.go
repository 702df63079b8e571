// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the validator client application runtime.
//
// It prints the predefined scenarios and then hands control to the
// interactive front end selected by the configured mode.
package client
