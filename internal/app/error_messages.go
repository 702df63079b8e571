// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// validator server handlers and the console client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as a transaction request.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgVersionIsNotSpecified is returned by the version endpoint when the
	// server was started without a version string.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "not found"
)

// Outcome banners printed by the client front ends.
const (
	MsgTransactionApproved = "TRANSACTION APPROVED"
	MsgTransactionRejected = "TRANSACTION REJECTED"
)
