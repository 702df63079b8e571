// Package server wires and runs the validator's HTTP server.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown.
package server
