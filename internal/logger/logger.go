// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the validator server and client.
//
// Every entry carries the process role, a timestamp and the calling function
// name. Request-scoped loggers travel in the context and are recovered with
// FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultClientLogFile is created next to the client executable when no log
// file is configured.
const DefaultClientLogFile = "bank-validator.log"

// Logger embeds zerolog.Logger so the full zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns a JSON logger writing to the file at path, keeping
// stdout free for the console and TUI. An empty path selects
// DefaultClientLogFile beside the executable; an unopenable file falls back
// to stderr.
func NewClientLogger(role, path string) *Logger {
	if path == "" {
		path = defaultClientLogPath()
	}

	var out io.Writer = os.Stderr
	if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		out = f
	}
	return newLogger(out, role)
}

func defaultClientLogPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return DefaultClientLogFile
	}
	return filepath.Join(filepath.Dir(execPath), DefaultClientLogFile)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(out).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// SetLevel applies the named global level and returns it. Empty or unknown
// names select debug.
func SetLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(lvl)
	return lvl
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// context logger when none is attached. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
