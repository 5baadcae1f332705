// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

// Package logger wraps zerolog.Logger with the constructors and
// context-aware helpers used across agrodesk. The wrapper embeds
// zerolog.Logger, so the full zerolog API is available on *Logger.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the application logger. Request-scoped instances are obtained
// via FromContext or FromRequest.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the process logger for the given role label
// ("agrodesk-server", "agrodesk-console"). JSON output on stdout, debug
// level, with a timestamp and a fully-qualified caller function name on
// every entry.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a logger inheriting all fields of the receiver.
// The child can be enriched without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached to the request
// context by the trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. Zerolog falls back to its
// global logger when ctx carries none, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
