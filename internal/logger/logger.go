// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the hub channel client.
//
// Every component receives a *Logger. Per-push loggers carrying a trace id
// travel through context.Context and are recovered with FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const clientLogFile = "hub-client.log"

// Logger embeds zerolog.Logger, so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// New writes JSON entries to w, each tagged with role, a timestamp and the
// calling function under "func".
func New(w io.Writer, role string) *Logger {
	setupGlobals()

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewLogger logs to stdout.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger appends to hub-client.log next to the executable and
// falls back to stderr when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	var w io.Writer = os.Stderr
	if f, err := openClientLogFile(); err == nil {
		w = f
	}
	return New(w, role)
}

func openClientLogFile() (*os.File, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(filepath.Dir(execPath), clientLogFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

func setupGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// ForHub returns a child logger tagging every entry with hub_id.
func (l *Logger) ForHub(hubID string) *Logger {
	return &Logger{l.With().Str("hub_id", hubID).Logger()}
}

// WithContext attaches l to ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// WithTraceID returns ctx carrying a child of l with a "trace_id" field,
// together with that child.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) (context.Context, *Logger) {
	child := &Logger{l.With().Str("trace_id", traceID).Logger()}
	return child.WithContext(ctx), child
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when there is none. Never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
