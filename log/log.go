// Copyright (c) 2025 The Hearthchain developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log provides structured key/value logging for the staking
// program. Packages grab a contextual logger at init and may be rewired
// through their SetLogger hooks.
package log

import (
	"context"
	"log/slog"
	"os"
)

// Logger writes leveled key/value records.
type Logger interface {
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)

	// With returns a Logger that includes the given attributes in each
	// record.
	With(ctx ...any) Logger
}

type logger struct {
	inner *slog.Logger
}

var root = &logger{slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))}

// New creates a Logger backed by the given slog handler.
func New(handler slog.Handler) Logger {
	return &logger{slog.New(handler)}
}

// WithContext returns the root logger extended with the given attributes.
func WithContext(ctx ...any) Logger {
	return root.With(ctx...)
}

// Discard returns a Logger that drops all records.
func Discard() Logger {
	return &logger{slog.New(discardHandler{})}
}

func (l *logger) Debug(msg string, ctx ...any) { l.inner.Debug(msg, ctx...) }
func (l *logger) Info(msg string, ctx ...any)  { l.inner.Info(msg, ctx...) }
func (l *logger) Warn(msg string, ctx ...any)  { l.inner.Warn(msg, ctx...) }
func (l *logger) Error(msg string, ctx ...any) { l.inner.Error(msg, ctx...) }

func (l *logger) With(ctx ...any) Logger {
	return &logger{l.inner.With(ctx...)}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
