// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for AleutianGrad components.
//
// The package wraps Go's standard library slog with a small, consistent
// surface. Output goes to stderr by default (Unix CLI convention); tests and
// embedders can redirect it through Config.Writer.
//
// # Basic Usage
//
//	logger := logging.Default()
//	logger.Info("training started", "epochs", 500)
//	logger.Error("config rejected", "error", err)
//
// # Log Levels
//
// Four levels are supported, matching slog conventions:
//
//   - Debug: development troubleshooting, verbose output
//   - Info: normal operations (epoch progress, run summaries)
//   - Warn: recoverable issues
//   - Error: operation failures (but the process continues)
//
// # Thread Safety
//
// Logger is safe for concurrent use; the underlying slog.Logger is
// thread-safe.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level controls which messages are emitted.
type Level int

const (
	// LevelDebug emits everything.
	LevelDebug Level = iota

	// LevelInfo is the default operating level.
	LevelInfo

	// LevelWarn emits warnings and errors only.
	LevelWarn

	// LevelError emits errors only.
	LevelError
)

// String returns the string representation of the Level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures a Logger.
type Config struct {
	// Level is the minimum level to emit. Defaults to LevelInfo.
	Level Level

	// Service is attached to every record as the "service" attribute.
	Service string

	// Writer receives the output. Defaults to os.Stderr.
	Writer io.Writer
}

// Logger is a structured logger backed by slog.
type Logger struct {
	slogger *slog.Logger
}

// New creates a Logger from the config.
func New(config Config) *Logger {
	w := config.Writer
	if w == nil {
		w = os.Stderr
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: config.Level.toSlogLevel(),
	})

	slogger := slog.New(handler)
	if config.Service != "" {
		slogger = slogger.With("service", config.Service)
	}
	return &Logger{slogger: slogger}
}

// Default returns a stderr logger at LevelInfo.
func Default() *Logger {
	return New(Config{})
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *Logger {
	return New(Config{Level: LevelError, Writer: io.Discard})
}

// Debug logs at debug level with alternating key/value args.
func (l *Logger) Debug(msg string, args ...any) {
	l.slogger.Debug(msg, args...)
}

// Info logs at info level with alternating key/value args.
func (l *Logger) Info(msg string, args ...any) {
	l.slogger.Info(msg, args...)
}

// Warn logs at warn level with alternating key/value args.
func (l *Logger) Warn(msg string, args ...any) {
	l.slogger.Warn(msg, args...)
}

// Error logs at error level with alternating key/value args.
func (l *Logger) Error(msg string, args ...any) {
	l.slogger.Error(msg, args...)
}

// With returns a child logger carrying the given attributes on every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slogger: l.slogger.With(args...)}
}

// Slog exposes the underlying slog.Logger for libraries that want it.
func (l *Logger) Slog() *slog.Logger {
	return l.slogger
}
