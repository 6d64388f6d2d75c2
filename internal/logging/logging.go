// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the polyrecon command.
// Library packages never log; only the CLI boundary does.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console-encoded logger writing to w at the named level
// ("debug", "info", "warn", "error").
func New(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = "" // keep CLI output reproducible
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)

	return zap.New(core), nil
}

// Module returns a child logger named after a CLI component.
func Module(l *zap.Logger, name string) *zap.Logger {
	return l.Named(name)
}
