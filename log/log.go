// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.

// Package log provides the logging facade used throughout this module. By
// default messages are written to standard error through a zerolog logger;
// applications embedding the module can route them into their own logger by
// calling [SetBackend].
package log

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Backend is the set of functions the package-level logging functions
// forward to. A nil function silences its level ([Errorf] and [Criticalf]
// still return the formatted error).
type Backend struct {
	// Trace logs a message at the trace level.
	Trace func(format string, args ...any)
	// Debug logs a message at the debug level.
	Debug func(format string, args ...any)
	// Info logs a message at the info level.
	Info func(format string, args ...any)
	// Warn logs a message at the warning level.
	Warn func(format string, args ...any)
	// Errorf logs a message at the error level and returns it as an error.
	Errorf func(format string, args ...any) error
	// Criticalf logs a message at the critical level and returns it as an
	// error.
	Criticalf func(format string, args ...any) error
}

var backend atomic.Pointer[Backend]

func init() {
	SetBackend(defaultBackend())
}

// SetBackend replaces the backend used by the package-level functions. It
// can be called at any time, including concurrently with logging.
func SetBackend(b Backend) {
	backend.Store(&b)
}

// Trace logs a message at the trace level.
func Trace(format string, args ...any) {
	if fn := backend.Load().Trace; fn != nil {
		fn(format, args...)
	}
}

// Debug logs a message at the debug level.
func Debug(format string, args ...any) {
	if fn := backend.Load().Debug; fn != nil {
		fn(format, args...)
	}
}

// Info logs a message at the info level.
func Info(format string, args ...any) {
	if fn := backend.Load().Info; fn != nil {
		fn(format, args...)
	}
}

// Warn logs a message at the warning level.
func Warn(format string, args ...any) {
	if fn := backend.Load().Warn; fn != nil {
		fn(format, args...)
	}
}

// Errorf logs a message at the error level, and returns it as an error.
func Errorf(format string, args ...any) error {
	if fn := backend.Load().Errorf; fn != nil {
		return fn(format, args...)
	}
	return fmt.Errorf(format, args...)
}

// Criticalf logs a message at the critical level, and returns it as an
// error.
func Criticalf(format string, args ...any) error {
	if fn := backend.Load().Criticalf; fn != nil {
		return fn(format, args...)
	}
	return fmt.Errorf(format, args...)
}

// defaultBackend routes every level to a zerolog logger writing to standard
// error.
func defaultBackend() Backend {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	msgf := func(level zerolog.Level) func(string, ...any) {
		return func(format string, args ...any) {
			logger.WithLevel(level).Msgf(format, args...)
		}
	}
	errf := func(level zerolog.Level) func(string, ...any) error {
		return func(format string, args ...any) error {
			err := fmt.Errorf(format, args...)
			logger.WithLevel(level).Msg(err.Error())
			return err
		}
	}

	return Backend{
		Trace:     msgf(zerolog.TraceLevel),
		Debug:     msgf(zerolog.DebugLevel),
		Info:      msgf(zerolog.InfoLevel),
		Warn:      msgf(zerolog.WarnLevel),
		Errorf:    errf(zerolog.ErrorLevel),
		Criticalf: errf(zerolog.FatalLevel),
	}
}
