// Package log provides structured logging for gaussrank operations,
// built on zerolog.
//
// The package wires two things together:
//   - a process-wide zerolog logger with a configurable level
//   - the warning channel of pkg/errors, so scikit-learn-style warnings
//     (e.g. ConstantFeatureWarning) surface as structured WARN records
//
// Errors created by pkg/errors constructors carry cockroachdb stack
// traces; ErrStack attaches both the error and its trace to an event.
package log

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/gaussrank/pkg/errors"
)

var root zerolog.Logger

func init() {
	root = newRoot(zerolog.InfoLevel)
}

// Setup configures the package-wide logger at the given level
// ("debug", "info", "warn" or "error") and routes pkg/errors warnings
// through it. Call it once at program start; library code can log without
// any setup at the default info level.
func Setup(level string) {
	root = newRoot(toLevel(level))

	errors.SetZerologWarnFunc(func(warning error) {
		ev := root.Warn()
		var obj zerolog.LogObjectMarshaler
		if errors.As(warning, &obj) {
			ev = ev.EmbedObject(obj)
		}
		ev.Msg(warning.Error())
	})
}

func newRoot(level zerolog.Level) zerolog.Logger {
	return zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func toLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		panic(fmt.Sprintf("invalid log level: %s", level))
	}
}

// GetLogger returns the package-wide logger.
func GetLogger() zerolog.Logger {
	return root
}

// GetLoggerWithName returns a logger tagged with a component name,
// e.g. "preprocessing".
func GetLoggerWithName(name string) zerolog.Logger {
	return root.With().Str(ComponentKey, name).Logger()
}

// ErrStack attaches err and, when available, its cockroachdb stack trace
// and structured fields to a zerolog event. Use it instead of Err() for
// errors created by pkg/errors constructors.
func ErrStack(ev *zerolog.Event, err error) *zerolog.Event {
	ev = ev.Err(err)
	if details := errors.GetSafeDetails(err); len(details) > 0 {
		ev = ev.Str(StacktraceKey, details[0])
	}
	var obj zerolog.LogObjectMarshaler
	if errors.As(err, &obj) {
		ev = ev.EmbedObject(obj)
	}
	return ev
}
