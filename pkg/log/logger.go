// Package log provides structured logging helpers for BayesKit.
//
// The package builds on Go's log/slog with a handler that understands
// cockroachdb/errors stack traces, and optionally routes library warnings
// through zerolog for structured output.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rs/zerolog"

	bkerrors "github.com/YuminosukeSato/bayeskit/pkg/errors"
)

// SetupLogger function setup logger.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// ToLogLevel converts a level name to a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// EnableZerologWarnings routes library warnings raised through
// pkg/errors.Warn to a zerolog logger writing to w. Warning types that
// implement zerolog.LogObjectMarshaler are emitted as structured objects.
func EnableZerologWarnings(w io.Writer) {
	logger := zerolog.New(w).With().Timestamp().Logger()
	bkerrors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.Object("warning", obj)
		} else {
			event.AnErr("warning", warning)
		}
		event.Msg("bayeskit warning")
	})
}
