package log

import (
	"io"
	"os"
	"time"

	"github.com/ipfans/fxlogger"
	"github.com/j0lvera/arlo/internal/config"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// NewLogger creates a configured zerolog.Logger instance writing to w.
// format "json" writes plain JSON lines, anything else a console layout.
func NewLogger(w io.Writer, format string, debug bool) zerolog.Logger {
	if format != "json" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()
}

// FromConfig creates the process logger on stdout.
func FromConfig(cfg *config.Config) zerolog.Logger {
	return NewLogger(os.Stdout, cfg.LogFormat, cfg.Debug)
}

// Module provides the logger and routes fx's own events through it.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(FromConfig),
		fx.WithLogger(func(l zerolog.Logger) fxevent.Logger {
			return fxlogger.WithZerolog(l)()
		}),
	)
}
