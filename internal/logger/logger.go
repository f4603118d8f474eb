// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

type Config struct {
	// Debug enables JSON logs at debug level. When false every record is
	// discarded.
	Debug bool
	// Writer receives log records. Defaults to os.Stderr.
	Writer io.Writer
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs the global logger described by cfg and returns a cleanup
// func that restores the discarding logger.
func Setup(cfg Config) func() {
	l := discard()
	if cfg.Debug {
		w := cfg.Writer
		if w == nil {
			w = os.Stderr
		}
		l = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
					t := a.Value.Time().UTC()
					a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
				}
				return a
			},
		}))
	}

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = discard()
	}
}

// L returns the current global logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
