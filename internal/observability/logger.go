package observability

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"github.com/couchcryptid/weather-synth/internal/config"
)

// NewLogger builds a structured logger writing to w. Commands pass stderr so
// stdout stays reserved for data.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if cfg.LogFormat == "text" {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      cfg.LogLevel,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
}
