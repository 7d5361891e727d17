package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"arviewer/internal/services/localization"
)

// Config holds runtime wiring options for building the viewer. BaseURL is
// the asset root every document reference resolves against.
type Config struct {
	BaseURL             string        `env:"ARVIEWER_BASE_URL" envDefault:"http://127.0.0.1:8080/"`
	HTTPTimeout         time.Duration `env:"ARVIEWER_HTTP_TIMEOUT" envDefault:"2m"`
	LocalizationTimeout time.Duration `env:"ARVIEWER_LOCALIZATION_TIMEOUT" envDefault:"20s"`
	LogLevel            string        `env:"ARVIEWER_LOG_LEVEL" envDefault:"info"`
	OTelEndpoint        string        `env:"ARVIEWER_OTEL_ENDPOINT"`
	OTelEnabled         bool          `env:"ARVIEWER_OTEL_ENABLED" envDefault:"true"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.LocalizationTimeout <= 0 {
		cfg.LocalizationTimeout = localization.DefaultTimeout
	}
	return cfg, nil
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
