package app

import (
	"log/slog"
	"net/http"
	"os"

	"arviewer/internal/assets"
	"arviewer/internal/scene"
	"arviewer/internal/services/catalog"
	"arviewer/internal/services/localization"
)

// Wire bundles the clients and services a viewer needs.
type Wire struct {
	Assets       *assets.HTTP
	Catalog      *catalog.Service
	Localization *localization.Service
	Logger       *slog.Logger
	HTTP         *http.Client
}

// NewWire constructs the dependency graph from cfg. client and logger are
// optional; nil builds them from HTTPTimeout and LogLevel.
func NewWire(cfg Config, client *http.Client, logger *slog.Logger) (*Wire, error) {
	if logger == nil {
		level, err := ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := client
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	fetch, err := assets.NewHTTP(cfg.BaseURL, httpClient, logger)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Assets:       fetch,
		Catalog:      catalog.New(fetch, scene.Decoder{}, logger),
		Localization: localization.New(fetch, cfg.LocalizationTimeout, logger),
		Logger:       logger,
		HTTP:         httpClient,
	}, nil
}
