package localization

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"arviewer/internal/domain"
)

// Local documents, relative to the base URL.
const (
	SheetDocument       = "GoogleSheetsLocalization.json"
	TextOptionsDocument = "applicationTextOptions.json"
)

// DefaultTimeout bounds the remote text request.
const DefaultTimeout = 20 * time.Second

// Service resolves localization bundles.
type Service struct {
	fetch   domain.DocumentFetcher
	logger  *slog.Logger
	timeout time.Duration
}

// New returns a Service. A non-positive timeout selects DefaultTimeout.
func New(fetch domain.DocumentFetcher, timeout time.Duration, logger *slog.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fetch: fetch, timeout: timeout, logger: logger.With("component", "localization")}
}

// Timeout is the configured race budget.
func (s *Service) Timeout() time.Duration { return s.timeout }

// Resolve returns the remote bundle for lang, or false on any miss.
func (s *Service) Resolve(ctx context.Context, modelCount int, lang string) (domain.Bundle, bool) {
	var (
		sheet   domain.SheetConfig
		options domain.TextOptions
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.fetch.GetJSON(gctx, SheetDocument, &sheet); err != nil {
			return fmt.Errorf("load %s: %w", SheetDocument, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.fetch.GetJSON(gctx, TextOptionsDocument, &options); err != nil {
			return fmt.Errorf("load %s: %w", TextOptionsDocument, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "localization documents unavailable", "error", err)
		return nil, false
	}

	endpoint, err := BuildQuery(sheet, options, modelCount, lang)
	if err != nil {
		s.logger.WarnContext(ctx, "localization endpoint invalid", "error", err)
		return nil, false
	}
	return s.race(ctx, endpoint)
}

type outcome struct {
	bundle domain.Bundle
	err    error
}

// race runs the request against the timer. The result channel is buffered
// so a fetch that loses the race completes without a reader.
func (s *Service) race(ctx context.Context, endpoint string) (domain.Bundle, bool) {
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	done := make(chan outcome, 1)
	go func() {
		var b domain.Bundle
		err := s.fetch.GetJSON(reqCtx, endpoint, &b)
		done <- outcome{bundle: b, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			s.logger.WarnContext(ctx, "localization request failed", "error", out.err)
			return nil, false
		}
		if out.bundle == nil {
			out.bundle = domain.Bundle{}
		}
		return out.bundle, true
	case <-timer.C:
		s.logger.WarnContext(ctx, "localization timeout reached", "timeout", s.timeout)
		return nil, false
	case <-ctx.Done():
		s.logger.WarnContext(ctx, "localization abandoned", "error", ctx.Err())
		return nil, false
	}
}

// BuildQuery renders the remote text request: sheet identity, language,
// every text option that is neither false nor null, and the button label
// keys textArButtons1..modelCount present in the options.
func BuildQuery(sheet domain.SheetConfig, options domain.TextOptions, modelCount int, lang string) (string, error) {
	if sheet.CodeGsURL == "" {
		return "", fmt.Errorf("%s: codeGsUrl missing", SheetDocument)
	}
	u, err := url.Parse(sheet.CodeGsURL)
	if err != nil {
		return "", fmt.Errorf("parse codeGsUrl: %w", err)
	}
	q := u.Query()
	q.Set("sheetKey", sheet.SheetKey)
	q.Set("sheetName", sheet.SheetName)
	q.Set("lang", lang)
	for key := range options {
		if v, ok := options.Value(key); ok {
			q.Set(key, v)
		}
	}
	for i := 1; i <= modelCount; i++ {
		key := domain.ButtonKey(i)
		if options.Truthy(key) {
			v, _ := options.Value(key)
			q.Set(key, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
