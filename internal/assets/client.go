package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"arviewer/internal/domain"
)

// maxBodyBytes caps any single document or model asset.
const maxBodyBytes = 64 << 20

var tracer = otel.Tracer("arviewer/internal/assets")

// StatusError reports a non-2xx reply.
type StatusError struct {
	Method string
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("assets %s %s: %s", e.Method, e.URL, e.Status)
}

// ErrBodyTooLarge is returned when a reply exceeds maxBodyBytes.
var ErrBodyTooLarge = errors.New("response body too large")

type HTTP struct {
	Base   *url.URL
	HTTP   *http.Client
	Logger *slog.Logger
}

// NewHTTP builds a client resolving references against base. A nil client
// means http.DefaultClient.
func NewHTTP(base string, client *http.Client, logger *slog.Logger) (*HTTP, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", base, err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTP{Base: u, HTTP: client, Logger: logger.With("component", "assets")}, nil
}

// URL resolves ref against the base URL.
func (c *HTTP) URL(ref string) (string, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse reference %q: %w", ref, err)
	}
	if c.Base == nil {
		return r.String(), nil
	}
	return c.Base.ResolveReference(r).String(), nil
}

// GetJSON fetches ref and decodes the body into out.
func (c *HTTP) GetJSON(ctx context.Context, ref string, out any) error {
	b, err := c.GetBytes(ctx, ref)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", ref, err)
	}
	return nil
}

// GetBytes fetches ref and returns the raw body.
func (c *HTTP) GetBytes(ctx context.Context, ref string) ([]byte, error) {
	u, err := c.URL(ref)
	if err != nil {
		return nil, err
	}
	ctx, span := tracer.Start(ctx, "assets.get", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("http.url", u))

	b, err := c.get(ctx, u)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.response_size", len(b)))
	c.Logger.DebugContext(ctx, "fetched", "url", u, "bytes", len(b))
	return b, nil
}

func (c *HTTP) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, &StatusError{Method: http.MethodGet, URL: u, Status: resp.Status, Code: resp.StatusCode}
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(b) > maxBodyBytes {
		return nil, fmt.Errorf("get %s: %w", u, ErrBodyTooLarge)
	}
	return b, nil
}

var _ domain.DocumentFetcher = (*HTTP)(nil)
