package catalog

import (
	"context"
	"errors"
	"log/slog"

	"arviewer/internal/domain"
	"arviewer/internal/services/loader"
)

// IndexDocument is the commodity index, relative to the base URL.
const IndexDocument = "assetLinks.json"

// Catalog is the resolved model list plus its lazy loader.
type Catalog struct {
	*loader.Loader
	Commodity string
}

// Service resolves catalogs.
//
// A resolution is a strict sequence; each step needs the previous step's
// output:
//   - Require a commodity name.
//   - Fetch and decode the commodity index.
//   - Look up the commodity and its model-list URL.
//   - Fetch the model-list document and require at least one model.
//   - Apply the arButtons policy to the list.
//   - Request model 0 from the loader. A load failure leaves slot 0 Failed
//     and does not fail the resolution.
type Service struct {
	fetch  domain.DocumentFetcher
	decode domain.ModelDecoder
	logger *slog.Logger
}

// New constructs a catalog Service.
func New(fetch domain.DocumentFetcher, decode domain.ModelDecoder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fetch: fetch, decode: decode, logger: logger.With("component", "catalog")}
}

// Resolve runs the resolution for p. Configuration failures are
// *domain.ConfigError; a cancelled ctx is returned as is.
func (s *Service) Resolve(ctx context.Context, p domain.SessionParams) (*Catalog, error) {
	if !p.HasCommodity() {
		return nil, domain.NewConfigError(domain.ErrMissingCommodity, "", nil)
	}

	var index domain.CommodityIndex
	if err := s.fetch.GetJSON(ctx, IndexDocument, &index); err != nil {
		return nil, domain.NewConfigError(domain.ErrIndexUnavailable, IndexDocument, err)
	}

	entry, ok := index[p.CommodityName]
	if !ok || entry.ARButtonsURL == "" {
		return nil, domain.NewConfigError(domain.ErrCommodityNotFound, p.CommodityName, nil)
	}

	var list domain.ModelListDocument
	if err := s.fetch.GetJSON(ctx, entry.ARButtonsURL, &list); err != nil {
		return nil, domain.NewConfigError(domain.ErrModelListUnavailable, entry.ARButtonsURL, err)
	}
	if len(list.Models) == 0 {
		return nil, domain.NewConfigError(domain.ErrEmptyModelList, entry.ARButtonsURL, nil)
	}

	models := p.ARButtons.Apply(list.Models)
	s.logger.InfoContext(ctx, "catalog resolved",
		"commodity", p.CommodityName,
		"available", len(list.Models),
		"models", len(models),
		"arButtons", p.ARButtons.String(),
	)

	c := &Catalog{
		Loader:    loader.New(models, s.fetch, s.decode, s.logger),
		Commodity: p.CommodityName,
	}
	if _, err := c.LoadModelAtIndex(ctx, 0); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, err
		}
		s.logger.WarnContext(ctx, "first model unavailable, continuing", "error", err)
	}
	return c, nil
}
