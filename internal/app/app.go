package app

import (
	"context"
	"errors"

	"arviewer/internal/domain"
	"arviewer/internal/params"
	"arviewer/internal/services/arsession"
	"arviewer/internal/services/catalog"
)

// Viewer is a configured page: the resolved catalog, its text bundle and
// the AR session machine driving it.
type Viewer struct {
	Params    domain.SessionParams
	Catalog   *catalog.Catalog
	Bundle    domain.Bundle
	Localized bool // false when the fallback bundle is in use
	Session   *arsession.Machine
}

// Bootstrap configures a viewer from a raw query string.
//
// Steps:
//   - Parse the query.
//   - Resolve the catalog. A configuration failure is shown through
//     presenter.ShowError and returned; nothing else is fetched.
//   - Resolve localization, falling back to the local text options.
//   - Hide the loading indicator and build the session machine.
func Bootstrap(ctx context.Context, w *Wire, rawQuery string, presenter domain.Presenter) (*Viewer, error) {
	p := params.Parse(rawQuery)

	cat, err := w.Catalog.Resolve(ctx, p)
	if err != nil {
		var cfgErr *domain.ConfigError
		if errors.As(err, &cfgErr) && presenter != nil {
			presenter.ShowError(cfgErr.UserMessage())
		}
		return nil, err
	}

	bundle, localized := w.Localization.ResolveOrFallback(ctx, cat.Len(), p.Lang)
	if presenter != nil {
		presenter.HideLoading()
	}

	return &Viewer{
		Params:    p,
		Catalog:   cat,
		Bundle:    bundle,
		Localized: localized,
		Session:   arsession.New(cat, p, bundle, presenter, w.Logger),
	}, nil
}
