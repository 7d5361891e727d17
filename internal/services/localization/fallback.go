package localization

import (
	"context"
	"strconv"

	"arviewer/internal/domain"
)

// Fallback is the bundle used when Resolve misses: the local text options
// with button labels numbered 1..modelCount. If even the local document is
// unavailable the bundle is empty and callers fall back to model labels.
func (s *Service) Fallback(ctx context.Context, modelCount int) domain.Bundle {
	var b domain.Bundle
	if err := s.fetch.GetJSON(ctx, TextOptionsDocument, &b); err != nil {
		s.logger.WarnContext(ctx, "local text options unavailable", "error", err)
		return domain.Bundle{}
	}
	if b == nil {
		b = domain.Bundle{}
	}
	for i := 1; i <= modelCount; i++ {
		b[domain.ButtonKey(i)] = strconv.Itoa(i)
	}
	return b
}

// ResolveOrFallback applies the caller policy in one call.
func (s *Service) ResolveOrFallback(ctx context.Context, modelCount int, lang string) (domain.Bundle, bool) {
	if b, ok := s.Resolve(ctx, modelCount, lang); ok {
		return b, true
	}
	return s.Fallback(ctx, modelCount), false
}
