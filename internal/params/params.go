package params

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"arviewer/internal/domain"
)

// Query parameter names.
const (
	KeyLang          = "lang"
	KeyByURL         = "byUrl"
	KeyCommodityName = "commodityName"
	KeyScale         = "scale"
	KeyARButtons     = "arButtons"
)

// DefaultLang is used when lang is absent or blank.
const DefaultLang = "ua"

var lower = cases.Lower(language.Und)

// Parse reads a raw query string (with or without the leading '?').
// A malformed query is read as far as possible.
func Parse(rawQuery string) domain.SessionParams {
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	return FromValues(values)
}

// FromValues builds SessionParams from already decoded query values.
func FromValues(v url.Values) domain.SessionParams {
	p := domain.SessionParams{
		Lang:          DefaultLang,
		ByURL:         strings.TrimSpace(v.Get(KeyByURL)),
		CommodityName: strings.TrimSpace(v.Get(KeyCommodityName)),
		ScaleEnabled:  ParseScale(v.Get(KeyScale)),
		ARButtons:     ParseARButtons(v.Get(KeyARButtons)),
	}
	if lang := normalize(v.Get(KeyLang)); lang != "" {
		p.Lang = lang
	}
	return p
}

// ParseScale is true only for "t" and "true", case-insensitively.
func ParseScale(raw string) bool {
	switch normalize(raw) {
	case "t", "true":
		return true
	}
	return false
}

// ParseARButtons maps the arButtons value onto its tagged variant:
// m, model, im and image select Dynamic, a number above zero selects
// Fixed (Infinity and overflowing values keep every model), and anything
// else selects SingleOnly.
func ParseARButtons(raw string) domain.ARButtonsMode {
	v := normalize(raw)
	switch v {
	case "":
		return domain.SingleButton()
	case "m", "model", "im", "image":
		return domain.DynamicButtons()
	}
	n, err := parseNumber(v)
	if err != nil || math.IsNaN(n) || n <= 0 {
		return domain.SingleButton()
	}
	// A fractional bound truncates, keeping at least the first entry.
	// Infinity keeps the whole list.
	limit := math.Floor(n)
	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	return domain.FixedButtons(int(limit))
}

// parseNumber reads v the way a browser's Number() does: decimal and
// exponent notation, Infinity, and 0x/0o/0b integers. Values too large
// for a float64 become +Inf. Go-only spellings such as "inf" are rejected.
func parseNumber(v string) (float64, error) {
	switch v {
	case "infinity", "+infinity":
		return math.Inf(1), nil
	case "-infinity":
		return math.Inf(-1), nil
	case "inf", "+inf", "-inf", "nan":
		return 0, strconv.ErrSyntax
	}
	if len(v) > 2 && v[0] == '0' && strings.IndexByte("xob", v[1]) >= 0 {
		u, err := strconv.ParseUint(v, 0, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, err
		}
		return float64(u), nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return n, nil
}

func normalize(s string) string {
	return lower.String(strings.TrimSpace(s))
}
