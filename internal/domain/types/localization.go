package types

import (
	"encoding/json"
	"strconv"
)

// SheetConfig is the GoogleSheetsLocalization.json document.
type SheetConfig struct {
	SheetKey  string `json:"sheetKey"`
	SheetName string `json:"sheetName"`
	CodeGsURL string `json:"codeGsUrl"`
}

// TextOptions is applicationTextOptions.json: arbitrary keys whose values
// are strings, booleans or null.
type TextOptions map[string]any

// Value returns the query form of key and whether it should be sent at all.
// false and null are skipped.
func (o TextOptions) Value(key string) (string, bool) {
	v, ok := o[key]
	if !ok {
		return "", false
	}
	return scalarText(v)
}

// Truthy reports whether key holds a non-empty string, true, or a non-zero
// number.
func (o TextOptions) Truthy(key string) bool {
	switch t := o[key].(type) {
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case nil:
		return false
	default:
		return true
	}
}

// Bundle maps text keys to localized strings. Once resolved it is read-only.
type Bundle map[string]string

// Text returns the localized text for key, or def when missing or blank.
func (b Bundle) Text(key, def string) string {
	if s, ok := b[key]; ok && s != "" {
		return s
	}
	return def
}

// ButtonKey is the bundle key of the 1-based model button label.
func ButtonKey(i int) string { return "textArButtons" + strconv.Itoa(i) }

// UnmarshalJSON accepts the text-options shape and stringifies scalars.
func (b *Bundle) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Bundle, len(raw))
	for k, v := range raw {
		if s, ok := scalarText(v); ok {
			out[k] = s
		}
	}
	*b = out
	return nil
}

func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case bool:
		if !t {
			return "", false
		}
		return "true", true
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}
