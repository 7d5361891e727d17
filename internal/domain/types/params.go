package types

import "strconv"

// ARButtonsKind tags the model-button policy requested through the query.
type ARButtonsKind int

const (
	// SingleOnly shows the first model only. It is the default.
	SingleOnly ARButtonsKind = iota
	// Dynamic shows one button per model in the list.
	Dynamic
	// Fixed shows at most N buttons.
	Fixed
)

// ARButtonsMode is the parsed form of the arButtons query parameter.
//
// Limit is only meaningful for Fixed and is always > 0 there.
type ARButtonsMode struct {
	Kind  ARButtonsKind
	Limit int
}

// DynamicButtons returns the Dynamic mode.
func DynamicButtons() ARButtonsMode { return ARButtonsMode{Kind: Dynamic} }

// FixedButtons returns Fixed(n). Values below one collapse to one.
func FixedButtons(n int) ARButtonsMode {
	if n < 1 {
		n = 1
	}
	return ARButtonsMode{Kind: Fixed, Limit: n}
}

// SingleButton returns the SingleOnly mode.
func SingleButton() ARButtonsMode { return ARButtonsMode{Kind: SingleOnly} }

// Apply trims a model list according to the mode. The input is not modified.
func (m ARButtonsMode) Apply(models []ModelDescriptor) []ModelDescriptor {
	if len(models) == 0 {
		return nil
	}
	n := len(models)
	switch m.Kind {
	case Dynamic:
	case Fixed:
		if m.Limit < n {
			n = m.Limit
		}
	default:
		n = 1
	}
	out := make([]ModelDescriptor, n)
	copy(out, models[:n])
	return out
}

func (m ARButtonsMode) String() string {
	switch m.Kind {
	case Dynamic:
		return "dynamic"
	case Fixed:
		return "fixed(" + strconv.Itoa(m.Limit) + ")"
	default:
		return "single"
	}
}

// SessionParams is the typed view of the page query string. It is never
// mutated after parsing.
type SessionParams struct {
	Lang          string
	ByURL         string
	CommodityName string
	ScaleEnabled  bool
	ARButtons     ARButtonsMode
}

// HasByURL reports whether a purchase URL was supplied.
func (p SessionParams) HasByURL() bool { return p.ByURL != "" }

// HasCommodity reports whether a commodity identifier was supplied.
func (p SessionParams) HasCommodity() bool { return p.CommodityName != "" }
