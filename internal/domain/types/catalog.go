package types

// CommodityEntry is one value of the commodity index document.
type CommodityEntry struct {
	ARButtonsURL string `json:"arButtonsUrl"`
}

// CommodityIndex maps a commodity identifier to its entry.
type CommodityIndex map[string]CommodityEntry

// ModelDescriptor names one model variant and where its asset lives.
type ModelDescriptor struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ModelListDocument is the document referenced by CommodityEntry.ARButtonsURL.
type ModelListDocument struct {
	Models []ModelDescriptor `json:"models"`
}

// SlotState is the load state of one model index.
type SlotState int

const (
	Unloaded SlotState = iota
	Loaded
	Failed
)

func (s SlotState) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unloaded"
	}
}
