package types

// EventKind names a semantic event emitted by the AR state machine.
type EventKind string

const (
	EventReticleLocked EventKind = "reticleLocked"
	EventReticleLost   EventKind = "reticleLost"
	EventReticleReady  EventKind = "reticleReady"
	EventModelPlaced   EventKind = "modelPlaced"
	EventModelRemoved  EventKind = "modelRemoved"
	EventModelSwitched EventKind = "modelSwitched"
	EventLoadFailed    EventKind = "loadFailed"
	EventSessionEnded  EventKind = "sessionEnded"
)

// Event is delivered to the presentation layer. Index is the model index
// for placement, switch and load events and -1 otherwise.
type Event struct {
	Kind      EventKind `json:"kind"`
	SessionID string    `json:"session"`
	Index     int       `json:"index"`
	Label     string    `json:"label,omitempty"`
	Transform Transform `json:"transform"`
	Buttons   []string  `json:"buttons,omitempty"`
	Purchase  string    `json:"purchase,omitempty"`
}
