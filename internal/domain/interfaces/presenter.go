package interfaces

import domaintypes "arviewer/internal/domain/types"

// Presenter is the presentation layer: screens, alerts and the consumer of
// state machine events. Implementations must not block.
type Presenter interface {
	ShowError(message string)
	HideLoading()
	Alert(message string)
	Notify(ev domaintypes.Event)
}
