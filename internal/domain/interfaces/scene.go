package interfaces

import (
	"context"

	domaintypes "arviewer/internal/domain/types"
)

// SceneGraph is an opaque, clonable handle to a decoded model.
type SceneGraph interface {
	Name() string
	Clone() SceneGraph
}

// ModelDecoder turns a fetched asset into a SceneGraph.
type ModelDecoder interface {
	Decode(source string, data []byte) (SceneGraph, error)
}

// ModelSource is the indexed lazy-loading capability handed to the AR
// session. It is the only writer of the loaded-model slots.
type ModelSource interface {
	Models() []domaintypes.ModelDescriptor
	LoadModelAtIndex(ctx context.Context, i int) (SceneGraph, error)
}
