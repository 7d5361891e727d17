package interfaces

import (
	"context"

	domaintypes "arviewer/internal/domain/types"
)

// ReferenceSpace is a tracking space granted by the AR session.
type ReferenceSpace interface {
	Kind() string
}

// HitTestSource is a live hit-test subscription. Cancel releases it.
type HitTestSource interface {
	Cancel()
}

// XRSession is the device AR session as seen by the state machine.
type XRSession interface {
	RequestReferenceSpace(ctx context.Context, kind string) (ReferenceSpace, error)
	RequestHitTestSource(ctx context.Context, space ReferenceSpace) (HitTestSource, error)
}

// XRFrame is one display-synchronized frame.
type XRFrame interface {
	HitTestResults(src HitTestSource) []domaintypes.HitTestResult
}
