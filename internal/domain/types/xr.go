package types

import "github.com/go-gl/mathgl/mgl64"

// ReferenceSpaceViewer is the reference space hit-tests are cast from.
const ReferenceSpaceViewer = "viewer"

// Transform is the position, orientation and scale of a placed model.
type Transform struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Scale       mgl64.Vec3
}

// IdentityTransform is the origin with no rotation and unit scale.
func IdentityTransform() Transform {
	return Transform{
		Orientation: mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

// HitTestResult is one candidate surface pose. Pose is column-major, the
// layout XRRigidTransform.matrix uses.
type HitTestResult struct {
	Pose mgl64.Mat4
}

// HitTestState tracks the one-shot hit-test source request of a session.
type HitTestState struct {
	SourceRequested bool
	SourceReady     bool
	ReticleVisible  bool
	ReticleReady    bool
	Reticle         mgl64.Mat4
}

// ARState is the coarse state of the AR session state machine.
type ARState int

const (
	Idle ARState = iota
	ReticleSearching
	ReticleLocked
	ModelPlaced
)

func (s ARState) String() string {
	switch s {
	case ReticleSearching:
		return "reticle-searching"
	case ReticleLocked:
		return "reticle-locked"
	case ModelPlaced:
		return "model-placed"
	default:
		return "idle"
	}
}
