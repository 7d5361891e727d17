package scene_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arviewer/internal/domain"
	"arviewer/internal/scene"
)

func TestFromMatrix_PositionAndOrientation(t *testing.T) {
	q := mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{0, 1, 0})
	pose := mgl64.Translate3D(0.5, -1.2, -2).Mul4(q.Mat4())

	tr := scene.FromMatrix(pose)

	assert.True(t, tr.Position.ApproxEqual(mgl64.Vec3{0.5, -1.2, -2}))
	assert.True(t, scene.ApproxEqual(tr, domain.Transform{
		Position:    mgl64.Vec3{0.5, -1.2, -2},
		Orientation: q,
		Scale:       mgl64.Vec3{1, 1, 1},
	}))
}

func TestFromMatrix_DropsScale(t *testing.T) {
	pose := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.Scale3D(4, 4, 4))
	tr := scene.FromMatrix(pose)
	assert.True(t, scene.ApproxEqual(tr, domain.Transform{
		Position:    mgl64.Vec3{1, 2, 3},
		Orientation: mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}))
}

func TestMatrix_RoundTrip(t *testing.T) {
	want := domain.Transform{
		Position:    mgl64.Vec3{0.2, 0, -1},
		Orientation: mgl64.QuatRotate(1.1, mgl64.Vec3{0, 1, 0}),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
	assert.True(t, scene.ApproxEqual(want, scene.FromMatrix(scene.Matrix(want))))
}

func TestMatrixFromSlice(t *testing.T) {
	ident := mgl64.Ident4()
	m, err := scene.MatrixFromSlice(ident[:])
	require.NoError(t, err)
	assert.Equal(t, ident, m)

	_, err = scene.MatrixFromSlice([]float64{1, 2, 3})
	require.Error(t, err)
}

func TestGestureHelpers(t *testing.T) {
	tr := domain.IdentityTransform()

	tr = scene.Translate(tr, 0.5, -0.25)
	assert.True(t, tr.Position.ApproxEqual(mgl64.Vec3{0.5, 0, -0.25}))

	tr = scene.RotateY(tr, math.Pi/2)
	assert.True(t, tr.Orientation.ApproxEqual(mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})))

	tr = scene.ScaleBy(tr, 10, 0.1, 3)
	assert.Equal(t, mgl64.Vec3{3, 3, 3}, tr.Scale)

	tr = scene.ScaleBy(tr, 0.001, 0.1, 3)
	assert.Equal(t, mgl64.Vec3{0.1, 0.1, 0.1}, tr.Scale)

	assert.Equal(t, tr, scene.ScaleBy(tr, -2, 0.1, 3), "non-positive factors are ignored")
}
