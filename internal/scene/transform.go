package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"arviewer/internal/domain"
)

// FromMatrix takes position and orientation from a pose matrix and resets
// scale to one.
func FromMatrix(m mgl64.Mat4) domain.Transform {
	rot := mgl64.Ident4()
	for c := 0; c < 3; c++ {
		col := m.Col(c).Vec3()
		if l := col.Len(); l > 0 {
			col = col.Mul(1 / l)
		}
		rot.SetCol(c, col.Vec4(0))
	}
	return domain.Transform{
		Position:    m.Col(3).Vec3(),
		Orientation: mgl64.Mat4ToQuat(rot).Normalize(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

// Matrix composes translation, rotation and scale.
func Matrix(t domain.Transform) mgl64.Mat4 {
	return mgl64.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(t.Orientation.Mat4()).
		Mul4(mgl64.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// MatrixFromSlice reads 16 column-major values.
func MatrixFromSlice(v []float64) (mgl64.Mat4, error) {
	var m mgl64.Mat4
	if len(v) != len(m) {
		return m, fmt.Errorf("pose matrix needs %d values, got %d", len(m), len(v))
	}
	copy(m[:], v)
	return m, nil
}

// Translate moves t on the floor plane.
func Translate(t domain.Transform, dx, dz float64) domain.Transform {
	t.Position = t.Position.Add(mgl64.Vec3{dx, 0, dz})
	return t
}

// RotateY spins t about the vertical axis.
func RotateY(t domain.Transform, radians float64) domain.Transform {
	t.Orientation = mgl64.QuatRotate(radians, mgl64.Vec3{0, 1, 0}).Mul(t.Orientation).Normalize()
	return t
}

// ScaleBy multiplies the uniform scale of t, keeping it within bounds.
func ScaleBy(t domain.Transform, factor, lo, hi float64) domain.Transform {
	if factor <= 0 {
		return t
	}
	s := t.Scale[0] * factor
	if s < lo {
		s = lo
	}
	if s > hi {
		s = hi
	}
	t.Scale = mgl64.Vec3{s, s, s}
	return t
}

// ApproxEqual compares two transforms within mgl64's default epsilon.
// q and -q describe the same rotation.
func ApproxEqual(a, b domain.Transform) bool {
	if !a.Position.ApproxEqual(b.Position) || !a.Scale.ApproxEqual(b.Scale) {
		return false
	}
	qa, qb := a.Orientation.Normalize(), b.Orientation.Normalize()
	return qa.ApproxEqual(qb) || qa.ApproxEqual(qb.Scale(-1))
}
