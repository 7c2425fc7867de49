package model

import "github.com/go-gl/mathgl/mgl32"

// Transform is the sole authority on an object's model matrix: position,
// orientation and per-axis scale, freely mutable between frames.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// NewTransform returns the neutral transform: origin, identity rotation,
// unit scale.
func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// ModelMatrix composes translate * rotate * scale, so a vertex is scaled
// first, then rotated, then translated. A nil transform composes to the
// identity. Matrices are recomputed from current state on every call, there
// is no caching.
func ModelMatrix(t *Transform) mgl32.Mat4 {
	if t == nil {
		return mgl32.Ident4()
	}
	tr := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rot := t.Rotation.Mat4()
	sc := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return tr.Mul4(rot.Mul4(sc))
}
