package model

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec4InDelta(t *testing.T, want, got mgl32.Vec4, delta float64) {
	t.Helper()
	for i := 0; i < 4; i++ {
		assert.InDelta(t, want[i], got[i], delta, "component %d", i)
	}
}

func TestNewTransformIsNeutral(t *testing.T) {
	tr := NewTransform()
	assert.Equal(t, mgl32.Vec3{}, tr.Position)
	assert.Equal(t, mgl32.QuatIdent(), tr.Rotation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, tr.Scale)
	assert.Equal(t, mgl32.Ident4(), ModelMatrix(&tr))
}

func TestModelMatrixNil(t *testing.T) {
	assert.Equal(t, mgl32.Ident4(), ModelMatrix(nil))
}

// The model matrix must apply scale first, then rotation, then translation.
func TestModelMatrixComposition(t *testing.T) {
	tr := Transform{
		Position: mgl32.Vec3{1, -2, 0.5},
		Rotation: mgl32.QuatRotate(mgl32.DegToRad(40), mgl32.Vec3{1, 2, 0}.Normalize()),
		Scale:    mgl32.Vec3{2, 0.5, 3},
	}
	m := ModelMatrix(&tr)

	translate := mgl32.Translate3D(1, -2, 0.5)
	rotate := tr.Rotation.Mat4()
	scale := mgl32.Scale3D(2, 0.5, 3)

	for _, v := range []mgl32.Vec4{
		{0, 0, 0, 1},
		{1, 2, 3, 1},
		{-4, 0.25, 7, 1},
		{0, 0, -1, 0},
	} {
		want := translate.Mul4x1(rotate.Mul4x1(scale.Mul4x1(v)))
		assertVec4InDelta(t, want, m.Mul4x1(v), 1e-5)
	}
}

func TestModelMatrixTranslationOnly(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{3, 0, -2}
	got := ModelMatrix(&tr).Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assertVec4InDelta(t, mgl32.Vec4{4, 1, -1, 1}, got, 1e-6)
}
