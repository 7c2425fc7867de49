package model

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"GL_render_sandbox/shader"
)

// MaxTextureSlots is the number of texture bindings a material carries.
const MaxTextureSlots = 32

// Texture is a driver texture object plus its pixel dimensions. Materials
// reference textures without owning them.
type Texture struct {
	Handle uint32
	Width  int32
	Height int32
}

// Material ties a shader program to the per-object fragment inputs: a flat
// RGBA color and up to MaxTextureSlots texture slots. Nil slots are skipped
// when the material is applied. Materials are mutable between frames but
// not thread-shared.
type Material struct {
	Shader   *shader.Program
	Textures [MaxTextureSlots]*Texture
	Color    mgl32.Vec4
}

func NewMaterial(prog *shader.Program, color mgl32.Vec4) *Material {
	return &Material{Shader: prog, Color: color}
}

// SetTexture places a texture in the given slot; a nil texture clears it.
func (m *Material) SetTexture(slot int, t *Texture) error {
	if slot < 0 || slot >= MaxTextureSlots {
		return fmt.Errorf("texture slot %d out of range [0, %d)", slot, MaxTextureSlots)
	}
	m.Textures[slot] = t
	return nil
}
