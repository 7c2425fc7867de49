package model

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the fixed per-vertex record every mesh uploads. Field order is
// significant: the vertex array layout below is described in terms of the
// binary offsets of these fields.
type Vertex struct {
	Pos      mgl32.Vec4
	Color    mgl32.Vec4
	TexCoord mgl32.Vec2
	Normal   mgl32.Vec4
}

// VertexStride is the byte distance between consecutive vertices in the
// vertex buffer.
const VertexStride = int32(unsafe.Sizeof(Vertex{}))

type vertexAttrib struct {
	index  uint32
	size   int32
	offset uint32
}

// vertexLayout lists the four attributes every mesh binds: position, color,
// texture coordinates, normal. All attributes are floats out of binding 0.
var vertexLayout = [4]vertexAttrib{
	{index: 0, size: 4, offset: uint32(unsafe.Offsetof(Vertex{}.Pos))},
	{index: 1, size: 4, offset: uint32(unsafe.Offsetof(Vertex{}.Color))},
	{index: 2, size: 2, offset: uint32(unsafe.Offsetof(Vertex{}.TexCoord))},
	{index: 3, size: 4, offset: uint32(unsafe.Offsetof(Vertex{}.Normal))},
}
