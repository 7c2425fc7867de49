package model

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

// NewCubeMesh builds the unit cuboid test fixture: 8 corner vertices and a
// 36-index triangle list forming 12 triangles with counter-clockwise
// outward winding. The cuboid spans (0,0,-1) to (1,1,0).
func NewCubeMesh() *Mesh {
	corner := func(x, y, z float32) Vertex {
		return Vertex{
			Pos:    mgl32.Vec4{x, y, z, 1},
			Color:  mgl32.Vec4{0, 0, 0, 1},
			Normal: mgl32.Vec4{0, 0, 0, 1},
		}
	}

	v := []Vertex{
		corner(0, 0, 0), // [0]
		corner(1, 0, 0), // [1]
		corner(1, 1, 0), // [2]
		corner(0, 1, 0), // [3]

		corner(0, 0, -1), // [4]
		corner(1, 0, -1), // [5]
		corner(1, 1, -1), // [6]
		corner(0, 1, -1), // [7]
	}

	id := []uint32{
		0, 2, 3, 0, 1, 2, // front
		4, 7, 6, 4, 6, 5, // back
		1, 5, 6, 1, 6, 2, // right
		4, 3, 7, 4, 0, 3, // left
		4, 1, 0, 4, 5, 1, // bottom
		3, 6, 7, 3, 2, 6, // top
	}

	mesh, err := NewMesh(v, id, Triangles)
	if err != nil {
		log.Panicf("Failed to build cube fixture: %v", err)
	}
	return mesh
}
