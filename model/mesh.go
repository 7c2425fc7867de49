package model

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.5-core/gl"

	"GL_render_sandbox/tooling"
)

// PrimitiveFormat selects the topology a mesh is drawn with. Values are
// independent of the driver's numbering; translation happens at the draw
// call boundary only.
type PrimitiveFormat int

const (
	Triangles PrimitiveFormat = iota
	TriangleFan
	TriangleStrip
	Lines
	LineStrip
)

func (f PrimitiveFormat) glEnum() uint32 {
	switch f {
	case TriangleFan:
		return gl.TRIANGLE_FAN
	case TriangleStrip:
		return gl.TRIANGLE_STRIP
	case Lines:
		return gl.LINES
	case LineStrip:
		return gl.LINE_STRIP
	default:
		return gl.TRIANGLES
	}
}

// IndexOutOfRangeError reports a mesh index that addresses no vertex.
type IndexOutOfRangeError struct {
	Index    uint32
	Vertices int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for mesh with %d vertices", e.Index, e.Vertices)
}

// Mesh owns one vertex/index buffer pair and the vertex array object
// describing its layout. Vertex and index data are immutable once created;
// GPU handles are allocated on first upload and live for the rest of the
// process.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Format   PrimitiveFormat

	vao, vbo, ibo uint32
}

// NewMesh validates the index list against the vertex count and returns a
// mesh ready for upload.
func NewMesh(vertices []Vertex, indices []uint32, format PrimitiveFormat) (*Mesh, error) {
	for _, id := range indices {
		if int(id) >= len(vertices) {
			return nil, &IndexOutOfRangeError{Index: id, Vertices: len(vertices)}
		}
	}
	return &Mesh{Vertices: vertices, Indices: indices, Format: format}, nil
}

// Upload creates the vertex array and both buffers on the GPU and pushes
// vertex and index data as static, upload-once storage. Uploading a mesh
// that already lives on the GPU is a no-op, so shared meshes can be uploaded
// through any of their users.
func (m *Mesh) Upload() {
	if m.vao != 0 {
		return
	}
	gl.CreateVertexArrays(1, &m.vao)
	gl.CreateBuffers(1, &m.vbo)
	gl.CreateBuffers(1, &m.ibo)

	vdata := tooling.RawBytes(m.Vertices)
	idata := tooling.RawBytes(m.Indices)
	gl.NamedBufferData(m.vbo, len(vdata), gl.Ptr(vdata), gl.STATIC_DRAW)
	gl.NamedBufferData(m.ibo, len(idata), gl.Ptr(idata), gl.STATIC_DRAW)

	for _, a := range vertexLayout {
		gl.VertexArrayAttribBinding(m.vao, a.index, 0)
		gl.VertexArrayAttribFormat(m.vao, a.index, a.size, gl.FLOAT, false, a.offset)
		gl.EnableVertexArrayAttrib(m.vao, a.index)
	}
	gl.VertexArrayVertexBuffer(m.vao, 0, m.vbo, 0, VertexStride)
	gl.VertexArrayElementBuffer(m.vao, m.ibo)

	log.Printf("Uploaded mesh: %d vertices, %d indices (vao %d)", len(m.Vertices), len(m.Indices), m.vao)
}

// Bind makes the mesh's vertex array current.
func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vao)
}

// Draw issues one indexed draw call covering the whole index list, using
// the mesh's topology and 32-bit indices.
func (m *Mesh) Draw() {
	gl.DrawElements(m.Format.glEnum(), int32(len(m.Indices)), gl.UNSIGNED_INT, nil)
}
