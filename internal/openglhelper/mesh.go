package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/leterax/learngl/pkg/geometry"
)

// Mesh represents non-indexed triangle geometry in a single interleaved buffer
type Mesh struct {
	vao         *VertexArrayObject
	vbo         *BufferObject
	vertexCount int32
}

// NewMesh uploads vertices and records their attribute layout
func NewMesh(vertices []float32, layout geometry.Layout) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	vao.ApplyLayout(layout)

	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:         vao,
		vbo:         vbo,
		vertexCount: int32(layout.VertexCount(vertices)),
	}
}

// Draw renders the mesh with the currently bound program
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
}
