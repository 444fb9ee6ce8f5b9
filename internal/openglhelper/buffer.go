// Package openglhelper wraps the GL objects the demos need: the window and
// its context, shader programs, vertex buffers, meshes, textures, driver
// debug output and the stats overlay.
package openglhelper

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/leterax/learngl/pkg/geometry"
)

// BufferObject is a GL buffer bound to a single target
type BufferObject struct {
	ID     uint32
	Target uint32 // ARRAY_BUFFER or ELEMENT_ARRAY_BUFFER
	Size   int    // allocated bytes
	Usage  uint32
}

// BufferUsage is the usage hint passed to glBufferData
type BufferUsage uint32

const (
	// StaticDraw is for data uploaded once, like the demo meshes
	StaticDraw BufferUsage = gl.STATIC_DRAW
	// StreamDraw is for data rewritten every frame, like the overlay
	StreamDraw BufferUsage = gl.STREAM_DRAW
)

// NewBufferObject allocates sizeInBytes for target and fills it from data,
// which may be nil. The buffer is left bound.
func NewBufferObject(target uint32, sizeInBytes int, data unsafe.Pointer, usage BufferUsage) *BufferObject {
	var id uint32
	gl.GenBuffers(1, &id)

	bo := &BufferObject{ID: id, Target: target, Size: sizeInBytes, Usage: uint32(usage)}
	bo.Bind()
	gl.BufferData(target, sizeInBytes, data, uint32(usage))
	return bo
}

// NewVBO uploads float32 vertex data into a new array buffer
func NewVBO(vertices []float32, usage BufferUsage) *BufferObject {
	var data unsafe.Pointer
	if len(vertices) > 0 {
		data = gl.Ptr(vertices)
	}
	return NewBufferObject(gl.ARRAY_BUFFER, len(vertices)*4, data, usage)
}

func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Target, bo.ID)
}

func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Target, 0)
}

// UpdateSubData writes size bytes at offset
func (bo *BufferObject) UpdateSubData(offset, size int, data unsafe.Pointer) {
	bo.Bind()
	gl.BufferSubData(bo.Target, offset, size, data)
}

// Orphan replaces the storage with sizeInBytes of undefined contents
func (bo *BufferObject) Orphan(sizeInBytes int) {
	bo.Bind()
	bo.Size = sizeInBytes
	gl.BufferData(bo.Target, sizeInBytes, nil, bo.Usage)
}

func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
}

// VertexArrayObject records attribute formats and the element buffer
type VertexArrayObject struct {
	ID uint32
}

func NewVAO() *VertexArrayObject {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return &VertexArrayObject{ID: id}
}

func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}

// SetVertexAttribPointer describes attribute index in the bound array buffer
// and enables it. offset and stride are in bytes.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}

// ApplyLayout sets up every float attribute of layout. Both the VAO and the
// source array buffer must be bound.
func (vao *VertexArrayObject) ApplyLayout(layout geometry.Layout) {
	for _, attr := range layout.Attributes {
		vao.SetVertexAttribPointer(attr.Index, attr.Components, gl.FLOAT, false, layout.Stride, attr.Offset)
	}
}
