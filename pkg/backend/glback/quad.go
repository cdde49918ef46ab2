package glback

import (
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/gregjohnson2017/viewport/pkg/log"
)

// BufferObject wraps an OpenGL buffer and remembers its size.
type BufferObject struct {
	id        uint32
	sizeBytes uint32
}

func NewBufferObject() *BufferObject {
	var bo BufferObject
	gl.GenBuffers(1, &bo.id)
	return &bo
}

func (bo *BufferObject) BufferData(target uint32, sizeBytes uint32, ptr unsafe.Pointer, usage uint32) {
	bo.sizeBytes = sizeBytes
	bo.Bind(target)
	gl.BufferData(target, int(sizeBytes), ptr, usage)
	bo.Unbind(target)
}

func (bo *BufferObject) GetSizeBytes() uint32 {
	return bo.sizeBytes
}

func (bo *BufferObject) Bind(target uint32) {
	gl.BindBuffer(target, bo.id)
}

func (bo *BufferObject) Unbind(target uint32) {
	gl.BindBuffer(target, 0)
}

func (bo *BufferObject) Destroy() {
	gl.DeleteBuffers(1, &bo.id)
	bo.id = 0
	bo.sizeBytes = 0
}

// VAO is a vertex array paired with its vertex buffer.
type VAO struct {
	vaoID      uint32
	vbo        *BufferObject
	mode       uint32
	vertSize   int32
	numAttribs uint32
}

// NewVAO creates the structure necessary for efficiently rendering
// shapes in OpenGL. It configures a VAO & VBO pair with a specified mode and
// vertex layout. Example mode: gl.TRIANGLES. Example vertex layout: (x,y,
// s,t) -> layout = (2, 2).
func NewVAO(mode uint32, layout []int32) *VAO {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)
	vbo := NewBufferObject()
	var vertSize int32
	for _, s := range layout {
		vertSize += s
	}

	vbo.Bind(gl.ARRAY_BUFFER)
	gl.BindVertexArray(vaoID)
	// vertex size in bytes, ex: (x,y,s,t) -> 4*4 = 16 bytes
	vertexStride := vertSize * 4
	var offset int32
	for i := 0; i < len(layout); i++ {
		gl.VertexAttribPointer(uint32(i), layout[i], gl.FLOAT, false, vertexStride, unsafe.Pointer(uintptr(offset*4)))
		offset += layout[i]
	}
	gl.BindVertexArray(0)
	vbo.Unbind(gl.ARRAY_BUFFER)

	return &VAO{
		vaoID:      vaoID,
		vbo:        vbo,
		mode:       mode,
		vertSize:   vertSize,
		numAttribs: uint32(len(layout)),
	}
}

// ErrEmptyData indiciates that the given data is empty.
const ErrEmptyData log.ConstErr = "data is empty so cannot be used"

// Load calls buffer data on the current vbo.
// example usage is gl.STATIC_DRAW.
func (vao *VAO) Load(data []float32, usage uint32) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	vao.vbo.BufferData(gl.ARRAY_BUFFER, uint32(4*len(data)), gl.Ptr(&data[0]), usage)
	return nil
}

// Draw renders the shapes from previously loaded data.
func (vao *VAO) Draw() {
	if vao.vbo.GetSizeBytes() == 0 {
		return
	}
	var i uint32
	gl.BindVertexArray(vao.vaoID)
	for i = 0; i < vao.numAttribs; i++ {
		gl.EnableVertexAttribArray(i)
	}
	gl.DrawArrays(vao.mode, 0, int32(vao.vbo.GetSizeBytes())/(4*vao.vertSize))
	for i = 0; i < vao.numAttribs; i++ {
		gl.DisableVertexAttribArray(i)
	}
	gl.BindVertexArray(0)
}

// Destroy frees the resources.
func (vao *VAO) Destroy() {
	gl.DeleteVertexArrays(1, &vao.vaoID)
	vao.vbo.Destroy()
	vao.vbo = nil
	vao.vaoID = 0
}
