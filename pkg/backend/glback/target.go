package glback

import (
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/gregjohnson2017/viewport/pkg/log"
)

// Texture wraps an OpenGL 2D texture.
type Texture struct {
	id     uint32
	width  int32
	height int32
}

// NewTexture allocates a texture of the given size. A nil data slice leaves
// the contents unspecified.
func NewTexture(width, height int32, data []byte, format int, alignment int32) Texture {
	t := Texture{width: width, height: height}

	gl.GenTextures(1, &t.id)
	t.Bind()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, alignment)
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), width, height, 0, uint32(format), gl.UNSIGNED_BYTE, ptr)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	t.Unbind()

	return t
}

// Bind tells OpenGL to set this texture as the current texture
func (t Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Unbind sets the bound texture id to 0
func (t Texture) Unbind() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (t Texture) Delete() {
	gl.DeleteTextures(1, &t.id)
}

// ErrFrameBuffer indicates an allocated framebuffer was incomplete.
const ErrFrameBuffer log.ConstErr = "incomplete framebuffer"

// target is a framebuffer with a color texture attachment, used as an
// offscreen render destination.
type target struct {
	id  uint32
	tex Texture
}

func newTarget(width, height int32) (*target, error) {
	t := &target{}
	gl.GenFramebuffers(1, &t.id)
	t.bind()
	bufs := uint32(gl.COLOR_ATTACHMENT0)
	gl.DrawBuffers(1, &bufs)

	t.tex = NewTexture(width, height, nil, gl.RGBA, 4)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.tex.id, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	t.unbind()
	if status != gl.FRAMEBUFFER_COMPLETE {
		t.tex.Delete()
		gl.DeleteFramebuffers(1, &t.id)
		return nil, ErrFrameBuffer
	}
	return t, nil
}

func (t *target) Width() int32  { return t.tex.width }
func (t *target) Height() int32 { return t.tex.height }

func (t *target) bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.id)
}

func (t *target) unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (t *target) delete() {
	t.tex.Delete()
	gl.DeleteFramebuffers(1, &t.id)
	t.id = 0
}
