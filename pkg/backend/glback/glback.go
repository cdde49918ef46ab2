// Package glback implements the backend capability surface on an SDL2
// window with an OpenGL context. Offscreen targets are framebuffer objects,
// target blits go through a textured quad, and text is drawn from a glyph
// atlas built out of the bundled Go Regular font.
package glback

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/gregjohnson2017/viewport/pkg/backend"
	"github.com/gregjohnson2017/viewport/pkg/log"
)

// Backend drives an SDL2 window with an OpenGL 3.3 context. All methods must
// run on the thread that called OpenWindow; wrap main with
// runtime.LockOSThread.
type Backend struct {
	win     *sdl.Window
	glCtx   sdl.GLContext
	ticker  *time.Ticker
	quit    bool
	spacing int32

	// size of the surface currently being drawn into, uploaded as the
	// shader area uniform
	areaW, areaH int32

	blitProg  Program
	glyphProg Program
	blitQuad  *VAO
	glyphQuad *VAO
	atlases   map[int32]*glyphAtlas
}

var _ backend.Backend = (*Backend)(nil)

// New returns an SDL2+OpenGL-backed Backend.
func New() *Backend {
	return &Backend{
		spacing: 16,
		atlases: make(map[int32]*glyphAtlas),
	}
}

func (b *Backend) OpenWindow(width, height int32, title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height, sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	glCtx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		return fmt.Errorf("open window: %w", err)
	}
	if err = gl.Init(); err != nil {
		sdl.GLDeleteContext(glCtx)
		win.Destroy()
		return fmt.Errorf("open window: %w", err)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if err = b.loadPrograms(); err != nil {
		sdl.GLDeleteContext(glCtx)
		win.Destroy()
		return err
	}
	b.blitQuad = NewVAO(gl.TRIANGLES, []int32{2, 2})
	b.glyphQuad = NewVAO(gl.TRIANGLES, []int32{2, 2})

	b.win = win
	b.glCtx = glCtx
	b.areaW, b.areaH = width, height
	gl.Viewport(0, 0, width, height)
	log.Debugf("created %v OpenGL context", gl.GoStr(gl.GetString(gl.VERSION)))
	return nil
}

func (b *Backend) loadPrograms() error {
	vsh, err := NewShader(BlitVertex, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	fsh, err := NewShader(BlitFragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return err
	}
	if b.blitProg, err = NewProgram(vsh, fsh); err != nil {
		return err
	}
	vsh.Delete()
	fsh.Delete()

	gvsh, err := NewShader(GlyphVertex, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	gfsh, err := NewShader(GlyphFragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return err
	}
	if b.glyphProg, err = NewProgram(gvsh, gfsh); err != nil {
		return err
	}
	gvsh.Delete()
	gfsh.Delete()
	return nil
}

func (b *Backend) CloseWindow() {
	if b.win == nil {
		return
	}
	if b.ticker != nil {
		b.ticker.Stop()
		b.ticker = nil
	}
	for _, a := range b.atlases {
		a.delete()
	}
	b.atlases = make(map[int32]*glyphAtlas)
	b.blitQuad.Destroy()
	b.glyphQuad.Destroy()
	b.blitProg.Delete()
	b.glyphProg.Delete()
	sdl.GLDeleteContext(b.glCtx)
	b.win.Destroy()
	b.win = nil
	sdl.Quit()
}

func (b *Backend) WindowReady() bool {
	return b.win != nil
}

func (b *Backend) ShouldClose() bool {
	return b.quit
}

func (b *Backend) ToggleFullscreen() {
	if b.win.GetFlags()&sdl.WINDOW_FULLSCREEN != 0 {
		b.win.SetFullscreen(0)
	} else {
		b.win.SetFullscreen(sdl.WINDOW_FULLSCREEN)
	}
}

func (b *Backend) ToggleBorderless() {
	if b.win.GetFlags()&sdl.WINDOW_FULLSCREEN_DESKTOP == sdl.WINDOW_FULLSCREEN_DESKTOP {
		b.win.SetFullscreen(0)
	} else {
		b.win.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}
}

func (b *Backend) WindowSize() (int32, int32) {
	return b.win.GetSize()
}

func (b *Backend) SetWindowSize(width, height int32) {
	b.win.SetSize(width, height)
}

// SetTargetFPS caps the frame rate by pacing EndFrame. A value of zero or
// less removes the cap, matching raylib's meaning for SetTargetFPS(0).
func (b *Backend) SetTargetFPS(fps int32) {
	if fps <= 0 {
		if b.ticker != nil {
			b.ticker.Stop()
			b.ticker = nil
		}
		return
	}
	frametime := time.Second / time.Duration(fps)
	if b.ticker == nil {
		b.ticker = time.NewTicker(frametime)
	} else {
		b.ticker.Reset(frametime)
	}
}

func (b *Backend) SetTextLineSpacing(px int32) {
	b.spacing = px
}

// SetLogVerbosity routes this package's log output: debug and below enables
// everything, info and warning progressively less, anything above warning
// silences it.
func (b *Backend) SetLogVerbosity(level backend.Verbosity) {
	log.SetDebugOutput(io.Discard)
	log.SetInfoOutput(io.Discard)
	log.SetWarnOutput(io.Discard)
	if level <= backend.VerbosityDebug {
		log.SetDebugOutput(os.Stderr)
	}
	if level <= backend.VerbosityInfo {
		log.SetInfoOutput(os.Stderr)
	}
	if level <= backend.VerbosityWarning {
		log.SetWarnOutput(os.Stderr)
	}
}

func (b *Backend) BeginFrame() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	w, h := b.win.GetSize()
	b.areaW, b.areaH = w, h
	gl.Viewport(0, 0, w, h)
}

func (b *Backend) EndFrame() {
	b.win.GLSwap()
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		if _, ok := e.(*sdl.QuitEvent); ok {
			b.quit = true
		}
	}
	if b.ticker != nil {
		<-b.ticker.C
	}
}

func (b *Backend) Clear(c color.RGBA) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (b *Backend) CreateTarget(width, height int32) (backend.Target, error) {
	return newTarget(width, height)
}

func (b *Backend) ReleaseTarget(t backend.Target) {
	t.(*target).delete()
}

func (b *Backend) BeginTarget(t backend.Target) {
	ft := t.(*target)
	ft.bind()
	b.areaW, b.areaH = ft.Width(), ft.Height()
	gl.Viewport(0, 0, b.areaW, b.areaH)
}

func (b *Backend) EndTarget() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	w, h := b.win.GetSize()
	b.areaW, b.areaH = w, h
	gl.Viewport(0, 0, w, h)
}

func (b *Backend) DrawTarget(t backend.Target, src, dst backend.Rect, origin backend.Point, rotation float32, tint color.RGBA) {
	ft := t.(*target)
	tw := float32(ft.Width())
	th := float32(ft.Height())

	// negative source dimensions mirror the sampled region along that axis
	srcW, srcH := src.W, src.H
	flipX, flipY := false, false
	if srcW < 0 {
		srcW, flipX = -srcW, true
	}
	if srcH < 0 {
		srcH, flipY = -srcH, true
	}
	s0 := src.X / tw
	s1 := (src.X + srcW) / tw
	t0 := src.Y / th
	t1 := (src.Y + srcH) / th
	if flipX {
		s0, s1 = s1, s0
	}
	if flipY {
		t0, t1 = t1, t0
	}

	// dst places the rotation origin; raylib-style placement
	corners := rotatedCorners(dst, origin, rotation)
	verts := []float32{
		corners[3][0], corners[3][1], s0, t1, // bottom-left
		corners[0][0], corners[0][1], s0, t0, // top-left
		corners[1][0], corners[1][1], s1, t0, // top-right

		corners[3][0], corners[3][1], s0, t1, // bottom-left
		corners[1][0], corners[1][1], s1, t0, // top-right
		corners[2][0], corners[2][1], s1, t1, // bottom-right
	}

	b.blitProg.UploadUniform("area", float32(b.areaW), float32(b.areaH))
	b.blitProg.UploadUniform("tint",
		float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255, float32(tint.A)/255)
	if err := b.blitQuad.Load(verts, gl.STREAM_DRAW); err != nil {
		log.Warnf("blit quad load: %v", err)
		return
	}
	b.blitProg.Bind()
	ft.tex.Bind()
	b.blitQuad.Draw()
	ft.tex.Unbind()
	b.blitProg.Unbind()
}

func (b *Backend) DrawText(text string, pos backend.Point, size, spacing float32, c color.RGBA) {
	if text == "" {
		return
	}
	atlas, err := b.atlas(int32(size))
	if err != nil {
		log.Warnf("draw text: %v", err)
		return
	}
	verts := atlas.mapString(text, pos.X, pos.Y, spacing, float32(b.spacing))
	if len(verts) == 0 {
		return
	}

	b.glyphProg.UploadUniform("area", float32(b.areaW), float32(b.areaH))
	b.glyphProg.UploadUniform("tex_size", float32(atlas.tex.width), float32(atlas.tex.height))
	b.glyphProg.UploadUniform("text_color",
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	if err := b.glyphQuad.Load(verts, gl.STREAM_DRAW); err != nil {
		log.Warnf("glyph quad load: %v", err)
		return
	}
	b.glyphProg.Bind()
	atlas.tex.Bind()
	b.glyphQuad.Draw()
	atlas.tex.Unbind()
	b.glyphProg.Unbind()
}

// rotatedCorners returns the four corners of dst, in order top-left,
// top-right, bottom-right, bottom-left, rotated by rotation degrees around
// the point that origin marks within the rectangle. (dst.X, dst.Y) is where
// that point lands.
func rotatedCorners(dst backend.Rect, origin backend.Point, rotation float32) [4][2]float32 {
	rel := [4][2]float32{
		{-origin.X, -origin.Y},
		{dst.W - origin.X, -origin.Y},
		{dst.W - origin.X, dst.H - origin.Y},
		{-origin.X, dst.H - origin.Y},
	}
	if rotation == 0 {
		for i := range rel {
			rel[i][0] += dst.X
			rel[i][1] += dst.Y
		}
		return rel
	}
	rad := float64(rotation) * math.Pi / 180
	sin, cos := float32(math.Sin(rad)), float32(math.Cos(rad))
	for i := range rel {
		x, y := rel[i][0], rel[i][1]
		rel[i][0] = dst.X + x*cos - y*sin
		rel[i][1] = dst.Y + x*sin + y*cos
	}
	return rel
}

func (b *Backend) atlas(size int32) (*glyphAtlas, error) {
	if a, ok := b.atlases[size]; ok {
		return a, nil
	}
	a, err := newGlyphAtlas(size)
	if err != nil {
		return nil, err
	}
	b.atlases[size] = a
	return a, nil
}
