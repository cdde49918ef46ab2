package screen_test

import (
	"image/color"

	"github.com/gregjohnson2017/viewport/pkg/backend"
)

type fakeTarget struct {
	w, h     int32
	released bool
}

func (t *fakeTarget) Width() int32  { return t.w }
func (t *fakeTarget) Height() int32 { return t.h }

type drawCall struct {
	src      backend.Rect
	dst      backend.Rect
	origin   backend.Point
	rotation float32
	tint     color.RGBA
}

type textCall struct {
	text string
	pos  backend.Point
	size float32
	// inPass records whether a target draw pass was active at call time
	inPass bool
}

// fakeBackend records every call made through the backend capability surface
// so tests can assert on allocation pairing, draw geometry, and protocol
// ordering without a real window.
type fakeBackend struct {
	opened    bool
	closed    bool
	title     string
	width     int32
	height    int32
	fps       int32
	spacing   int32
	verbosity backend.Verbosity
	quit      bool

	// toggledSize, when non-nil, is the window size the fake reports after
	// the next state toggle, imitating a native layer that clamps the window
	// on mode changes.
	toggledSize *[2]int32

	fullscreenToggles int
	borderlessToggles int

	creates   int
	releases  int
	createErr error
	targets   []*fakeTarget

	active      backend.Target
	beginFrames int
	endFrames   int
	clears      []color.RGBA
	draws       []drawCall
	texts       []textCall
}

var _ backend.Backend = (*fakeBackend)(nil)

func newFakeBackend() *fakeBackend {
	return &fakeBackend{}
}

func (f *fakeBackend) OpenWindow(width, height int32, title string) error {
	f.opened = true
	f.width = width
	f.height = height
	f.title = title
	return nil
}

func (f *fakeBackend) CloseWindow() {
	f.closed = true
	f.opened = false
}

func (f *fakeBackend) WindowReady() bool {
	return f.opened
}

func (f *fakeBackend) ShouldClose() bool {
	return f.quit
}

func (f *fakeBackend) ToggleFullscreen() {
	f.fullscreenToggles++
	f.applyToggledSize()
}

func (f *fakeBackend) ToggleBorderless() {
	f.borderlessToggles++
	f.applyToggledSize()
}

func (f *fakeBackend) applyToggledSize() {
	if f.toggledSize != nil {
		f.width = f.toggledSize[0]
		f.height = f.toggledSize[1]
	}
}

func (f *fakeBackend) WindowSize() (int32, int32) {
	return f.width, f.height
}

func (f *fakeBackend) SetWindowSize(width, height int32) {
	f.width = width
	f.height = height
}

func (f *fakeBackend) SetTargetFPS(fps int32) {
	f.fps = fps
}

func (f *fakeBackend) SetTextLineSpacing(px int32) {
	f.spacing = px
}

func (f *fakeBackend) SetLogVerbosity(level backend.Verbosity) {
	f.verbosity = level
}

func (f *fakeBackend) BeginFrame() {
	f.beginFrames++
}

func (f *fakeBackend) EndFrame() {
	f.endFrames++
}

func (f *fakeBackend) Clear(c color.RGBA) {
	f.clears = append(f.clears, c)
}

func (f *fakeBackend) CreateTarget(width, height int32) (backend.Target, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.creates++
	t := &fakeTarget{w: width, h: height}
	f.targets = append(f.targets, t)
	return t, nil
}

func (f *fakeBackend) ReleaseTarget(t backend.Target) {
	ft := t.(*fakeTarget)
	if ft.released {
		panic("fake target released twice")
	}
	ft.released = true
	f.releases++
}

func (f *fakeBackend) BeginTarget(t backend.Target) {
	if f.active != nil {
		panic("fake target pass already active")
	}
	f.active = t
}

func (f *fakeBackend) EndTarget() {
	if f.active == nil {
		panic("fake target pass not active")
	}
	f.active = nil
}

func (f *fakeBackend) DrawTarget(t backend.Target, src, dst backend.Rect, origin backend.Point, rotation float32, tint color.RGBA) {
	f.draws = append(f.draws, drawCall{src: src, dst: dst, origin: origin, rotation: rotation, tint: tint})
}

func (f *fakeBackend) DrawText(text string, pos backend.Point, size, spacing float32, c color.RGBA) {
	f.texts = append(f.texts, textCall{text: text, pos: pos, size: size, inPass: f.active != nil})
}

// liveTargets counts targets created but not yet released.
func (f *fakeBackend) liveTargets() int {
	n := 0
	for _, t := range f.targets {
		if !t.released {
			n++
		}
	}
	return n
}

// lastTarget returns the most recently created target.
func (f *fakeBackend) lastTarget() *fakeTarget {
	if len(f.targets) == 0 {
		return nil
	}
	return f.targets[len(f.targets)-1]
}

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
