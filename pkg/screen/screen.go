// Package screen maintains the application window and a decoupled logical
// render resolution. Drawing happens into an offscreen surface sized by a
// scale factor; at the end of each frame the surface is blitted to the
// physical window with a vertical flip and presented. The package is
// single-threaded by contract: every method must run on the thread that owns
// the window.
package screen

import (
	"fmt"
	"image/color"

	"github.com/gregjohnson2017/viewport/pkg/backend"
	"github.com/gregjohnson2017/viewport/pkg/config"
	"github.com/gregjohnson2017/viewport/pkg/log"
	"github.com/gregjohnson2017/viewport/pkg/perf"
)

// Resolution is a window or render size in pixels. Both components are
// always non-negative.
type Resolution struct {
	Width  int32
	Height int32
}

// WindowState identifies which of the mutually exclusive window modes is
// active.
type WindowState int

const (
	Windowed WindowState = iota
	Fullscreen
	Borderless
)

func (ws WindowState) String() string {
	switch ws {
	case Windowed:
		return "windowed"
	case Fullscreen:
		return "fullscreen"
	case Borderless:
		return "borderless"
	}
	return fmt.Sprintf("WindowState(%d)", int(ws))
}

// ErrAlreadyInitialized indicates a second Init call on the same Screen.
const ErrAlreadyInitialized log.ConstErr = "window already initialized"

// ErrNotInitialized indicates a mutator that requires the window was called
// before Init.
const ErrNotInitialized log.ConstErr = "window not initialized"

// ErrBadRenderScale indicates a non-positive render scale.
const ErrBadRenderScale log.ConstErr = "render scale must be positive"

// ErrNoSurface indicates a frame operation was attempted with no live render
// surface. It is reported through the overlay rather than aborting the frame.
const ErrNoSurface log.ConstErr = "render texture doesn't exist"

// Screen owns the backend window, the screen-vs-render resolution mapping,
// the offscreen surface lifecycle, and the per-frame draw protocol. At most
// one surface is live at any time and its size always equals the render
// resolution.
type Screen struct {
	b backend.Backend

	screen      Resolution
	windowState WindowState

	render      Resolution
	renderRatio float32
	surface     *Surface

	initialized bool
	background  color.RGBA
	framerate   int32

	overlay *Overlay

	drawing    bool
	frameWatch perf.StopWatch
}

// New returns a Screen with default configuration (1280x720, render scale
// 1.0, 60 fps) driving the given backend. The window is not opened until
// Init.
func New(b backend.Backend) *Screen {
	return &Screen{
		b:           b,
		screen:      Resolution{config.DefaultScreenWidth, config.DefaultScreenHeight},
		windowState: Windowed,
		render:      Resolution{config.DefaultScreenWidth, config.DefaultScreenHeight},
		renderRatio: config.DefaultRenderScale,
		background:  config.DefaultBackground,
		framerate:   config.DefaultFPS,
		overlay:     NewOverlay(),
	}
}

// FromConfig returns a Screen preconfigured from cfg.
func FromConfig(b backend.Backend, cfg *config.Config) *Screen {
	s := New(b)
	s.screen = Resolution{cfg.ScreenWidth, cfg.ScreenHeight}
	s.renderRatio = cfg.RenderScale
	s.render = s.scaled(s.screen)
	s.background = cfg.Background
	s.framerate = cfg.FramesPerSecond
	return s
}

// Init opens the backend window at the configured screen resolution and
// allocates the first render surface. It must be called exactly once before
// any frame operation.
func (s *Screen) Init(title string) error {
	if s.initialized {
		return fmt.Errorf("init %q: %w", title, ErrAlreadyInitialized)
	}
	s.b.SetLogVerbosity(backend.VerbosityNone)
	if err := s.b.OpenWindow(s.screen.Width, s.screen.Height, title); err != nil {
		return fmt.Errorf("init %q: %w", title, err)
	}
	s.b.SetTargetFPS(s.framerate)
	s.b.SetTextLineSpacing(9)
	s.initialized = true
	log.Infof("opened window %q at %vx%v", title, s.screen.Width, s.screen.Height)
	return s.updateSurface()
}

// Close unloads the render surface if present and closes the backend window.
// Safe to call on a Screen that was never initialized.
func (s *Screen) Close() {
	if s.surface != nil {
		s.surface.Unload()
		s.surface = nil
	}
	if s.initialized {
		s.b.CloseWindow()
		s.initialized = false
	}
}

// WindowReady reports whether the backend window is up. It is false
// unconditionally before Init.
func (s *Screen) WindowReady() bool {
	if !s.initialized {
		return false
	}
	return s.b.WindowReady()
}

// ShouldClose reports whether the user has requested the window to close.
func (s *Screen) ShouldClose() bool {
	if !s.initialized {
		return true
	}
	return s.b.ShouldClose()
}

// ToggleFullscreen flips between Fullscreen and Windowed. Toggling from
// Borderless lands on Fullscreen first.
func (s *Screen) ToggleFullscreen() error {
	return s.toggle(Fullscreen, s.b.ToggleFullscreen)
}

// ToggleBorderless flips between Borderless and Windowed. Toggling from
// Fullscreen lands on Borderless first.
func (s *Screen) ToggleBorderless() error {
	return s.toggle(Borderless, s.b.ToggleBorderless)
}

func (s *Screen) toggle(state WindowState, flip func()) error {
	if !s.initialized {
		return fmt.Errorf("toggle %v: %w", state, ErrNotInitialized)
	}
	if s.windowState != state {
		s.windowState = state
	} else {
		s.windowState = Windowed
	}
	flip()
	// the native layer may clamp or adjust the size on a state change
	s.screen.Width, s.screen.Height = s.b.WindowSize()
	s.render = s.scaled(s.screen)
	return s.updateSurface()
}

// SetResolution sets the physical window size, rescales the render
// resolution, and reallocates the render surface. Before Init it only
// updates the stored configuration.
func (s *Screen) SetResolution(width, height int32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("set resolution %vx%v: %w", width, height, ErrBadDimensions)
	}
	s.screen = Resolution{width, height}
	s.render = s.scaled(s.screen)
	if s.initialized {
		s.b.SetWindowSize(width, height)
	}
	return s.updateSurface()
}

// SetRenderScale sets the scale factor mapping screen resolution to render
// resolution and reallocates the render surface at the new size.
func (s *Screen) SetRenderScale(scale float32) error {
	if scale <= 0 {
		return fmt.Errorf("set render scale %v: %w", scale, ErrBadRenderScale)
	}
	s.renderRatio = scale
	s.render = s.scaled(s.screen)
	return s.updateSurface()
}

// SetFPS sets the target framerate. The window must be initialized.
func (s *Screen) SetFPS(fps int32) error {
	if !s.initialized {
		return fmt.Errorf("set fps %v: %w", fps, ErrNotInitialized)
	}
	s.framerate = fps
	s.b.SetTargetFPS(fps)
	return nil
}

// SetBackground sets the clear color used at the start of each frame.
func (s *Screen) SetBackground(c color.RGBA) {
	s.background = c
}

// Overlay returns the screen's debug overlay.
func (s *Screen) Overlay() *Overlay {
	return s.overlay
}

// ScreenResolution returns the current physical window size.
func (s *Screen) ScreenResolution() Resolution {
	return s.screen
}

// RenderResolution returns the current logical render size.
func (s *Screen) RenderResolution() Resolution {
	return s.render
}

// RenderScale returns the scale factor mapping screen to render resolution.
func (s *Screen) RenderScale() float32 {
	return s.renderRatio
}

// State returns the current window state.
func (s *Screen) State() WindowState {
	return s.windowState
}

func (s *Screen) scaled(r Resolution) Resolution {
	return Resolution{
		Width:  int32(float32(r.Width) * s.renderRatio),
		Height: int32(float32(r.Height) * s.renderRatio),
	}
}

// updateSurface drops the current surface and, once the window is up,
// allocates a fresh one at the render resolution. Reallocation happens on
// every call even when the size is unchanged; callers rely on that for the
// resync after window-state toggles.
func (s *Screen) updateSurface() error {
	if s.surface != nil {
		s.surface.Unload()
		s.surface = nil
	}
	if !s.initialized {
		return nil
	}
	surface, err := LoadSurface(s.b, s.render.Width, s.render.Height)
	if err != nil {
		return err
	}
	s.surface = surface
	return nil
}

// StartDraw begins the frame's draw pass into the render surface and clears
// it to the background color. With no surface present the failure is logged
// to the overlay and the frame is skipped.
func (s *Screen) StartDraw() {
	if s.surface == nil {
		s.overlay.Log(ErrNoSurface.Error())
		return
	}
	s.frameWatch = perf.Start()
	s.surface.Begin()
	s.b.Clear(s.background)
	s.drawing = true
}

// EndDraw composites the overlay, finishes the surface's draw pass, blits
// the surface to the window with a vertical flip, and presents the frame.
func (s *Screen) EndDraw() {
	if s.surface == nil {
		s.overlay.Log(ErrNoSurface.Error())
		return
	}
	if !s.drawing {
		panic("end draw without matching start draw")
	}

	if s.overlay.Visible() {
		s.drawDebugPanel()
	}
	s.overlay.advance(s.b, s.render.Height)

	s.surface.End()

	s.b.BeginFrame()
	// the offscreen target's row order is inverted relative to the window,
	// so the source height is negated
	s.b.DrawTarget(
		s.surface.Target(),
		backend.Rect{W: float32(s.render.Width), H: -float32(s.render.Height)},
		backend.Rect{W: float32(s.screen.Width), H: float32(s.screen.Height)},
		backend.Point{},
		0,
		color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	)
	s.b.EndFrame()

	s.drawing = false
	s.frameWatch.StopRecordAverage("screen.frame")
}

// drawDebugPanel draws window and framerate state into the top-left corner
// of the render surface.
func (s *Screen) drawDebugPanel() {
	lines := []string{
		fmt.Sprintf("screen %vx%v (%v)", s.screen.Width, s.screen.Height, s.windowState),
		fmt.Sprintf("render %vx%v (x%.2f)", s.render.Width, s.render.Height, s.renderRatio),
		fmt.Sprintf("target fps %v", s.framerate),
	}
	for i, line := range lines {
		y := float32(overlayMargin + overlayLineStep*i)
		s.b.DrawText(line, backend.Point{X: 0, Y: y}, overlayFontSize, overlayFontSpacing, overlayTextColor)
	}
}
