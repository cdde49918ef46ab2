// Package backend declares the capability surface the screen core needs from
// a native windowing and graphics system. Implementations wrap a concrete
// library (raylib, SDL2+OpenGL) so that the core never touches the native
// layer directly and can be exercised against a fake in tests.
package backend

import "image/color"

// Point is a position in pixels.
type Point struct {
	X float32
	Y float32
}

// Rect is an axis-aligned rectangle in pixels. A negative W or H mirrors the
// sampled region along that axis when used as a source rectangle.
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

// Verbosity selects how chatty the native layer is allowed to be.
type Verbosity int32

const (
	VerbosityAll Verbosity = iota
	VerbosityTrace
	VerbosityDebug
	VerbosityInfo
	VerbosityWarning
	VerbosityError
	VerbosityFatal
	VerbosityNone
)

// Target is an opaque handle to a backend-allocated offscreen render target.
// Each backend returns its own concrete type from CreateTarget and only
// accepts handles it created.
type Target interface {
	Width() int32
	Height() int32
}

// Backend is the full capability surface consumed by the screen core. All
// calls are blocking and must run on the thread that owns the window.
type Backend interface {
	// OpenWindow creates the native window. It must be called once before
	// any other call except SetLogVerbosity.
	OpenWindow(width, height int32, title string) error
	// CloseWindow destroys the native window and releases the native layer.
	CloseWindow()
	// WindowReady reports whether the window has been created successfully.
	WindowReady() bool
	// ShouldClose reports whether the user has requested the window to close.
	ShouldClose() bool
	// ToggleFullscreen switches between windowed and exclusive fullscreen.
	ToggleFullscreen()
	// ToggleBorderless switches between windowed and borderless fullscreen.
	ToggleBorderless()
	// WindowSize returns the current window size as reported by the native
	// layer, which may differ from the requested size after a state toggle.
	WindowSize() (int32, int32)
	SetWindowSize(width, height int32)
	SetTargetFPS(fps int32)
	SetTextLineSpacing(px int32)
	SetLogVerbosity(level Verbosity)

	// BeginFrame and EndFrame bracket a window-level draw pass; EndFrame
	// presents the frame.
	BeginFrame()
	EndFrame()
	// Clear fills the current draw area with the given color.
	Clear(c color.RGBA)

	// CreateTarget allocates an offscreen render target of exactly the given
	// size. ReleaseTarget frees it; releasing a target twice is a caller
	// defect.
	CreateTarget(width, height int32) (Target, error)
	ReleaseTarget(t Target)
	// BeginTarget and EndTarget bracket a draw pass into t. Passes do not
	// nest.
	BeginTarget(t Target)
	EndTarget()
	// DrawTarget draws t's texture from src into dst, rotated by rotation
	// degrees around origin (relative to dst) and modulated by tint.
	DrawTarget(t Target, src, dst Rect, origin Point, rotation float32, tint color.RGBA)
	// DrawText draws text with its top-left corner at pos using the backend's
	// default font.
	DrawText(text string, pos Point, size, spacing float32, c color.RGBA)
}
