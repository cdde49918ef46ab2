// Package rayback implements the backend capability surface on raylib.
// Raylib's window, render-texture, and text primitives map onto the
// interface almost one to one, so this backend is a thin translation layer.
package rayback

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gregjohnson2017/viewport/pkg/backend"
	"github.com/gregjohnson2017/viewport/pkg/log"
)

// ErrCreateTarget indicates raylib failed to allocate a render texture.
const ErrCreateTarget log.ConstErr = "failed to load render texture"

// Backend drives a raylib window. The zero value is ready to use.
type Backend struct{}

var _ backend.Backend = Backend{}

// New returns a raylib-backed Backend.
func New() Backend {
	return Backend{}
}

type target struct {
	tex rl.RenderTexture2D
}

func (t target) Width() int32  { return t.tex.Texture.Width }
func (t target) Height() int32 { return t.tex.Texture.Height }

func (Backend) OpenWindow(width, height int32, title string) error {
	rl.InitWindow(width, height, title)
	return nil
}

func (Backend) CloseWindow() {
	rl.CloseWindow()
}

func (Backend) WindowReady() bool {
	return rl.IsWindowReady()
}

func (Backend) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (Backend) ToggleFullscreen() {
	rl.ToggleFullscreen()
}

func (Backend) ToggleBorderless() {
	rl.ToggleBorderlessWindowed()
}

func (Backend) WindowSize() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

func (Backend) SetWindowSize(width, height int32) {
	rl.SetWindowSize(int(width), int(height))
}

func (Backend) SetTargetFPS(fps int32) {
	rl.SetTargetFPS(fps)
}

func (Backend) SetTextLineSpacing(px int32) {
	rl.SetTextLineSpacing(int(px))
}

func (Backend) SetLogVerbosity(level backend.Verbosity) {
	rl.SetTraceLogLevel(rl.TraceLogLevel(level))
}

func (Backend) BeginFrame() {
	rl.BeginDrawing()
}

func (Backend) EndFrame() {
	rl.EndDrawing()
}

func (Backend) Clear(c color.RGBA) {
	rl.ClearBackground(rayColor(c))
}

func (Backend) CreateTarget(width, height int32) (backend.Target, error) {
	tex := rl.LoadRenderTexture(width, height)
	if tex.ID == 0 {
		return nil, ErrCreateTarget
	}
	return target{tex: tex}, nil
}

func (Backend) ReleaseTarget(t backend.Target) {
	rl.UnloadRenderTexture(t.(target).tex)
}

func (Backend) BeginTarget(t backend.Target) {
	rl.BeginTextureMode(t.(target).tex)
}

func (Backend) EndTarget() {
	rl.EndTextureMode()
}

func (Backend) DrawTarget(t backend.Target, src, dst backend.Rect, origin backend.Point, rotation float32, tint color.RGBA) {
	rl.DrawTexturePro(
		t.(target).tex.Texture,
		rl.NewRectangle(src.X, src.Y, src.W, src.H),
		rl.NewRectangle(dst.X, dst.Y, dst.W, dst.H),
		rl.NewVector2(origin.X, origin.Y),
		rotation,
		rayColor(tint),
	)
}

func (Backend) DrawText(text string, pos backend.Point, size, spacing float32, c color.RGBA) {
	rl.DrawTextEx(rl.GetFontDefault(), text, rl.NewVector2(pos.X, pos.Y), size, spacing, rayColor(c))
}

func rayColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
