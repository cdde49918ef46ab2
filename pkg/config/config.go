package config

import "image/color"

// Defaults used by New when a zero value is given.
const (
	DefaultScreenWidth  = int32(1280)
	DefaultScreenHeight = int32(720)
	DefaultRenderScale  = float32(1.0)
	DefaultFPS          = int32(60)
)

// DefaultBackground is the clear color used when none is configured.
var DefaultBackground = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xFF}

// Config represents the window configuration for the application
type Config struct {
	Title           string
	ScreenWidth     int32
	ScreenHeight    int32
	RenderScale     float32
	FramesPerSecond int32
	Background      color.RGBA
}

// New is an optional constructor for Config, mainly for a friendlier API.
// Zero-valued dimensions, scale, and framerate fall back to the defaults.
func New(title string, screenWidth, screenHeight int32, renderScale float32, fps int32) *Config {
	c := &Config{
		Title:           title,
		ScreenWidth:     screenWidth,
		ScreenHeight:    screenHeight,
		RenderScale:     renderScale,
		FramesPerSecond: fps,
		Background:      DefaultBackground,
	}
	if c.ScreenWidth <= 0 {
		c.ScreenWidth = DefaultScreenWidth
	}
	if c.ScreenHeight <= 0 {
		c.ScreenHeight = DefaultScreenHeight
	}
	if c.RenderScale <= 0 {
		c.RenderScale = DefaultRenderScale
	}
	if c.FramesPerSecond <= 0 {
		c.FramesPerSecond = DefaultFPS
	}
	return c
}
