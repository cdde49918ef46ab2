package config_test

import (
	"testing"

	"github.com/gregjohnson2017/viewport/pkg/config"
)

func TestNewFallsBackToDefaults(t *testing.T) {
	t.Run("all zero", func(t *testing.T) {
		c := config.New("zero", 0, 0, 0, 0)
		if c.ScreenWidth != config.DefaultScreenWidth || c.ScreenHeight != config.DefaultScreenHeight {
			t.Errorf("size = %vx%v, want defaults", c.ScreenWidth, c.ScreenHeight)
		}
		if c.RenderScale != config.DefaultRenderScale {
			t.Errorf("render scale = %v, want %v", c.RenderScale, config.DefaultRenderScale)
		}
		if c.FramesPerSecond != config.DefaultFPS {
			t.Errorf("fps = %v, want %v", c.FramesPerSecond, config.DefaultFPS)
		}
		if c.Background != config.DefaultBackground {
			t.Errorf("background = %v, want default", c.Background)
		}
	})
	t.Run("explicit values kept", func(t *testing.T) {
		c := config.New("explicit", 800, 600, 0.5, 144)
		if c.Title != "explicit" || c.ScreenWidth != 800 || c.ScreenHeight != 600 {
			t.Errorf("got %q %vx%v", c.Title, c.ScreenWidth, c.ScreenHeight)
		}
		if c.RenderScale != 0.5 || c.FramesPerSecond != 144 {
			t.Errorf("scale = %v fps = %v", c.RenderScale, c.FramesPerSecond)
		}
	})
	t.Run("negative treated as unset", func(t *testing.T) {
		c := config.New("negative", -1, -1, -0.5, -30)
		if c.ScreenWidth != config.DefaultScreenWidth || c.RenderScale != config.DefaultRenderScale || c.FramesPerSecond != config.DefaultFPS {
			t.Errorf("negative inputs not replaced: %+v", c)
		}
	})
}
