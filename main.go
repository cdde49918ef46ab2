package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/gregjohnson2017/viewport/pkg/backend"
	"github.com/gregjohnson2017/viewport/pkg/backend/glback"
	"github.com/gregjohnson2017/viewport/pkg/backend/rayback"
	"github.com/gregjohnson2017/viewport/pkg/config"
	"github.com/gregjohnson2017/viewport/pkg/log"
	"github.com/gregjohnson2017/viewport/pkg/perf"
	"github.com/gregjohnson2017/viewport/pkg/screen"
)

func init() {
	// the windowing backends require the main OS thread
	runtime.LockOSThread()
}

func main() {
	var backendName string
	var verbose, metrics bool
	flag.StringVar(&backendName, "backend", "raylib", "windowing backend: raylib or gl")
	flag.BoolVar(&verbose, "v", false, "log info and warnings to stderr")
	flag.BoolVar(&metrics, "perf", false, "collect and report performance metrics on exit")
	flag.Parse()

	if verbose {
		log.SetColorized(true)
		log.SetInfoOutput(os.Stderr)
		log.SetWarnOutput(os.Stderr)
	}
	if metrics {
		perf.SetMetricsEnabled(true)
		log.SetPerfOutput(os.Stderr)
	}

	var b backend.Backend
	switch backendName {
	case "raylib":
		b = rayback.New()
	case "gl":
		b = glback.New()
	default:
		log.Fatalf("unknown backend %q", backendName)
	}

	cfg := config.New("viewport demo", 0, 0, 0, 0)
	scr := screen.FromConfig(b, cfg)
	if err := scr.Init(cfg.Title); err != nil {
		log.Fatal(err)
	}
	defer scr.Close()

	errCheck(scr.SetResolution(800, 600))
	errCheck(scr.SetRenderScale(0.5))
	scr.Overlay().Toggle()
	scr.Overlay().Log("close the window to exit")

	frames := 0
	for !scr.ShouldClose() {
		scr.StartDraw()
		scr.EndDraw()
		frames++
		if frames%120 == 0 {
			scr.Overlay().LogTTL(fmt.Sprintf("frame %v", frames), 90)
		}
	}

	if metrics {
		perf.LogMetrics()
	}
}

func errCheck(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
