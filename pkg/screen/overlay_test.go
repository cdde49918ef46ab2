package screen_test

import (
	"fmt"
	"testing"

	"github.com/gregjohnson2017/viewport/pkg/screen"
)

func TestOverlayToggle(t *testing.T) {
	o := screen.NewOverlay()
	if o.Visible() {
		t.Fatal("new overlay visible")
	}
	if !o.Toggle() {
		t.Error("first Toggle returned false")
	}
	if o.Toggle() {
		t.Error("second Toggle returned true")
	}
	if o.Visible() {
		t.Error("overlay visible after paired toggles")
	}
}

func TestOverlayMessageTTL(t *testing.T) {
	scr, fb := newTestScreen(t)
	scr.Overlay().LogTTL("fleeting", 3)

	drawn := func() int {
		n := 0
		for _, tc := range fb.texts {
			if tc.text == "fleeting" {
				n++
			}
		}
		return n
	}

	// the message survives the first two presented frames
	for i := 1; i <= 2; i++ {
		fb.texts = nil
		frame(t, scr)
		if drawn() != 1 {
			t.Errorf("frame %v: message drawn %v times, want 1", i, drawn())
		}
	}

	// third frame expires it
	fb.texts = nil
	frame(t, scr)
	if drawn() != 0 {
		t.Error("message still drawn on its expiry frame")
	}
	if scr.Overlay().Len() != 0 {
		t.Errorf("overlay holds %v messages, want 0", scr.Overlay().Len())
	}
}

func TestOverlayMessagePlacement(t *testing.T) {
	scr, fb := newTestScreen(t)
	scr.Overlay().Log("one")
	scr.Overlay().Log("two")

	frame(t, scr)

	if len(fb.texts) != 2 {
		t.Fatalf("text calls = %v, want 2", len(fb.texts))
	}
	// stacked bottom-up from the lower edge of the 720px render surface
	if fb.texts[0].text != "one" || fb.texts[0].pos.Y != 712 {
		t.Errorf("first message = %q at y=%v, want \"one\" at 712", fb.texts[0].text, fb.texts[0].pos.Y)
	}
	if fb.texts[1].text != "two" || fb.texts[1].pos.Y != 702 {
		t.Errorf("second message = %q at y=%v, want \"two\" at 702", fb.texts[1].text, fb.texts[1].pos.Y)
	}
}

func TestOverlayPlacementTracksRenderResolution(t *testing.T) {
	scr, fb := newTestScreen(t)
	if err := scr.SetRenderScale(0.5); err != nil {
		t.Fatalf("SetRenderScale: %v", err)
	}
	scr.Overlay().Log("low-res")

	frame(t, scr)

	if len(fb.texts) != 1 {
		t.Fatalf("text calls = %v, want 1", len(fb.texts))
	}
	if fb.texts[0].pos.Y != 352 {
		t.Errorf("message y = %v, want 352 for a 360px render surface", fb.texts[0].pos.Y)
	}
}

func TestOverlayPreservesOrderAcrossExpiry(t *testing.T) {
	scr, fb := newTestScreen(t)
	scr.Overlay().LogTTL("short", 2)
	scr.Overlay().LogTTL("long", 5)

	frame(t, scr)
	fb.texts = nil
	frame(t, scr)

	// "short" expired, "long" moved down into its slot
	if len(fb.texts) != 1 {
		t.Fatalf("text calls = %v, want 1", len(fb.texts))
	}
	if fb.texts[0].text != "long" || fb.texts[0].pos.Y != 712 {
		t.Errorf("survivor = %q at y=%v, want \"long\" at 712", fb.texts[0].text, fb.texts[0].pos.Y)
	}
	if got := scr.Overlay().Messages(); len(got) != 1 || got[0] != "long" {
		t.Errorf("messages = %v, want [long]", got)
	}
}

func TestOverlayDrawnInsideSurfacePass(t *testing.T) {
	scr, fb := newTestScreen(t)
	scr.Overlay().Toggle()
	scr.Overlay().Log("composited")

	frame(t, scr)

	// panel lines and overlay messages render into the offscreen surface,
	// before its pass ends and the frame is blitted to the window
	if len(fb.texts) == 0 {
		t.Fatal("nothing drawn")
	}
	for _, tc := range fb.texts {
		if !tc.inPass {
			t.Errorf("%q drawn outside the surface draw pass", tc.text)
		}
	}
}

func TestOverlayEvictsOldestWhenFull(t *testing.T) {
	o := screen.NewOverlay()
	for i := 0; i < 40; i++ {
		o.Log(fmt.Sprintf("msg %d", i))
	}
	if o.Len() != 32 {
		t.Fatalf("overlay holds %v messages, want 32", o.Len())
	}
	got := o.Messages()
	if got[0] != "msg 8" || got[len(got)-1] != "msg 39" {
		t.Errorf("messages span %q..%q, want \"msg 8\"..\"msg 39\"", got[0], got[len(got)-1])
	}
}
