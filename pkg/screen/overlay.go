package screen

import (
	"image/color"

	"github.com/gregjohnson2017/viewport/pkg/backend"
	"github.com/gregjohnson2017/viewport/pkg/log"
)

// DefaultMessageTTL is the number of presented frames a logged message stays
// in the overlay when no explicit ttl is given.
const DefaultMessageTTL = 60

// maxMessages bounds the overlay; the oldest message is evicted first.
const maxMessages = 32

// Overlay text layout, in render-resolution pixels.
const (
	overlayMargin      = 8
	overlayLineStep    = 10
	overlayFontSize    = 8
	overlayFontSpacing = 1
)

var overlayTextColor = color.RGBA{A: 0xFF}

type message struct {
	text string
	ttl  int
}

// Overlay is a bounded, self-expiring log of short-lived text messages drawn
// atop the final frame. It is owned by a Screen and confined to the render
// thread; it is not safe for concurrent use.
type Overlay struct {
	visible  bool
	messages []message
}

// NewOverlay returns an empty overlay with the debug panel hidden.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Toggle flips whether the debug panel is drawn and returns the new state.
// Expiring messages are drawn regardless of this flag.
func (o *Overlay) Toggle() bool {
	o.visible = !o.visible
	return o.visible
}

// Visible reports whether the debug panel is drawn.
func (o *Overlay) Visible() bool {
	return o.visible
}

// Log appends a message with the default ttl.
func (o *Overlay) Log(text string) {
	o.LogTTL(text, DefaultMessageTTL)
}

// LogTTL appends a message that expires after ttl presented frames. The
// oldest message is evicted if the overlay is full.
func (o *Overlay) LogTTL(text string, ttl int) {
	log.Debug(text)
	if len(o.messages) >= maxMessages {
		o.messages = append(o.messages[:0], o.messages[1:]...)
	}
	o.messages = append(o.messages, message{text: text, ttl: ttl})
}

// Len returns the number of messages that have not yet expired.
func (o *Overlay) Len() int {
	return len(o.messages)
}

// Messages returns the texts of the live messages in insertion order.
func (o *Overlay) Messages() []string {
	out := make([]string, len(o.messages))
	for i, m := range o.messages {
		out[i] = m.text
	}
	return out
}

// advance ages every message by one frame, draws the survivors bottom-up
// into the current draw pass, and drops the expired ones. Relative order of
// survivors is preserved.
func (o *Overlay) advance(b backend.Backend, renderHeight int32) {
	kept := o.messages[:0]
	count := 0
	for i := range o.messages {
		m := o.messages[i]
		m.ttl--
		if m.ttl <= 0 {
			continue
		}
		y := float32(renderHeight) - overlayMargin - overlayLineStep*float32(count)
		b.DrawText(m.text, backend.Point{X: 0, Y: y}, overlayFontSize, overlayFontSpacing, overlayTextColor)
		count++
		kept = append(kept, m)
	}
	o.messages = kept
}
