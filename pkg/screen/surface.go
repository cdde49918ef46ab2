package screen

import (
	"fmt"

	"github.com/gregjohnson2017/viewport/pkg/backend"
	"github.com/gregjohnson2017/viewport/pkg/log"
)

// ErrBadDimensions indicates that a surface was requested with a
// non-positive width or height.
const ErrBadDimensions log.ConstErr = "surface dimensions must be positive"

// Surface owns exactly one backend render target. Load and Unload are a
// strict pair: a Surface must be unloaded before it is dropped, and never
// twice. Begin and End bracket a draw pass into the target; passes do not
// nest.
type Surface struct {
	b      backend.Backend
	target backend.Target
	active bool
}

// LoadSurface allocates a render target of exactly the given size.
func LoadSurface(b backend.Backend, width, height int32) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("load %vx%v surface: %w", width, height, ErrBadDimensions)
	}
	target, err := b.CreateTarget(width, height)
	if err != nil {
		return nil, fmt.Errorf("load %vx%v surface: %w", width, height, err)
	}
	log.Debugf("loaded %vx%v surface", width, height)
	return &Surface{b: b, target: target}, nil
}

// Unload releases the render target. Unloading twice is a programmer error.
func (s *Surface) Unload() {
	if s.target == nil {
		panic("surface unloaded twice")
	}
	if s.active {
		panic("surface unloaded during its draw pass")
	}
	s.b.ReleaseTarget(s.target)
	s.target = nil
}

// Begin redirects drawing into the surface's backing texture.
func (s *Surface) Begin() {
	if s.target == nil {
		panic("begin on unloaded surface")
	}
	if s.active {
		panic("surface draw pass already active")
	}
	s.b.BeginTarget(s.target)
	s.active = true
}

// End finishes the surface's draw pass.
func (s *Surface) End() {
	if !s.active {
		panic("surface draw pass not active")
	}
	s.b.EndTarget()
	s.active = false
}

// Target returns the backend handle for drawing this surface to the window.
func (s *Surface) Target() backend.Target {
	return s.target
}

// Width returns the allocated width of the render target.
func (s *Surface) Width() int32 {
	return s.target.Width()
}

// Height returns the allocated height of the render target.
func (s *Surface) Height() int32 {
	return s.target.Height()
}
