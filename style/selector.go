package style

import (
	"fmt"
	"sync/atomic"
)

// Selector is a set of interaction states a view can be in.
// Rules apply in ascending order, later wins.
type Selector uint16

const (
	Hover Selector = 1 << iota
	Focus
	FocusVisible
	Active
	Dragging
	Selected
	FileHover
	DarkMode
	Disabled
)

func (s Selector) Has(o Selector) bool { return s&o == o }

// ScreenSize is a set of breakpoint ranges.
type ScreenSize uint8

const (
	XS ScreenSize = 1 << iota
	SM
	MD
	LG
	XL
	XXL
)

// AtLeast returns s and every larger size.
func (s ScreenSize) AtLeast() ScreenSize {
	out := s
	for next := s << 1; next != 0 && next <= XXL; next <<= 1 {
		out |= next
	}
	return out
}

// AtMost returns s and every smaller size.
func (s ScreenSize) AtMost() ScreenSize {
	out := s
	for prev := s >> 1; prev != 0; prev >>= 1 {
		out |= prev
	}
	return out
}

// Breakpoints are the lower bounds, in pixels, of each size but XS.
type Breakpoints struct {
	SM  float64 `yaml:"sm"`
	MD  float64 `yaml:"md"`
	LG  float64 `yaml:"lg"`
	XL  float64 `yaml:"xl"`
	XXL float64 `yaml:"xxl"`
}

func DefaultBreakpoints() Breakpoints {
	return Breakpoints{SM: 576, MD: 768, LG: 992, XL: 1200, XXL: 1400}
}

func (b Breakpoints) Validate() error {
	bounds := []float64{0, b.SM, b.MD, b.LG, b.XL, b.XXL}
	for i := 1; i < len(bounds); i++ {
		if bounds[i] <= bounds[i-1] {
			return fmt.Errorf("style: breakpoints must be positive and increasing, got %v", bounds[1:])
		}
	}

	return nil
}

// Size returns the range width falls into.
func (b Breakpoints) Size(width float64) ScreenSize {
	switch {
	case width < b.SM:
		return XS
	case width < b.MD:
		return SM
	case width < b.LG:
		return MD
	case width < b.XL:
		return LG
	case width < b.XXL:
		return XL
	default:
		return XXL
	}
}

var breakpoints atomic.Pointer[Breakpoints]

func init() {
	b := DefaultBreakpoints()
	breakpoints.Store(&b)
}

// CurrentBreakpoints returns the breakpoints used by new windows.
func CurrentBreakpoints() Breakpoints {
	return *breakpoints.Load()
}

func SetBreakpoints(b Breakpoints) error {
	if err := b.Validate(); err != nil {
		return err
	}

	breakpoints.Store(&b)
	return nil
}
