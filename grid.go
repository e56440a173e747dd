package oscgrid

import "fmt"

// RenderFlags selects the optional parts of the grid. The frame is always
// drawn.
type RenderFlags struct {
	Grid   bool
	RulerX bool
	RulerY bool
}

// Option names one of the render flags.
type Option int

const (
	// OptionGrid toggles the division grid.
	OptionGrid Option = iota

	// OptionRulerX toggles the horizontal ruler bar through the center.
	OptionRulerX

	// OptionRulerY toggles the vertical ruler bar through the center.
	OptionRulerY
)

// String returns the option name.
func (o Option) String() string {
	switch o {
	case OptionGrid:
		return "Grid"
	case OptionRulerX:
		return "RulerX"
	case OptionRulerY:
		return "RulerY"
	default:
		return fmt.Sprintf("Option(%d)", int(o))
	}
}

// Get returns the value of flag o.
func (f RenderFlags) Get(o Option) bool {
	switch o {
	case OptionGrid:
		return f.Grid
	case OptionRulerX:
		return f.RulerX
	case OptionRulerY:
		return f.RulerY
	}
	return false
}

// set stores v in flag o and reports whether the value changed.
func (f *RenderFlags) set(o Option, v bool) bool {
	var p *bool
	switch o {
	case OptionGrid:
		p = &f.Grid
	case OptionRulerX:
		p = &f.RulerX
	case OptionRulerY:
		p = &f.RulerY
	default:
		return false
	}
	if *p == v {
		return false
	}
	*p = v
	return true
}

// rulerOffsets are the ruler bar rows (or columns) relative to the center.
// The center line itself is left open.
var rulerOffsets = [...]int{2, 1, -1, -2}

// RenderGrid draws the grid described by s onto t in color c.
//
// It is a single pass over an already cleared target: division lines, the
// horizontal ruler, the vertical ruler, then the frame around the whole
// target. Every line except the frame is dotted with a step of
// s.PixelsPerSubdivision. Settings are assumed valid (see Settings.Validate).
func RenderGrid(t Target, s Settings, f RenderFlags, c RGBA) {
	w, h := t.Width(), t.Height()
	cx, cy := s.TextureCenter.X, s.TextureCenter.Y
	div := s.PixelsPerDivision
	sub := s.PixelsPerSubdivision

	if f.Grid && div >= 1 {
		for x := cx; x < w; x += div {
			PlotVerticalDots(t, x, cy, sub, c)
		}
		for x := cx - div; x >= 0; x -= div {
			PlotVerticalDots(t, x, cy, sub, c)
		}
		for y := cy; y < h; y += div {
			PlotHorizontalDots(t, cx, y, sub, c)
		}
		for y := cy - div; y >= 0; y -= div {
			PlotHorizontalDots(t, cx, y, sub, c)
		}
	}

	if f.RulerX {
		for _, d := range rulerOffsets {
			PlotHorizontalDots(t, cx, cy+d, sub, c)
		}
	}

	if f.RulerY {
		for _, d := range rulerOffsets {
			PlotVerticalDots(t, cx+d, cy, sub, c)
		}
	}

	PlotRectangle(t, 0, 0, w-1, h-1, c)
}
