package oscgrid

// Target is the pixel sink drawn into by the plotters and RenderGrid.
// *PixelBuffer implements it.
type Target interface {
	Width() int
	Height() int

	// SetPixel writes one pixel. Implementations must ignore coordinates
	// outside [0, Width()) x [0, Height()).
	SetPixel(x, y int, c RGBA)
}

// PlotHorizontalDots draws single-pixel dots step pixels apart along row y0,
// starting at x0 and running out to both the right and the left edge.
//
// The start pixel is plotted by both passes. A step below one draws nothing.
func PlotHorizontalDots(t Target, x0, y0, step int, c RGBA) {
	if step < 1 {
		return
	}
	w := t.Width()
	for ix := x0; ix < w; ix += step {
		t.SetPixel(ix, y0, c)
	}
	for ix := x0; ix >= 0; ix -= step {
		t.SetPixel(ix, y0, c)
	}
}

// PlotVerticalDots is the column counterpart of PlotHorizontalDots.
func PlotVerticalDots(t Target, x0, y0, step int, c RGBA) {
	if step < 1 {
		return
	}
	h := t.Height()
	for iy := y0; iy < h; iy += step {
		t.SetPixel(x0, iy, c)
	}
	for iy := y0; iy >= 0; iy -= step {
		t.SetPixel(x0, iy, c)
	}
}

// PlotRectangle draws a one-pixel outline with corners (x0, y0) and (x1, y1),
// both inclusive.
func PlotRectangle(t Target, x0, y0, x1, y1 int, c RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for x := x0; x <= x1; x++ {
		t.SetPixel(x, y0, c)
		t.SetPixel(x, y1, c)
	}
	for y := y0 + 1; y < y1; y++ {
		t.SetPixel(x0, y, c)
		t.SetPixel(x1, y, c)
	}
}
