// Package oscgrid renders an oscilloscope-style calibration grid into an
// in-memory RGBA pixel buffer.
//
// # Overview
//
// The grid is built from single-pixel dots: division lines spaced
// PixelsPerDivision apart and expanding both ways from a center point,
// two optional ruler bars through the center, and a one-pixel frame around
// the whole buffer. Dots along every line are PixelsPerSubdivision apart.
//
// # Quick Start
//
//	gs := oscgrid.NewGridSurface(oscgrid.WithColors(oscgrid.Black, oscgrid.Green))
//	if err := gs.Configure(oscgrid.NewSettings(640, 480)); err != nil {
//	    return err
//	}
//
//	// In the host's tick or event loop:
//	if buf, ok := gs.RenderIfDirty(); ok {
//	    upload(buf.Data())
//	}
//
// # Architecture
//
//   - PixelBuffer: width x height RGBA pixels, clipping SetPixel, Fill, Resize
//   - PlotHorizontalDots, PlotVerticalDots, PlotRectangle: line primitives
//   - RenderGrid: the stateless grid layout pass
//   - GridSurface: settings, flags and dirty tracking around one buffer
//
// Display bindings live in the integration packages: gridtexture (GPU
// texture upload), ebitenview (desktop window), tinydisplay (embedded
// panels) and termview (terminal preview).
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Writes outside the buffer are silently clipped. There is no
// anti-aliasing and no blending; every write overwrites.
package oscgrid

// Version is the current version of the library.
const Version = "0.1.0"
