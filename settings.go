package oscgrid

import "fmt"

// Default grid spacing used by NewSettings.
const (
	DefaultPixelsPerDivision    = 50
	DefaultPixelsPerSubdivision = 5
)

// Size is an integer width and height in pixels.
type Size struct {
	W, H int
}

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Settings describes the grid layout. It is a plain value; a GridSurface
// keeps its own copy.
type Settings struct {
	// TextureSize is the buffer size in pixels.
	TextureSize Size

	// TextureCenter is the origin of the grid. Grid lines and rulers
	// expand symmetrically from it, so it must lie inside the texture.
	TextureCenter Point

	// PixelsPerDivision is the spacing between grid lines.
	PixelsPerDivision int

	// PixelsPerSubdivision is the dot step along every dotted line.
	PixelsPerSubdivision int

	// Initial render flags applied by GridSurface.Configure.
	DrawGrid   bool
	DrawRulerX bool
	DrawRulerY bool
}

// SettingsOption adjusts Settings built by NewSettings.
type SettingsOption func(*Settings)

// NewSettings returns settings for a width x height texture, centered, with
// the default spacing and all render flags on.
//
// Example:
//
//	s := oscgrid.NewSettings(640, 480, oscgrid.WithDivision(40))
func NewSettings(width, height int, opts ...SettingsOption) Settings {
	s := Settings{
		TextureSize:          Size{W: width, H: height},
		TextureCenter:        Point{X: width / 2, Y: height / 2},
		PixelsPerDivision:    DefaultPixelsPerDivision,
		PixelsPerSubdivision: DefaultPixelsPerSubdivision,
		DrawGrid:             true,
		DrawRulerX:           true,
		DrawRulerY:           true,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithCenter sets the grid origin.
func WithCenter(x, y int) SettingsOption {
	return func(s *Settings) {
		s.TextureCenter = Point{X: x, Y: y}
	}
}

// WithDivision sets the spacing between grid lines.
func WithDivision(px int) SettingsOption {
	return func(s *Settings) {
		s.PixelsPerDivision = px
	}
}

// WithSubdivision sets the dot step.
func WithSubdivision(px int) SettingsOption {
	return func(s *Settings) {
		s.PixelsPerSubdivision = px
	}
}

// WithInitialFlags sets the render flags a surface adopts on Configure.
func WithInitialFlags(f RenderFlags) SettingsOption {
	return func(s *Settings) {
		s.DrawGrid = f.Grid
		s.DrawRulerX = f.RulerX
		s.DrawRulerY = f.RulerY
	}
}

// Validate reports whether the settings can be rendered.
// The error wraps ErrInvalidSize or ErrInvalidSettings.
func (s Settings) Validate() error {
	w, h := s.TextureSize.W, s.TextureSize.H
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, w, h)
	}
	if s.PixelsPerDivision < 1 {
		return fmt.Errorf("%w: pixelsPerDivision=%d", ErrInvalidSettings, s.PixelsPerDivision)
	}
	if s.PixelsPerSubdivision < 1 {
		return fmt.Errorf("%w: pixelsPerSubdivision=%d", ErrInvalidSettings, s.PixelsPerSubdivision)
	}
	c := s.TextureCenter
	if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h {
		return fmt.Errorf("%w: center (%d,%d) outside %dx%d", ErrInvalidSettings, c.X, c.Y, w, h)
	}
	return nil
}

// Flags returns the initial render flags, each taken from its own field.
func (s Settings) Flags() RenderFlags {
	return RenderFlags{
		Grid:   s.DrawGrid,
		RulerX: s.DrawRulerX,
		RulerY: s.DrawRulerY,
	}
}

// Divisions returns how many whole divisions fit between the center and the
// nearest texture edge, horizontally and vertically. Settings that fail
// Validate report zero.
func (s Settings) Divisions() (x, y int) {
	if s.Validate() != nil {
		return 0, 0
	}
	d := s.PixelsPerDivision
	c := s.TextureCenter
	x = min(c.X, s.TextureSize.W-1-c.X) / d
	y = min(c.Y, s.TextureSize.H-1-c.Y) / d
	return x, y
}
