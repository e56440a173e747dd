package oscgrid

// SurfaceOption configures a GridSurface during creation.
//
// Example:
//
//	gs := oscgrid.NewGridSurface(
//	    oscgrid.WithColors(oscgrid.Black, oscgrid.DarkGreen),
//	)
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for GridSurface creation.
type surfaceOptions struct {
	background RGBA
	grid       RGBA
	flags      *RenderFlags
}

// defaultSurfaceOptions returns the default surface options.
func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		background: Black,
		grid:       Green,
	}
}

// WithColors sets the background and grid colors.
func WithColors(background, grid RGBA) SurfaceOption {
	return func(o *surfaceOptions) {
		o.background = background
		o.grid = grid
	}
}

// WithFlags sets the render flags before the first Configure.
// Configure replaces them with the flags carried by its Settings.
func WithFlags(f RenderFlags) SurfaceOption {
	return func(o *surfaceOptions) {
		o.flags = &f
	}
}
