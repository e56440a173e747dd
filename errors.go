package oscgrid

import "errors"

// Common errors for grid configuration.
var (
	// ErrInvalidSize is returned when a buffer width or height is less than one.
	ErrInvalidSize = errors.New("oscgrid: invalid size")

	// ErrInvalidSettings is returned when grid spacing is less than one pixel
	// or the grid center lies outside the texture.
	ErrInvalidSettings = errors.New("oscgrid: invalid settings")

	// ErrNotConfigured is returned by display integrations when the surface
	// has not been configured yet.
	ErrNotConfigured = errors.New("oscgrid: surface not configured")
)
