package oscgrid

// fillTarget is what a render pass draws through: a Target that can also be
// cleared in one call.
type fillTarget interface {
	Target
	Fill(c RGBA)
}

// GridSurface owns a PixelBuffer, the grid settings, the render flags and a
// dirty flag. It redraws the grid only when something changed since the
// last render.
//
// The host drives it explicitly: Configure once (and again whenever the
// settings change), toggle flags with SetOption, then call RenderIfDirty
// from its own tick or event loop and hand the returned buffer to a display.
//
// GridSurface is NOT safe for concurrent use. The buffer returned by
// RenderIfDirty is owned by the surface; treat it as read-only and copy it
// if it must outlive the next render.
type GridSurface struct {
	settings   Settings
	configured bool
	flags      RenderFlags
	background RGBA
	grid       RGBA
	buf        *PixelBuffer
	dirty      bool
	generation uint64
}

// renderTarget adapts the buffer for a render pass.
var renderTarget = func(b *PixelBuffer) fillTarget { return b }

// NewGridSurface creates an unconfigured surface. Call Configure before
// the first render.
func NewGridSurface(opts ...SurfaceOption) *GridSurface {
	o := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	gs := &GridSurface{
		background: o.background,
		grid:       o.grid,
		dirty:      true,
	}
	if o.flags != nil {
		gs.flags = *o.flags
	}
	return gs
}

// Configure validates s, stores it, adopts its render flags and marks the
// surface dirty. The first successful call allocates the buffer; later size
// changes are applied by the next RenderIfDirty, so a buffer already handed
// out keeps the last rendered frame until then.
//
// On error nothing changes: no buffer is allocated and the previous
// settings stay in effect.
func (gs *GridSurface) Configure(s Settings) error {
	if err := s.Validate(); err != nil {
		Logger().Warn("oscgrid: configuration rejected", "err", err)
		return err
	}

	if gs.buf == nil {
		w, h := s.TextureSize.W, s.TextureSize.H
		buf, err := Allocate(w, h)
		if err != nil {
			return err
		}
		gs.buf = buf
		Logger().Debug("oscgrid: buffer allocated", "width", w, "height", h)
	}

	gs.settings = s
	gs.flags = s.Flags()
	gs.configured = true
	gs.dirty = true
	return nil
}

// SetOption sets render flag o to v. The surface is marked dirty only when
// the value actually changed; the return value reports whether it did.
func (gs *GridSurface) SetOption(o Option, v bool) bool {
	if !gs.flags.set(o, v) {
		return false
	}
	gs.dirty = true
	return true
}

// Option returns the current value of render flag o.
func (gs *GridSurface) Option(o Option) bool {
	return gs.flags.Get(o)
}

// Flags returns all render flags.
func (gs *GridSurface) Flags() RenderFlags {
	return gs.flags
}

// SetColors sets the background and grid colors and marks the surface dirty.
func (gs *GridSurface) SetColors(background, grid RGBA) {
	gs.background = background
	gs.grid = grid
	gs.dirty = true
}

// Colors returns the background and grid colors.
func (gs *GridSurface) Colors() (background, grid RGBA) {
	return gs.background, gs.grid
}

// MarkDirty forces the next RenderIfDirty to redraw.
func (gs *GridSurface) MarkDirty() {
	gs.dirty = true
}

// IsDirty reports whether the buffer is stale.
func (gs *GridSurface) IsDirty() bool {
	return gs.dirty
}

// Configured reports whether Configure has succeeded at least once.
func (gs *GridSurface) Configured() bool {
	return gs.configured
}

// Settings returns the active settings.
func (gs *GridSurface) Settings() Settings {
	return gs.settings
}

// Generation counts completed renders; it is zero until the first one.
// A display sharing the surface with other callers compares it with the
// generation it last showed, since its own RenderIfDirty may find the
// render already done.
func (gs *GridSurface) Generation() uint64 {
	return gs.generation
}

// Buffer returns the buffer as of the last render, or nil before the first
// successful Configure.
func (gs *GridSurface) Buffer() *PixelBuffer {
	return gs.buf
}

// RenderIfDirty redraws the grid if anything changed since the last render.
//
// It returns the buffer and whether a render happened. When the surface is
// clean the cached buffer is returned without touching a pixel. Before the
// first successful Configure it returns (nil, false).
func (gs *GridSurface) RenderIfDirty() (*PixelBuffer, bool) {
	if !gs.configured {
		return nil, false
	}
	if !gs.dirty {
		return gs.buf, false
	}

	if w, h := gs.settings.TextureSize.W, gs.settings.TextureSize.H; gs.buf.Width() != w || gs.buf.Height() != h {
		if err := gs.buf.Resize(w, h, gs.background); err != nil {
			return gs.buf, false
		}
		Logger().Debug("oscgrid: buffer reallocated", "width", w, "height", h)
	}

	t := renderTarget(gs.buf)
	t.Fill(gs.background)
	RenderGrid(t, gs.settings, gs.flags, gs.grid)
	gs.dirty = false
	gs.generation++

	Logger().Debug("oscgrid: grid rendered",
		"width", gs.buf.Width(),
		"height", gs.buf.Height(),
		"grid", gs.flags.Grid,
		"rulerX", gs.flags.RulerX,
		"rulerY", gs.flags.RulerY)
	return gs.buf, true
}
