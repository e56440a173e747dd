// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridtexture

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/oscgrid"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("gridtexture: canvas is closed")

	// ErrNilSurface is returned when a nil GridSurface is passed.
	ErrNilSurface = errors.New("gridtexture: nil GridSurface")
)

// textureDestroyer is the interface for destroying textures.
type textureDestroyer interface {
	Destroy()
}

// textureUpdater is implemented by textures that accept new pixel data of
// the same size.
type textureUpdater interface {
	UpdateData(data []byte) error
}

// Canvas binds a GridSurface to a GPU texture. The texture is created
// lazily and re-uploaded only when the surface actually re-rendered.
type Canvas struct {
	surface    *oscgrid.GridSurface
	texture    any // *pendingTexture until RenderTo creates the real one
	oldTexture any // previous texture awaiting deferred destruction
	width      int
	height     int
	shown      uint64 // surface generation in texture
	uploads    int
	closed     bool
}

// New creates a Canvas for a configured surface.
func New(gs *oscgrid.GridSurface) (*Canvas, error) {
	if gs == nil {
		return nil, ErrNilSurface
	}
	if !gs.Configured() {
		return nil, oscgrid.ErrNotConfigured
	}
	s := gs.Settings()
	return &Canvas{
		surface: gs,
		width:   s.TextureSize.W,
		height:  s.TextureSize.H,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(gs *oscgrid.GridSurface) *Canvas {
	c, err := New(gs)
	if err != nil {
		panic(err)
	}
	return c
}

// Surface returns the wrapped surface, or nil if the canvas is closed.
func (c *Canvas) Surface() *oscgrid.GridSurface {
	if c.closed {
		return nil
	}
	return c.surface
}

// Size returns the size of the current texture.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Format returns the texture format of the uploaded pixels: 8-bit RGBA,
// straight alpha, rows top to bottom.
func (c *Canvas) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Uploads returns how many times pixel data has been staged or uploaded.
func (c *Canvas) Uploads() int {
	return c.uploads
}

// Flush renders the surface if it is dirty and brings the texture up to
// date with the latest render, whoever triggered it. It returns the texture, which is a pending placeholder until the
// first RenderTo creates the GPU texture.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	buf, _ := c.surface.RenderIfDirty()
	if buf == nil {
		return nil, oscgrid.ErrNotConfigured
	}
	gen := c.surface.Generation()

	// A reconfigured size needs a new texture. The old one may still be
	// referenced by in-flight GPU work, so it is destroyed only after the
	// replacement has been created in RenderToEx.
	if buf.Width() != c.width || buf.Height() != c.height {
		c.retire()
		c.width, c.height = buf.Width(), buf.Height()
	}

	if c.texture != nil && gen == c.shown {
		return c.texture, nil
	}

	switch tex := c.texture.(type) {
	case nil:
		c.texture = c.stage(buf)
	case *pendingTexture:
		copy(tex.data, buf.Data())
		c.uploads++
	case textureUpdater:
		if err := tex.UpdateData(buf.Data()); err != nil {
			return nil, fmt.Errorf("gridtexture: texture update failed: %w", err)
		}
		c.uploads++
	default:
		// Texture cannot be updated in place; recreate it.
		c.retire()
		c.texture = c.stage(buf)
	}
	c.shown = gen

	oscgrid.Logger().Debug("gridtexture: flushed", "width", c.width, "height", c.height, "uploads", c.uploads)
	return c.texture, nil
}

// stage copies the buffer into a pending texture. The copy is needed
// because the surface overwrites its buffer on the next render.
func (c *Canvas) stage(buf *oscgrid.PixelBuffer) *pendingTexture {
	data := make([]byte, len(buf.Data()))
	copy(data, buf.Data())
	c.uploads++
	return &pendingTexture{width: buf.Width(), height: buf.Height(), data: data}
}

// retire moves the current texture aside for deferred destruction.
func (c *Canvas) retire() {
	if c.texture == nil {
		return
	}
	if _, pending := c.texture.(*pendingTexture); !pending {
		destroy(c.oldTexture)
		c.oldTexture = c.texture
	}
	c.texture = nil
}

// Texture returns the current texture without flushing.
func (c *Canvas) Texture() any {
	return c.texture
}

// Close releases the textures. The surface is left to its owner.
// Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	destroy(c.oldTexture)
	c.oldTexture = nil
	destroy(c.texture)
	c.texture = nil
	c.surface = nil
	return nil
}

func destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

// pendingTexture holds staged pixels until RenderTo has access to a
// texture creator.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
