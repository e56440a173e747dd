// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridtexture

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Rendering errors.
var (
	// ErrInvalidDrawContext is returned when the texture cannot be drawn by
	// the draw context.
	ErrInvalidDrawContext = errors.New("gridtexture: texture is not a gpucontext.Texture")

	// ErrInvalidRenderer is returned when the draw context has no texture creator.
	ErrInvalidRenderer = errors.New("gridtexture: draw context has no TextureCreator")
)

// RenderOptions controls where the grid texture is drawn.
type RenderOptions struct {
	// X, Y is the position to draw the texture (default: 0, 0).
	X, Y float32
}

// RenderTo draws the grid at (0, 0), rendering and uploading first if the
// surface is dirty.
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToEx(dc, RenderOptions{})
}

// RenderToEx draws the grid with additional options.
func (c *Canvas) RenderToEx(dc gpucontext.TextureDrawer, opts RenderOptions) error {
	tex, err := c.Flush()
	if err != nil {
		return err
	}

	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("gridtexture: NewTextureFromRGBA failed: %w", err)
		}

		// Grid pixels are straight alpha.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(false)
		}

		c.texture = realTex
		tex = realTex

		// The new texture's upload waited for the GPU, so the old one is
		// no longer referenced.
		destroy(c.oldTexture)
		c.oldTexture = nil
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, opts.X, opts.Y)
}
