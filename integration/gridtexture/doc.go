// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gridtexture uploads a rendered oscgrid surface to a GPU texture.
//
// The data flow is:
//
//	oscgrid.GridSurface (render if dirty) -> PixelBuffer (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	gs := oscgrid.NewGridSurface()
//	_ = gs.Configure(oscgrid.NewSettings(640, 480))
//
//	canvas, err := gridtexture.New(gs)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// Toggling flags on the surface between frames causes exactly one re-render
// and one texture upload on the next RenderTo; unchanged frames only draw the
// existing texture.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. It must be driven from the same
// goroutine as the surface it wraps.
package gridtexture
