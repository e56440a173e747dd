// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenview shows an oscgrid surface in a desktop window.
//
// The window's update loop is the host tick: every frame calls
// RenderIfDirty, and pixels are written to the window texture only on the
// frames where the surface actually re-rendered. The G, X and Y keys toggle
// the grid and the two ruler bars.
package ebitenview

import (
	"github.com/gogpu/oscgrid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Options configures the window.
type Options struct {
	// Title is the window title (default: "oscgrid").
	Title string

	// Scale multiplies the buffer size to get the initial window size
	// (default: 2).
	Scale int

	// TPS is the tick rate (default: 60).
	TPS int
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "oscgrid"
	}
	if o.Scale < 1 {
		o.Scale = 2
	}
	if o.TPS < 1 {
		o.TPS = 60
	}
	return o
}

// toggleKeys maps keys to the flag they toggle.
var toggleKeys = map[ebiten.Key]oscgrid.Option{
	ebiten.KeyG: oscgrid.OptionGrid,
	ebiten.KeyX: oscgrid.OptionRulerX,
	ebiten.KeyY: oscgrid.OptionRulerY,
}

// Game implements ebiten.Game for a GridSurface.
type Game struct {
	surface *oscgrid.GridSurface
	img     *ebiten.Image
	scratch []byte
	width   int
	height  int
	pending bool
	shown   uint64 // surface generation staged last
	uploads int
}

// NewGame wraps a configured surface.
func NewGame(gs *oscgrid.GridSurface) (*Game, error) {
	if gs == nil || !gs.Configured() {
		return nil, oscgrid.ErrNotConfigured
	}
	s := gs.Settings()
	return &Game{surface: gs, width: s.TextureSize.W, height: s.TextureSize.H}, nil
}

// Run opens a window showing gs and blocks until it is closed.
func Run(gs *oscgrid.GridSurface, opts Options) error {
	g, err := NewGame(gs)
	if err != nil {
		return err
	}
	opts = opts.withDefaults()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(g.width*opts.Scale, g.height*opts.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)
	return ebiten.RunGame(g)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	for key, o := range toggleKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.surface.SetOption(o, !g.surface.Option(o))
		}
	}
	return g.tick()
}

// tick renders the surface if needed and stages the pixels for Draw
// whenever the surface holds a frame the window has not shown yet, including
// one rendered by another caller.
func (g *Game) tick() error {
	buf, _ := g.surface.RenderIfDirty()
	if buf == nil {
		return oscgrid.ErrNotConfigured
	}
	gen := g.surface.Generation()
	if gen == g.shown {
		return nil
	}
	g.shown = gen
	if len(g.scratch) != len(buf.Data()) {
		g.scratch = make([]byte, len(buf.Data()))
	}
	premultiply(g.scratch, buf.Data())
	g.width, g.height = buf.Width(), buf.Height()
	g.pending = true
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.pending {
		if g.img == nil || g.img.Bounds().Dx() != g.width || g.img.Bounds().Dy() != g.height {
			if g.img != nil {
				g.img.Deallocate()
			}
			g.img = ebiten.NewImage(g.width, g.height)
		}
		g.img.WritePixels(g.scratch)
		g.pending = false
		g.uploads++
	}
	if g.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.img, op)
}

// Layout implements ebiten.Game. The logical screen is the buffer size;
// ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// premultiply converts straight-alpha RGBA src into the premultiplied form
// ebiten images store.
func premultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		a := uint32(src[i+3])
		if a == 0xff {
			copy(dst[i:i+4], src[i:i+4])
			continue
		}
		dst[i+0] = uint8((uint32(src[i+0])*a + 127) / 255)
		dst[i+1] = uint8((uint32(src[i+1])*a + 127) / 255)
		dst[i+2] = uint8((uint32(src[i+2])*a + 127) / 255)
		dst[i+3] = uint8(a)
	}
}
