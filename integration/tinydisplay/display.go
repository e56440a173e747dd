// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tinydisplay pushes rendered grids to small panels that implement
// tinygo.org/x/drivers.Displayer (ST7789, ILI9341, SSD1306 and friends).
//
// Panels are written pixel by pixel, so the surface should be configured to
// the panel size (see SettingsFor); mismatched sizes are fitted with
// nearest-neighbour sampling, which can drop single-pixel dots when
// shrinking.
package tinydisplay

import (
	"errors"
	"image/color"

	"github.com/gogpu/oscgrid"
	"tinygo.org/x/drivers"
)

// ErrNoDisplay is returned when a nil or zero-sized display is used.
var ErrNoDisplay = errors.New("tinydisplay: no display")

// SettingsFor returns grid settings sized to the panel.
func SettingsFor(d drivers.Displayer, opts ...oscgrid.SettingsOption) (oscgrid.Settings, error) {
	if d == nil {
		return oscgrid.Settings{}, ErrNoDisplay
	}
	w, h := d.Size()
	if w < 1 || h < 1 {
		return oscgrid.Settings{}, ErrNoDisplay
	}
	return oscgrid.NewSettings(int(w), int(h), opts...), nil
}

// Blit copies buf onto the panel, scaled to the panel size, and calls
// Display.
func Blit(d drivers.Displayer, buf *oscgrid.PixelBuffer) error {
	if d == nil {
		return ErrNoDisplay
	}
	if buf == nil {
		return oscgrid.ErrNotConfigured
	}
	pw, ph := d.Size()
	dw, dh := int(pw), int(ph)
	if dw < 1 || dh < 1 {
		return ErrNoDisplay
	}

	sw, sh := buf.Width(), buf.Height()
	data := buf.Data()
	for y := 0; y < dh; y++ {
		sy := y * sh / dh
		for x := 0; x < dw; x++ {
			sx := x * sw / dw
			i := (sy*sw + sx) * 4
			d.SetPixel(int16(x), int16(y), premultiplied(data[i], data[i+1], data[i+2], data[i+3]))
		}
	}
	return d.Display()
}

// premultiplied builds the alpha-premultiplied color.RGBA drivers expect.
func premultiplied(r, g, b, a uint8) color.RGBA {
	if a == 0xff {
		return color.RGBA{R: r, G: g, B: b, A: a}
	}
	m := uint32(a)
	return color.RGBA{
		R: uint8((uint32(r)*m + 127) / 255),
		G: uint8((uint32(g)*m + 127) / 255),
		B: uint8((uint32(b)*m + 127) / 255),
		A: a,
	}
}

// Presenter drives a surface onto a panel from the host's main loop.
type Presenter struct {
	surface *oscgrid.GridSurface
	display drivers.Displayer
	shown   uint64 // surface generation on the panel
	frames  int
}

// NewPresenter binds a configured surface to a display.
func NewPresenter(gs *oscgrid.GridSurface, d drivers.Displayer) (*Presenter, error) {
	if d == nil {
		return nil, ErrNoDisplay
	}
	if gs == nil || !gs.Configured() {
		return nil, oscgrid.ErrNotConfigured
	}
	return &Presenter{surface: gs, display: d}, nil
}

// Tick renders the surface if it is dirty and pushes it to the panel when
// the panel does not show the latest render yet. A failed push is retried on
// the next Tick. It reports whether the panel was updated.
func (p *Presenter) Tick() (bool, error) {
	buf, _ := p.surface.RenderIfDirty()
	if buf == nil {
		return false, oscgrid.ErrNotConfigured
	}
	gen := p.surface.Generation()
	if gen == p.shown {
		return false, nil
	}
	if err := Blit(p.display, buf); err != nil {
		return false, err
	}
	p.shown = gen
	p.frames++
	return true, nil
}

// Frames returns how many frames have been pushed to the panel.
func (p *Presenter) Frames() int {
	return p.frames
}
