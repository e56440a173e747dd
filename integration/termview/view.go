// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termview previews an oscgrid surface in a true-color terminal.
//
// Each terminal cell shows two vertically stacked pixels using the upper
// half block glyph: the foreground color is the upper pixel, the background
// color the lower one. Buffers larger than the terminal are sampled down
// with nearest-neighbour; smaller buffers are drawn at 1:1 in the top-left
// corner.
package termview

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/oscgrid"
)

// HalfBlock is the glyph drawn in every cell.
const HalfBlock = '▀'

// ErrNilScreen is returned when a nil tcell.Screen is passed.
var ErrNilScreen = errors.New("termview: nil screen")

// Draw paints buf onto s. It does not call Show.
func Draw(s tcell.Screen, buf *oscgrid.PixelBuffer) {
	sw, sh := s.Size()
	bw, bh := buf.Width(), buf.Height()
	dw, dh := min(sw, bw), min(2*sh, bh)
	if dw < 1 || dh < 1 {
		return
	}

	s.Clear()
	rows := (dh + 1) / 2
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < dw; cx++ {
			x := cx * bw / dw
			style := tcell.StyleDefault.Foreground(cellColor(buf, x, (2*cy)*bh/dh))
			if py := 2*cy + 1; py < dh {
				style = style.Background(cellColor(buf, x, py*bh/dh))
			}
			s.SetContent(cx, cy, HalfBlock, nil, style)
		}
	}
}

func cellColor(buf *oscgrid.PixelBuffer, x, y int) tcell.Color {
	n := buf.GetPixel(x, y).NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// View drives a surface onto a terminal screen and maps keys to the
// surface's render flags: g toggles the grid, x and y the ruler bars,
// q or Escape quits.
type View struct {
	screen  tcell.Screen
	surface *oscgrid.GridSurface
	redraw  bool
	shown   uint64
	frames  int
}

// New binds a configured surface to an initialized screen.
func New(s tcell.Screen, gs *oscgrid.GridSurface) (*View, error) {
	if s == nil {
		return nil, ErrNilScreen
	}
	if gs == nil || !gs.Configured() {
		return nil, oscgrid.ErrNotConfigured
	}
	return &View{screen: s, surface: gs}, nil
}

// Tick re-renders the surface if it is dirty and repaints the screen when
// the surface changed or the terminal was resized. It reports whether the
// screen was repainted.
func (v *View) Tick() bool {
	buf, _ := v.surface.RenderIfDirty()
	if buf == nil {
		return false
	}
	gen := v.surface.Generation()
	if gen == v.shown && !v.redraw {
		return false
	}
	Draw(v.screen, buf)
	v.screen.Show()
	v.shown = gen
	v.redraw = false
	v.frames++
	return true
}

// Frames returns how many times the screen was repainted.
func (v *View) Frames() int {
	return v.frames
}

// HandleEvent applies one terminal event. It returns false when the view
// should stop.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.redraw = true
	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			return false
		}
		if e.Key() != tcell.KeyRune {
			return true
		}
		switch e.Rune() {
		case 'q', 'Q':
			return false
		case 'g', 'G':
			v.toggle(oscgrid.OptionGrid)
		case 'x', 'X':
			v.toggle(oscgrid.OptionRulerX)
		case 'y', 'Y':
			v.toggle(oscgrid.OptionRulerY)
		}
	}
	return true
}

func (v *View) toggle(o oscgrid.Option) {
	v.surface.SetOption(o, !v.surface.Option(o))
}

// Run opens the terminal, shows gs until the user quits, and restores the
// terminal.
func Run(gs *oscgrid.GridSurface) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	v, err := New(s, gs)
	if err != nil {
		return err
	}
	v.Tick()
	for {
		ev := s.PollEvent()
		if ev == nil || !v.HandleEvent(ev) {
			return nil
		}
		v.Tick()
	}
}
