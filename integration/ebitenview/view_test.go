// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"errors"
	"testing"

	"github.com/gogpu/oscgrid"
	"github.com/google/go-cmp/cmp"
)

func TestNewGame(t *testing.T) {
	if _, err := NewGame(nil); !errors.Is(err, oscgrid.ErrNotConfigured) {
		t.Errorf("NewGame(nil) error = %v, want %v", err, oscgrid.ErrNotConfigured)
	}
	if _, err := NewGame(oscgrid.NewGridSurface()); !errors.Is(err, oscgrid.ErrNotConfigured) {
		t.Errorf("NewGame(unconfigured) error = %v, want %v", err, oscgrid.ErrNotConfigured)
	}

	gs := oscgrid.NewGridSurface()
	if err := gs.Configure(oscgrid.NewSettings(320, 200)); err != nil {
		t.Fatal(err)
	}
	g, err := NewGame(gs)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if w, h := g.Layout(1920, 1080); w != 320 || h != 200 {
		t.Errorf("Layout() = %dx%d, want 320x200", w, h)
	}
}

func TestGameTick(t *testing.T) {
	gs := oscgrid.NewGridSurface(oscgrid.WithColors(oscgrid.Black, oscgrid.White))
	if err := gs.Configure(oscgrid.NewSettings(16, 12)); err != nil {
		t.Fatal(err)
	}
	g, _ := NewGame(gs)

	if err := g.tick(); err != nil {
		t.Fatalf("tick() error = %v", err)
	}
	if !g.pending {
		t.Fatal("first tick did not stage pixels")
	}
	if diff := cmp.Diff(gs.Buffer().Data(), g.scratch); diff != "" {
		t.Errorf("staged pixels (-want +got):\n%s", diff)
	}

	// Draw would clear pending; a clean tick must not stage again.
	g.pending = false
	if err := g.tick(); err != nil {
		t.Fatalf("tick() error = %v", err)
	}
	if g.pending {
		t.Error("clean tick staged pixels")
	}

	gs.SetOption(oscgrid.OptionRulerY, !gs.Option(oscgrid.OptionRulerY))
	_ = g.tick()
	if !g.pending {
		t.Error("tick after SetOption did not stage pixels")
	}
}

func TestGameTick_PreRendered(t *testing.T) {
	gs := oscgrid.NewGridSurface(oscgrid.WithColors(oscgrid.Black, oscgrid.White))
	if err := gs.Configure(oscgrid.NewSettings(16, 12)); err != nil {
		t.Fatal(err)
	}
	if _, ok := gs.RenderIfDirty(); !ok {
		t.Fatal("RenderIfDirty() did not render")
	}

	g, _ := NewGame(gs)
	if err := g.tick(); err != nil {
		t.Fatalf("tick() error = %v", err)
	}
	if !g.pending {
		t.Fatal("tick on a pre-rendered surface did not stage pixels")
	}
	if diff := cmp.Diff(gs.Buffer().Data(), g.scratch); diff != "" {
		t.Errorf("staged pixels (-want +got):\n%s", diff)
	}

	// A render consumed by someone else is still staged.
	g.pending = false
	gs.SetOption(oscgrid.OptionGrid, false)
	gs.RenderIfDirty()
	_ = g.tick()
	if !g.pending {
		t.Error("tick after an outside render did not stage pixels")
	}
}

func TestGameTick_Resize(t *testing.T) {
	gs := oscgrid.NewGridSurface()
	if err := gs.Configure(oscgrid.NewSettings(16, 12)); err != nil {
		t.Fatal(err)
	}
	g, _ := NewGame(gs)
	_ = g.tick()

	if err := gs.Configure(oscgrid.NewSettings(40, 30)); err != nil {
		t.Fatal(err)
	}
	_ = g.tick()
	if w, h := g.Layout(0, 0); w != 40 || h != 30 {
		t.Errorf("Layout() after resize = %dx%d, want 40x30", w, h)
	}
	if len(g.scratch) != 40*30*4 {
		t.Errorf("len(scratch) = %d, want %d", len(g.scratch), 40*30*4)
	}
}

func TestPremultiply(t *testing.T) {
	src := []byte{
		255, 128, 0, 255,
		255, 128, 0, 128,
		200, 200, 200, 0,
	}
	dst := make([]byte, len(src))
	premultiply(dst, src)

	want := []byte{
		255, 128, 0, 255,
		128, 64, 0, 128,
		0, 0, 0, 0,
	}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("premultiply (-want +got):\n%s", diff)
	}
}

func TestOptionsDefaults(t *testing.T) {
	got := Options{}.withDefaults()
	want := Options{Title: "oscgrid", Scale: 2, TPS: 60}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("withDefaults() (-want +got):\n%s", diff)
	}
}
