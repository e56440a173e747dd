// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridtexture

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/oscgrid"
	"github.com/google/go-cmp/cmp"
)

// fakeTexture is an updatable, destroyable texture.
type fakeTexture struct {
	data      []byte
	updated   int
	destroyed bool
}

func (f *fakeTexture) UpdateData(data []byte) error {
	f.data = append(f.data[:0], data...)
	f.updated++
	return nil
}

func (f *fakeTexture) Destroy() { f.destroyed = true }

// fixedTexture can only be destroyed.
type fixedTexture struct {
	destroyed bool
}

func (f *fixedTexture) Destroy() { f.destroyed = true }

func newSurface(t *testing.T, w, h int) *oscgrid.GridSurface {
	t.Helper()
	gs := oscgrid.NewGridSurface()
	if err := gs.Configure(oscgrid.NewSettings(w, h, oscgrid.WithDivision(10))); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	return gs
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		gs      *oscgrid.GridSurface
		wantErr error
	}{
		{"nil surface", nil, ErrNilSurface},
		{"unconfigured", oscgrid.NewGridSurface(), oscgrid.ErrNotConfigured},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.gs)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
			if c != nil {
				t.Error("New() returned a canvas alongside an error")
			}
		})
	}

	c, err := New(newSurface(t, 40, 30))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()
	if w, h := c.Size(); w != 40 || h != 30 {
		t.Errorf("Size() = %dx%d, want 40x30", w, h)
	}
	if c.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", c.Format())
	}
}

func TestMustNew(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustNew(nil) did not panic")
		}
	}()
	_ = MustNew(nil)
}

func TestCanvasFlush(t *testing.T) {
	gs := newSurface(t, 20, 20)
	c := MustNew(gs)
	defer c.Close()

	tex, err := c.Flush()
	if err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	pending, ok := tex.(*pendingTexture)
	if !ok {
		t.Fatalf("first Flush() returned %T, want *pendingTexture", tex)
	}
	if gs.IsDirty() {
		t.Error("surface still dirty after Flush")
	}
	if diff := cmp.Diff(gs.Buffer().Data(), pending.data); diff != "" {
		t.Errorf("staged pixels differ from surface (-want +got):\n%s", diff)
	}

	// Nothing changed: same texture, no new upload.
	tex2, err := c.Flush()
	if err != nil {
		t.Fatalf("second Flush() error = %v", err)
	}
	if tex2 != tex || c.Uploads() != 1 {
		t.Errorf("second Flush(): same texture = %v, uploads = %d, want true, 1", tex2 == tex, c.Uploads())
	}
}

func TestCanvasFlush_PendingCopiesPixels(t *testing.T) {
	gs := newSurface(t, 20, 20)
	c := MustNew(gs)
	defer c.Close()

	tex, _ := c.Flush()
	pending := tex.(*pendingTexture)
	before := append([]byte(nil), pending.data...)

	gs.SetOption(oscgrid.OptionGrid, false)
	if _, err := c.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if c.Uploads() != 2 {
		t.Errorf("Uploads() = %d, want 2", c.Uploads())
	}
	if diff := cmp.Diff(gs.Buffer().Data(), pending.data); diff != "" {
		t.Errorf("pending texture not refreshed (-want +got):\n%s", diff)
	}
	if cmp.Equal(before, pending.data) {
		t.Error("pending data unchanged after toggling the grid off")
	}
}

func TestCanvasFlush_UpdatesTexture(t *testing.T) {
	gs := newSurface(t, 16, 16)
	c := MustNew(gs)
	defer c.Close()

	_, _ = c.Flush()
	fake := &fakeTexture{}
	c.texture = fake

	if _, err := c.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if fake.updated != 0 {
		t.Errorf("clean Flush updated texture %d times", fake.updated)
	}

	gs.SetColors(oscgrid.White, oscgrid.Black)
	tex, err := c.Flush()
	if err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if tex != fake || fake.updated != 1 {
		t.Errorf("Flush(): texture reused = %v, updates = %d, want true, 1", tex == fake, fake.updated)
	}
	if diff := cmp.Diff(gs.Buffer().Data(), fake.data); diff != "" {
		t.Errorf("uploaded pixels (-want +got):\n%s", diff)
	}
}

func TestCanvasFlush_RenderedElsewhere(t *testing.T) {
	gs := newSurface(t, 16, 16)
	c := MustNew(gs)
	defer c.Close()

	_, _ = c.Flush()
	fake := &fakeTexture{}
	c.texture = fake

	// Another display consumes the render before the canvas flushes.
	gs.SetOption(oscgrid.OptionRulerX, false)
	if _, ok := gs.RenderIfDirty(); !ok {
		t.Fatal("RenderIfDirty() did not render")
	}

	if _, err := c.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if fake.updated != 1 {
		t.Fatalf("texture updated %d times, want 1", fake.updated)
	}
	if diff := cmp.Diff(gs.Buffer().Data(), fake.data); diff != "" {
		t.Errorf("uploaded pixels (-want +got):\n%s", diff)
	}

	if _, err := c.Flush(); err != nil || fake.updated != 1 {
		t.Errorf("clean Flush() = %v, updates = %d, want nil, 1", err, fake.updated)
	}
}

func TestCanvasFlush_ResizeDefersDestroy(t *testing.T) {
	gs := newSurface(t, 16, 16)
	c := MustNew(gs)

	_, _ = c.Flush()
	fake := &fakeTexture{}
	c.texture = fake

	if err := gs.Configure(oscgrid.NewSettings(32, 8)); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	tex, err := c.Flush()
	if err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	pending, ok := tex.(*pendingTexture)
	if !ok {
		t.Fatalf("Flush() after resize returned %T, want *pendingTexture", tex)
	}
	if pending.width != 32 || pending.height != 8 || len(pending.data) != 32*8*4 {
		t.Errorf("pending texture = %dx%d (%d bytes), want 32x8", pending.width, pending.height, len(pending.data))
	}
	if fake.destroyed {
		t.Error("old texture destroyed before its replacement was created")
	}
	if w, h := c.Size(); w != 32 || h != 8 {
		t.Errorf("Size() = %dx%d, want 32x8", w, h)
	}

	_ = c.Close()
	if !fake.destroyed {
		t.Error("Close() did not destroy the deferred texture")
	}
}

func TestCanvasFlush_FixedTextureRecreated(t *testing.T) {
	gs := newSurface(t, 16, 16)
	c := MustNew(gs)
	defer c.Close()

	_, _ = c.Flush()
	fixed := &fixedTexture{}
	c.texture = fixed

	gs.MarkDirty()
	tex, err := c.Flush()
	if err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if _, ok := tex.(*pendingTexture); !ok {
		t.Errorf("Flush() returned %T, want *pendingTexture", tex)
	}
	if c.oldTexture != fixed {
		t.Error("non-updatable texture was not retired")
	}
}

func TestCanvasClose(t *testing.T) {
	c := MustNew(newSurface(t, 10, 10))
	fake := &fakeTexture{}
	c.texture = fake

	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !fake.destroyed {
		t.Error("Close() did not destroy the texture")
	}
	if c.Surface() != nil {
		t.Error("Surface() after Close should return nil")
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := c.Flush(); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Flush() on closed canvas error = %v, want %v", err, ErrCanvasClosed)
	}
}
