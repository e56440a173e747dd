package oscgrid

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// PixelBuffer is a rectangular, row-major RGBA pixel buffer.
//
// Pixels are stored as straight (non-premultiplied) 8-bit RGBA, 4 bytes per
// pixel. Every write is a flat overwrite; there is no blending.
type PixelBuffer struct {
	width  int
	height int
	data   []uint8
}

// Allocate creates a buffer of width*height pixels, all transparent.
// Returns an error wrapping ErrInvalidSize if either dimension is below one.
func Allocate(width, height int) (*PixelBuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, width, height)
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the buffer.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Len returns the number of pixels, always Width()*Height().
func (b *PixelBuffer) Len() int {
	return b.width * b.height
}

// Data returns the raw pixel data (RGBA format).
// The slice aliases the buffer and is overwritten by the next render.
func (b *PixelBuffer) Data() []uint8 {
	return b.data
}

// Fill overwrites every pixel with c.
func (b *PixelBuffer) Fill(c RGBA) {
	n := c.NRGBA()
	if len(b.data) == 0 {
		return
	}

	// Seed one pixel and double it across the slice.
	b.data[0], b.data[1], b.data[2], b.data[3] = n.R, n.G, n.B, n.A
	for i := 4; i < len(b.data); i *= 2 {
		copy(b.data[i:], b.data[:i])
	}
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the buffer are ignored.
func (b *PixelBuffer) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	n := c.NRGBA()
	i := (y*b.width + x) * 4
	b.data[i+0] = n.R
	b.data[i+1] = n.G
	b.data[i+2] = n.B
	b.data[i+3] = n.A
}

// GetPixel returns the color of a single pixel.
// Coordinates outside the buffer return Transparent.
func (b *PixelBuffer) GetPixel(x, y int) RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	return FromColor(b.nrgbaAt(x, y))
}

func (b *PixelBuffer) nrgbaAt(x, y int) color.NRGBA {
	i := (y*b.width + x) * 4
	return color.NRGBA{R: b.data[i+0], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// Resize changes the buffer dimensions and clears it to clear.
//
// When the dimensions differ the old pixel storage is dropped and a new one
// allocated; otherwise the existing storage is only refilled. An invalid size
// leaves the buffer untouched and returns an error wrapping ErrInvalidSize.
func (b *PixelBuffer) Resize(width, height int, clear RGBA) error {
	if width != b.width || height != b.height {
		nb, err := Allocate(width, height)
		if err != nil {
			return err
		}
		*b = *nb
	}
	b.Fill(clear)
	return nil
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	data := make([]uint8, len(b.data))
	copy(data, b.data)
	return &PixelBuffer{width: b.width, height: b.height, data: data}
}

// ToImage converts the buffer to an image.NRGBA.
func (b *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// Scaled resamples the buffer to width x height with bilinear filtering.
func (b *PixelBuffer) Scaled(width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), b.ToImage(), b.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes the buffer to w in PNG format.
func (b *PixelBuffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.ToImage())
}

// SavePNG saves the buffer to a PNG file.
func (b *PixelBuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (b *PixelBuffer) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.NRGBA{}
	}
	return b.nrgbaAt(x, y)
}

// Bounds implements the image.Image interface.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *PixelBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
