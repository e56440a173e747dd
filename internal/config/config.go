// Package config loads grid settings documents for oscgrid hosts.
//
// A document is a JSON object shaped like the oscilloscope settings asset:
//
//	{
//	  "textureSize":          {"x": 640, "y": 480},
//	  "textureCenter":        {"x": 320, "y": 240},
//	  "pixelsPerDivision":    50,
//	  "pixelsPerSubdivision": 5,
//	  "drawGrid":   true,
//	  "drawRulerX": true,
//	  "drawRulerY": true,
//	  "bgColor":   "#000000",
//	  "gridColor": "#33ff33"
//	}
//
// Every key is optional. Missing values fall back to oscgrid.NewSettings
// defaults, and a missing center is derived from the texture size. Values of
// the wrong JSON type are ignored; numbers that are not whole are rejected
// with ErrInvalidJSON.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/oscgrid"
	"github.com/tidwall/gjson"
)

// Default texture size when a document does not specify one.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// ErrInvalidJSON is returned when a document is not well-formed JSON.
var ErrInvalidJSON = errors.New("config: invalid JSON")

// Config is a parsed settings document.
type Config struct {
	Settings   oscgrid.Settings
	Background oscgrid.RGBA
	Grid       oscgrid.RGBA
}

// Default returns the configuration used when no document is given.
func Default() Config {
	return Config{
		Settings:   oscgrid.NewSettings(DefaultWidth, DefaultHeight),
		Background: oscgrid.Black,
		Grid:       oscgrid.Green,
	}
}

// Load reads and parses the document at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: read file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w (%s)", err, path)
	}
	return cfg, nil
}

// Parse parses a settings document and validates the resulting settings.
// Validation errors wrap oscgrid.ErrInvalidSize or oscgrid.ErrInvalidSettings.
func Parse(data []byte) (Config, error) {
	if !gjson.ValidBytes(data) {
		return Config{}, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return Config{}, fmt.Errorf("%w: top level must be an object", ErrInvalidJSON)
	}

	cfg := Default()
	s := &cfg.Settings

	w, err := intOr(doc, "textureSize.x", DefaultWidth)
	if err != nil {
		return Config{}, err
	}
	h, err := intOr(doc, "textureSize.y", DefaultHeight)
	if err != nil {
		return Config{}, err
	}
	*s = oscgrid.NewSettings(w, h)

	for _, f := range []struct {
		path string
		dst  *int
	}{
		{"textureCenter.x", &s.TextureCenter.X},
		{"textureCenter.y", &s.TextureCenter.Y},
		{"pixelsPerDivision", &s.PixelsPerDivision},
		{"pixelsPerSubdivision", &s.PixelsPerSubdivision},
	} {
		if *f.dst, err = intOr(doc, f.path, *f.dst); err != nil {
			return Config{}, err
		}
	}
	s.DrawGrid = boolOr(doc.Get("drawGrid"), s.DrawGrid)
	s.DrawRulerX = boolOr(doc.Get("drawRulerX"), s.DrawRulerX)
	s.DrawRulerY = boolOr(doc.Get("drawRulerY"), s.DrawRulerY)

	if cfg.Background, err = colorOr(doc.Get("bgColor"), cfg.Background); err != nil {
		return Config{}, err
	}
	if cfg.Grid, err = colorOr(doc.Get("gridColor"), cfg.Grid); err != nil {
		return Config{}, err
	}

	if err := s.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// intOr reads the integer at path. Non-numbers fall back to def; fractional
// or out-of-range numbers are rejected.
func intOr(doc gjson.Result, path string, def int) (int, error) {
	r := doc.Get(path)
	if !r.Exists() || r.Type != gjson.Number {
		return def, nil
	}
	if r.Num != math.Trunc(r.Num) || r.Num < math.MinInt32 || r.Num > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be an integer, got %s", ErrInvalidJSON, path, r.Raw)
	}
	return int(r.Num), nil
}

func boolOr(r gjson.Result, def bool) bool {
	if !r.Exists() || !r.IsBool() {
		return def
	}
	return r.Bool()
}

func colorOr(r gjson.Result, def oscgrid.RGBA) (oscgrid.RGBA, error) {
	if !r.Exists() {
		return def, nil
	}
	c, err := oscgrid.ParseHex(r.String())
	if err != nil {
		return oscgrid.RGBA{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}
