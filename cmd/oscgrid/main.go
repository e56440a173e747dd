// Command oscgrid renders an oscilloscope grid texture.
//
// Settings come from an optional JSON document (-config) and are then
// overridden by any flag given explicitly on the command line. The grid is
// written to a PNG file, shown in a window (-window) or previewed in the
// terminal (-term).
//
//	oscgrid -width 640 -height 480 -div 50 -sub 5 -output grid.png
//	oscgrid -config scope.json -rulery=false -window
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/oscgrid"
	"github.com/gogpu/oscgrid/integration/ebitenview"
	"github.com/gogpu/oscgrid/integration/termview"
	"github.com/gogpu/oscgrid/internal/config"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("oscgrid: %v", err)
	}
}

var errPreviewConflict = errors.New("-window and -term are mutually exclusive")

type options struct {
	config  string
	width   int
	height  int
	div     int
	sub     int
	grid    bool
	rulerX  bool
	rulerY  bool
	bg      string
	fg      string
	output  string
	scale   int
	window  bool
	term    bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (options, map[string]bool, error) {
	var o options
	fs := flag.NewFlagSet("oscgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.config, "config", "", "JSON settings document")
	fs.IntVar(&o.width, "width", config.DefaultWidth, "texture width")
	fs.IntVar(&o.height, "height", config.DefaultHeight, "texture height")
	fs.IntVar(&o.div, "div", oscgrid.DefaultPixelsPerDivision, "pixels per division")
	fs.IntVar(&o.sub, "sub", oscgrid.DefaultPixelsPerSubdivision, "pixels per subdivision")
	fs.BoolVar(&o.grid, "grid", true, "draw the dotted grid")
	fs.BoolVar(&o.rulerX, "rulerx", true, "draw the ruler on the horizontal center line")
	fs.BoolVar(&o.rulerY, "rulery", true, "draw the ruler on the vertical center line")
	fs.StringVar(&o.bg, "bg", oscgrid.Black.String(), "background color")
	fs.StringVar(&o.fg, "fg", oscgrid.Green.String(), "grid color")
	fs.StringVar(&o.output, "output", "grid.png", "output PNG file (empty to skip)")
	fs.IntVar(&o.scale, "scale", 1, "scale the PNG output by this factor (bilinear)")
	fs.BoolVar(&o.window, "window", false, "show the grid in a window")
	fs.BoolVar(&o.term, "term", false, "preview the grid in the terminal")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}
	if o.window && o.term {
		return o, nil, errPreviewConflict
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return o, set, nil
}

// buildConfig starts from the document (or defaults) and applies the flags
// that were given explicitly.
func buildConfig(o options, set map[string]bool) (config.Config, error) {
	cfg := config.Default()
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return cfg, err
		}
	}

	s := &cfg.Settings
	if set["width"] || set["height"] {
		w, h := s.TextureSize.W, s.TextureSize.H
		if set["width"] {
			w = o.width
		}
		if set["height"] {
			h = o.height
		}
		s.TextureSize = oscgrid.Size{W: w, H: h}
		s.TextureCenter = oscgrid.Point{X: w / 2, Y: h / 2}
	}
	if set["div"] {
		s.PixelsPerDivision = o.div
	}
	if set["sub"] {
		s.PixelsPerSubdivision = o.sub
	}
	if set["grid"] {
		s.DrawGrid = o.grid
	}
	if set["rulerx"] {
		s.DrawRulerX = o.rulerX
	}
	if set["rulery"] {
		s.DrawRulerY = o.rulerY
	}

	var err error
	if set["bg"] {
		if cfg.Background, err = oscgrid.ParseHex(o.bg); err != nil {
			return cfg, err
		}
	}
	if set["fg"] {
		if cfg.Grid, err = oscgrid.ParseHex(o.fg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.verbose {
		oscgrid.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer oscgrid.SetLogger(nil)
	}

	cfg, err := buildConfig(o, set)
	if err != nil {
		return err
	}

	gs := oscgrid.NewGridSurface(oscgrid.WithColors(cfg.Background, cfg.Grid))
	if err := gs.Configure(cfg.Settings); err != nil {
		return err
	}
	buf, _ := gs.RenderIfDirty()

	p := message.NewPrinter(language.English)
	s := gs.Settings()
	dx, dy := s.Divisions()
	size := fmt.Sprintf("%dx%d", s.TextureSize.W, s.TextureSize.H)
	center := fmt.Sprintf("(%d,%d)", s.TextureCenter.X, s.TextureCenter.Y)
	p.Fprintf(stdout, "grid %s, center %s, %d px/div, %d px/sub, %d/%d divisions from center, %d pixels\n",
		size, center, s.PixelsPerDivision, s.PixelsPerSubdivision, dx, dy, buf.Len())

	if o.output != "" {
		if err := writePNG(o.output, buf, o.scale); err != nil {
			return err
		}
		p.Fprintf(stdout, "saved %s\n", o.output)
	}

	switch {
	case o.window:
		return ebitenview.Run(gs, ebitenview.Options{})
	case o.term:
		return termview.Run(gs)
	}
	return nil
}

func writePNG(path string, buf *oscgrid.PixelBuffer, scale int) error {
	if scale <= 1 {
		return buf.SavePNG(path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	img := buf.Scaled(buf.Width()*scale, buf.Height()*scale)
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
