// Command gear generates the 2D outline of an involute spur gear and writes
// it as SVG, DXF or a PNG preview.
//
//	gear -n 32 -p 48 -a 20 -b 0.125 -s gear.svg -d gear.dxf
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/soypat/gear"
	"github.com/soypat/gear/render"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "gear:", err)
		os.Exit(1)
	}
}

type config struct {
	teeth    int
	pitch    float64
	angle    float64
	bore     float64
	kerf     float64
	addendum float64
	dedendum float64
	steps    int
	svg      string
	svgScale float64
	dxf      string
	png      string
	verbose  bool
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("gear", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&c.teeth, "n", 0, "number of teeth (required)")
	fs.Float64Var(&c.pitch, "p", 0, "diametral pitch, teeth per unit of pitch diameter (required)")
	fs.Float64Var(&c.angle, "a", 0, "pressure angle in degrees (required)")
	fs.Float64Var(&c.bore, "b", 0, "center bore diameter, 0 for none")
	fs.Float64Var(&c.kerf, "k", 0, "kerf of the cutting tool, added to the outline")
	fs.Float64Var(&c.addendum, "addendum", gear.DefaultAddendum, "addendum factor")
	fs.Float64Var(&c.dedendum, "dedendum", gear.DefaultDedendum, "dedendum factor")
	fs.IntVar(&c.steps, "r", gear.DefaultApproximationSteps, "steps used to approximate each involute flank")
	fs.StringVar(&c.svg, "s", "", "SVG file to write")
	fs.Float64Var(&c.svgScale, "svg_scale", 1, "SVG units per gear unit")
	fs.StringVar(&c.dxf, "d", "", "DXF file to write")
	fs.StringVar(&c.png, "png", "", "PNG preview file to write")
	fs.BoolVar(&c.verbose, "v", false, "log debug information")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	switch {
	case c.teeth <= 0:
		return c, errors.New("-n must be a positive integer")
	case !(c.pitch > 0):
		return c, errors.New("-p must be positive")
	case !(c.angle > 0):
		return c, errors.New("-a must be positive")
	case c.bore < 0:
		return c, errors.New("-b must not be negative")
	case !(c.addendum > 0):
		return c, errors.New("-addendum must be positive")
	case !(c.dedendum > 0):
		return c, errors.New("-dedendum must be positive")
	case c.steps <= 0:
		return c, errors.New("-r must be a positive integer")
	case !(c.svgScale > 0):
		return c, errors.New("-svg_scale must be positive")
	case c.svg == "" && c.dxf == "" && c.png == "":
		return c, errors.New("no output file, use -s, -d or -png")
	}
	return c, nil
}

func run(args []string, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	gear.SetLogger(log)

	p := gear.NewParams(c.pitch, c.teeth, c.angle)
	p.Addendum = c.addendum
	p.Dedendum = c.dedendum
	g, err := p.Profile(gear.ProfileParams{Steps: c.steps, Kerf: c.kerf, Bore: c.bore})
	if err != nil {
		return err
	}
	n := g.Count()
	log.Info("profile generated", "polylines", n.Polylines, "arcs", n.Arcs, "circles", n.Circles)

	if c.svg != "" {
		cfg := render.DefaultSVGConfig()
		cfg.Scale = c.svgScale
		if err := render.CreateSVG(c.svg, g, cfg); err != nil {
			return fmt.Errorf("writing SVG: %w", err)
		}
		log.Info("wrote file", "path", c.svg)
	}
	if c.dxf != "" {
		if err := render.CreateDXF(c.dxf, g); err != nil {
			return fmt.Errorf("writing DXF: %w", err)
		}
		log.Info("wrote file", "path", c.dxf)
	}
	if c.png != "" {
		if err := render.CreatePNG(c.png, g, render.DefaultPNGConfig()); err != nil {
			return fmt.Errorf("writing PNG: %w", err)
		}
		log.Info("wrote file", "path", c.png)
	}
	return nil
}
