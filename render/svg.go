package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/soypat/gear/geom2"
	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Style is the presentation of a layer of an SVG drawing.
type Style struct {
	Stroke      string  // stroke color
	StrokeWidth float64 // stroke width in drawing units, scaled with the drawing
	Fill        string  // fill color
}

// DefaultStyle draws thin black outlines.
var DefaultStyle = Style{Stroke: "black", StrokeWidth: 0.002, Fill: "none"}

func (s Style) svg(scale float64) string {
	var b strings.Builder
	if s.Stroke != "" {
		fmt.Fprintf(&b, "stroke:%s;", s.Stroke)
	}
	if s.StrokeWidth > 0 {
		fmt.Fprintf(&b, "stroke-width:%g;", s.StrokeWidth*scale)
	}
	if s.Fill != "" {
		fmt.Fprintf(&b, "fill:%s;", s.Fill)
	}
	return b.String()
}

// Layer is a geometry drawn with a style.
type Layer struct {
	Geometry *geom2.Geometry
	Style    Style
}

// SVGConfig configures SVG output.
type SVGConfig struct {
	Scale  float64 // SVG user units per drawing unit
	Margin float64 // margin around the drawing as a fraction of its size
}

// DefaultSVGConfig returns the configuration used when none is given.
func DefaultSVGConfig() SVGConfig {
	return SVGConfig{Scale: 1, Margin: 0.2}
}

// CreateSVG writes a geometry to a new SVG file drawn with DefaultStyle.
func CreateSVG(path string, g *geom2.Geometry, cfg SVGConfig) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fp)
	err = WriteSVG(w, cfg, Layer{Geometry: g, Style: DefaultStyle})
	if err == nil {
		err = w.Flush()
	}
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteSVG writes the layers, in order, as an SVG drawing. The drawing is
// sized to the bounds of all layers. The y axis points up, as in the
// geometry, so the drawing is not mirrored.
func WriteSVG(w io.Writer, cfg SVGConfig, layers ...Layer) error {
	if !(cfg.Scale > 0) {
		return fmt.Errorf("render: SVG scale %g must be positive", cfg.Scale)
	}
	if cfg.Margin < 0 {
		return fmt.Errorf("render: negative SVG margin %g", cfg.Margin)
	}
	var (
		bb    d2.Box
		found bool
	)
	for i, l := range layers {
		if l.Geometry == nil {
			return fmt.Errorf("render: SVG layer %d has nil geometry", i)
		}
		b, ok := l.Geometry.BoundsWithMargin(cfg.Margin)
		if !ok {
			continue
		}
		if !found {
			bb, found = b, true
		} else {
			bb = bb.Extend(b)
		}
	}
	if !found {
		return errEmpty
	}
	size := r2.Scale(cfg.Scale, bb.Size())
	// Maps drawing coordinates to SVG user space.
	tf := func(p r2.Vec) r2.Vec {
		return r2.Vec{
			X: (p.X - bb.Min.X) * cfg.Scale,
			Y: (bb.Max.Y - p.Y) * cfg.Scale,
		}
	}

	canvas := svg.New(w)
	canvas.Start(int(math.Ceil(size.X)), int(math.Ceil(size.Y)),
		fmt.Sprintf(`viewBox="0 0 %.8g %.8g"`, size.X, size.Y))
	for _, l := range layers {
		canvas.Group(l.Style.svg(cfg.Scale))
		for _, item := range l.Geometry.Items {
			canvas.Path(pathData(item, tf, cfg.Scale))
		}
		canvas.Gend()
	}
	canvas.End()
	return nil
}

// pathData returns SVG path data for a primitive.
func pathData(p geom2.Primitive, tf func(r2.Vec) r2.Vec, scale float64) string {
	var b strings.Builder
	switch v := p.(type) {
	case geom2.Arc:
		writeArc(&b, v, tf, scale)
	case *geom2.Arc:
		writeArc(&b, *v, tf, scale)
	case geom2.Circle:
		writeCircle(&b, v, tf, scale)
	case *geom2.Circle:
		writeCircle(&b, *v, tf, scale)
	default:
		for i, pt := range flatten(p) {
			cmd := 'L'
			if i == 0 {
				cmd = 'M'
			}
			pt = tf(pt)
			fmt.Fprintf(&b, "%c%.8g %.8g ", cmd, pt.X, pt.Y)
		}
	}
	return strings.TrimSpace(b.String())
}

// writeArc writes an arc. Angles increase clockwise on screen once the y
// axis is flipped, so the sweep flag is 0. Arcs sweeping a full turn or
// more are drawn as a full circle in two halves starting at the arc start.
func writeArc(b *strings.Builder, a geom2.Arc, tf func(r2.Vec) r2.Vec, scale float64) {
	start, end := tf(a.StartPoint()), tf(a.EndPoint())
	if a.Sweep() >= 2*math.Pi {
		mid := tf(r2.Add(a.Center, d2.PolarToXY(a.Radius, a.Start+math.Pi)))
		r := a.Radius * scale
		fmt.Fprintf(b, "M%.8g %.8g A%.8g %.8g 0 1 0 %.8g %.8g A%.8g %.8g 0 1 0 %.8g %.8g",
			start.X, start.Y, r, r, mid.X, mid.Y, r, r, start.X, start.Y)
		return
	}
	large := 0
	if a.Sweep() > math.Pi {
		large = 1
	}
	r := a.Radius * scale
	fmt.Fprintf(b, "M%.8g %.8g A%.8g %.8g 0 %d 0 %.8g %.8g", start.X, start.Y, r, r, large, end.X, end.Y)
}

// writeCircle writes a circle as two half arcs.
func writeCircle(b *strings.Builder, c geom2.Circle, tf func(r2.Vec) r2.Vec, scale float64) {
	right := tf(r2.Add(c.Center, r2.Vec{X: c.Radius}))
	left := tf(r2.Sub(c.Center, r2.Vec{X: c.Radius}))
	r := c.Radius * scale
	fmt.Fprintf(b, "M%.8g %.8g A%.8g %.8g 0 1 0 %.8g %.8g A%.8g %.8g 0 1 0 %.8g %.8g Z",
		right.X, right.Y, r, r, left.X, left.Y, r, r, right.X, right.Y)
}
