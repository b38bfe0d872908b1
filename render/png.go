package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/nfnt/resize"
	"github.com/soypat/gear/geom2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PNGConfig configures PNG previews.
type PNGConfig struct {
	Size        int         // width and height of the image in pixels
	Supersample int         // render this many times larger and downscale, <=1 disables
	LineWidth   vg.Length   // outline width
	Color       color.Color // outline color
	Margin      float64     // margin around the drawing as a fraction of its size
}

// DefaultPNGConfig returns a 512 pixel preview configuration.
func DefaultPNGConfig() PNGConfig {
	return PNGConfig{
		Size:        512,
		Supersample: 2,
		LineWidth:   vg.Points(1),
		Color:       color.Black,
		Margin:      0.1,
	}
}

// CreatePNG writes a preview of the geometry to a new PNG file.
func CreatePNG(path string, g *geom2.Geometry, cfg PNGConfig) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fp)
	err = WritePNG(w, g, cfg)
	if err == nil {
		err = w.Flush()
	}
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// WritePNG draws a square preview of the geometry with equal axis scales.
func WritePNG(w io.Writer, g *geom2.Geometry, cfg PNGConfig) error {
	if cfg.Size <= 0 {
		return fmt.Errorf("render: PNG size %d must be positive", cfg.Size)
	}
	bb, ok := g.BoundsWithMargin(cfg.Margin)
	if !ok {
		return errEmpty
	}
	p := plot.New()
	p.HideAxes()
	for _, item := range g.Items {
		pts := flatten(item)
		xys := make(plotter.XYs, len(pts))
		for i, pt := range pts {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		l.LineStyle.Width = cfg.LineWidth
		if cfg.Color != nil {
			l.LineStyle.Color = cfg.Color
		}
		p.Add(l)
	}
	// Square window so circles stay round.
	c := bb.Center()
	half := math.Max(bb.Size().X, bb.Size().Y) / 2
	p.X.Min, p.X.Max = c.X-half, c.X+half
	p.Y.Min, p.Y.Max = c.Y-half, c.Y+half

	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	// vgimg renders at 96 dots per inch.
	side := vg.Length(cfg.Size*ss) * vg.Inch / 96
	canvas := vgimg.New(side, side)
	p.Draw(draw.New(canvas))
	var img image.Image = canvas.Image()
	if ss > 1 {
		img = resize.Resize(uint(cfg.Size), uint(cfg.Size), img, resize.Lanczos3)
	}
	return png.Encode(w, img)
}
