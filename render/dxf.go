package render

import (
	"fmt"
	"math"

	"github.com/soypat/gear/geom2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// DefaultDXFLayer is the layer primitives are drawn on by CreateDXF.
const DefaultDXFLayer = "GEOMETRY"

// CreateDXF writes a geometry to a new DXF file on DefaultDXFLayer.
func CreateDXF(path string, g *geom2.Geometry) error {
	return CreateDXFLayer(path, g, DefaultDXFLayer)
}

// CreateDXFLayer writes a geometry to a new DXF file on the named layer.
// Polylines are written as LWPOLYLINE entities, arcs as ARC with angles in
// degrees and circles as CIRCLE.
func CreateDXFLayer(path string, g *geom2.Geometry, layer string) error {
	if len(g.Items) == 0 {
		return errEmpty
	}
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(layer, color.White, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for i, item := range g.Items {
		var err error
		switch v := item.(type) {
		case geom2.Polyline:
			err = dxfPolyline(d, v)
		case *geom2.Polyline:
			err = dxfPolyline(d, *v)
		case geom2.Arc:
			_, err = d.Arc(v.Center.X, v.Center.Y, 0, v.Radius, r2d(v.Start), r2d(v.End))
		case *geom2.Arc:
			_, err = d.Arc(v.Center.X, v.Center.Y, 0, v.Radius, r2d(v.Start), r2d(v.End))
		case geom2.Circle:
			_, err = d.Circle(v.Center.X, v.Center.Y, 0, v.Radius)
		case *geom2.Circle:
			_, err = d.Circle(v.Center.X, v.Center.Y, 0, v.Radius)
		default:
			err = fmt.Errorf("unsupported primitive %T", item)
		}
		if err != nil {
			return fmt.Errorf("render: DXF item %d: %w", i, err)
		}
	}
	return d.SaveAs(path)
}

func dxfPolyline(d *drawing.Drawing, p geom2.Polyline) error {
	vertices := make([][]float64, len(p.Points))
	for i, pt := range p.Points {
		vertices[i] = []float64{pt.X, pt.Y}
	}
	_, err := d.LwPolyline(false, vertices...)
	return err
}

func r2d(radians float64) float64 { return radians / math.Pi * 180. }
