// Package render writes geom2 geometry to SVG, DXF and PNG files.
package render

import (
	"errors"
	"math"

	"github.com/soypat/gear/geom2"
	"gonum.org/v1/gonum/spatial/r2"
)

var errEmpty = errors.New("render: empty geometry")

// arcSegmentAngle is the largest angle spanned by a single segment when
// arcs are flattened.
const arcSegmentAngle = math.Pi / 180

// flatten returns the points of a primitive, arcs and circles approximated
// by segments.
func flatten(p geom2.Primitive) []r2.Vec {
	switch v := p.(type) {
	case geom2.Polyline:
		return v.Points
	case *geom2.Polyline:
		return v.Points
	case geom2.Arc:
		return flattenArc(v)
	case *geom2.Arc:
		return flattenArc(*v)
	case geom2.Circle:
		return flattenArc(geom2.Arc{Center: v.Center, Radius: v.Radius, End: 2 * math.Pi})
	case *geom2.Circle:
		return flattenArc(geom2.Arc{Center: v.Center, Radius: v.Radius, End: 2 * math.Pi})
	}
	return nil
}

func flattenArc(a geom2.Arc) []r2.Vec {
	n := int(math.Ceil(a.Sweep()/arcSegmentAngle)) + 1
	if n < 2 {
		n = 2
	}
	pts := make([]r2.Vec, n)
	for i := range pts {
		theta := a.Start + a.Sweep()*float64(i)/float64(n-1)
		pts[i] = r2.Add(a.Center, r2.Vec{X: a.Radius * math.Cos(theta), Y: a.Radius * math.Sin(theta)})
	}
	return pts
}
