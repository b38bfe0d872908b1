// Package geom2 holds the 2D primitives produced by profile generation and
// consumed by exporters: polylines, circular arcs and circles.
package geom2

import (
	"fmt"
	"math"

	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Primitive is a 2D drawing primitive.
type Primitive interface {
	// Bounds returns the axis aligned box enclosing the primitive.
	Bounds() d2.Box
}

// Polyline is an open sequence of connected straight segments.
type Polyline struct {
	Points []r2.Vec
}

// Bounds returns the bounding box of the polyline vertices.
// It panics for a polyline without points.
func (p Polyline) Bounds() d2.Box {
	if len(p.Points) == 0 {
		panic("empty polyline")
	}
	return d2.BoxOf(p.Points)
}

// BoxOutline returns a closed polyline tracing the edges of a box
// counter-clockwise, starting and ending at its minimum corner.
func BoxOutline(bb d2.Box) Polyline {
	v := bb.Vertices()
	return Polyline{Points: []r2.Vec{v[0], v[1], v[3], v[2], v[0]}}
}

// Arc is a circular arc drawn counter-clockwise from Start to End,
// angles in radians measured from the positive x-axis. End >= Start.
type Arc struct {
	Center     r2.Vec
	Radius     float64
	Start, End float64
}

// NewArc returns an arc after checking radius and sweep. Angles must be finite.
func NewArc(center r2.Vec, radius, start, end float64) (Arc, error) {
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(end) || math.IsInf(end, 0) {
		return Arc{}, fmt.Errorf("arc angles %g, %g not finite", start, end)
	}
	if !(radius > 0) {
		return Arc{}, fmt.Errorf("arc radius %g not positive", radius)
	}
	if !(end >= start) {
		return Arc{}, fmt.Errorf("arc end angle %g less than start angle %g", end, start)
	}
	return Arc{Center: center, Radius: radius, Start: start, End: end}, nil
}

// Sweep returns the angle swept by the arc.
func (a Arc) Sweep() float64 { return a.End - a.Start }

// StartPoint returns the point at which the arc starts.
func (a Arc) StartPoint() r2.Vec {
	return r2.Add(a.Center, d2.PolarToXY(a.Radius, a.Start))
}

// EndPoint returns the point at which the arc ends.
func (a Arc) EndPoint() r2.Vec {
	return r2.Add(a.Center, d2.PolarToXY(a.Radius, a.End))
}

// Bounds returns the bounding box of the arc. Besides both end points the
// box contains every extreme of the circle (at multiples of π/2) swept
// strictly between the start and end angles.
func (a Arc) Bounds() d2.Box {
	bb := d2.BoxOf(d2.Set{a.StartPoint(), a.EndPoint()})
	m1 := math.Floor(a.Start * 2 / math.Pi)
	m2 := math.Floor(a.End * 2 / math.Pi)
	// At most one full turn of extremes.
	for i := 1; i <= 4 && m1+float64(i) <= m2; i++ {
		var extreme r2.Vec
		switch quadrant(m1 + float64(i)) {
		case 0:
			extreme = r2.Vec{X: a.Radius}
		case 1:
			extreme = r2.Vec{Y: a.Radius}
		case 2:
			extreme = r2.Vec{X: -a.Radius}
		case 3:
			extreme = r2.Vec{Y: -a.Radius}
		}
		bb = bb.Include(r2.Add(a.Center, extreme))
	}
	return bb
}

// quadrant returns m modulo 4 in [0, 4).
func quadrant(m float64) int {
	q := math.Mod(m, 4)
	if q < 0 {
		q += 4
	}
	return int(q)
}

// Circle is a full circle.
type Circle struct {
	Center r2.Vec
	Radius float64
}

// NewCircle returns a circle after checking its radius.
func NewCircle(center r2.Vec, radius float64) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, fmt.Errorf("circle radius %g not positive", radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() d2.Box {
	return d2.NewBox2(c.Center, d2.Elem(2*c.Radius))
}
