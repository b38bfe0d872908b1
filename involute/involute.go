// Package involute samples the involute of a circle.
//
// The curve is parametrized by t in [0, 1]: at t=0 the point is the tangent
// point (r, 0) on the base circle and at t=1 the point is (r*pi/2, r).
package involute

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDomain is returned when the involute inverse is requested outside of
// the region the curve covers.
var ErrDomain = errors.New("involute: argument out of domain")

// Point returns the point on the involute of the circle of radius r
// centered at the origin corresponding to curve parameter t.
func Point(r, t float64) r2.Vec {
	angle := t * math.Pi / 2
	sin, cos := math.Sincos(angle)
	return r2.Vec{
		X: r*cos + r*angle*sin,
		Y: r*sin - r*angle*cos,
	}
}

// T returns the curve parameter of the involute of the circle of radius r
// at which the curve is a distance od/2 from the origin, that is to say
// where it crosses the circle of diameter od. It is the inverse of Point:
//
//	T(r, 2*r2.Norm(Point(r, t))) == t
//
// r must be positive and od must not be less than 2r.
func T(r, od float64) (float64, error) {
	if !(r > 0) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("base radius %g: %w", r, ErrDomain)
	}
	if !(od >= 2*r) || math.IsInf(od, 0) {
		return 0, fmt.Errorf("diameter %g less than base diameter %g: %w", od, 2*r, ErrDomain)
	}
	return math.Sqrt(od*od/(4*r*r)-1) * 2 / math.Pi, nil
}

// Sample returns steps+1 points on the involute of the circle of radius r
// evenly spaced in t between 0 and tmax, both ends included.
func Sample(r, tmax float64, steps int) []r2.Vec {
	if steps < 1 {
		panic("involute: steps < 1")
	}
	inc := tmax / float64(steps)
	pts := make([]r2.Vec, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, Point(r, float64(i)*inc))
	}
	return pts
}
