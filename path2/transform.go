// Package path2 implements operations on ordered sequences of 2D points
// (open polylines): rigid rotation, scaling, parallel offsetting and
// adjusting the end points of a line to lie on a circle about the origin.
//
// None of the functions modify their input. Every result is a newly
// allocated slice.
package path2

import (
	"errors"

	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrNotImplemented is returned by the branches of the trim and extend
	// operations which are not supported.
	ErrNotImplemented = errors.New("path2: not implemented")
	// ErrShortLine is returned when an operation needs at least one segment.
	ErrShortLine = errors.New("path2: line needs at least 2 points")
	// ErrNoIntersection is returned when a segment or ray does not reach
	// the target circle.
	ErrNoIntersection = errors.New("path2: no intersection with circle")
)

// Rotate rotates points about center by angle radians. Each point's polar
// coordinates relative to center are recomputed so the distance to center
// is preserved.
func Rotate(points []r2.Vec, angle float64, center r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(points))
	for i, p := range points {
		pol := d2.CartesianToPolar(r2.Sub(p, center))
		pol.Theta += angle
		out[i] = r2.Add(center, pol.PolarToCartesian())
	}
	return out
}

// RotateOrigin rotates points about the origin by angle radians.
func RotateOrigin(points []r2.Vec, angle float64) []r2.Vec {
	return Rotate(points, angle, r2.Vec{})
}

// Scale scales the x and y components of points. A negative factor mirrors
// points about the corresponding axis.
func Scale(points []r2.Vec, sx, sy float64) []r2.Vec {
	out := make([]r2.Vec, len(points))
	k := r2.Vec{X: sx, Y: sy}
	for i, p := range points {
		out[i] = d2.MulElem(p, k)
	}
	return out
}

// MirrorX mirrors points about the x-axis.
func MirrorX(points []r2.Vec) []r2.Vec { return Scale(points, 1, -1) }

// AngleBetween returns the angle swept from p1 to p2 as seen from center.
// The result is the plain difference of the two polar angles and is not
// wrapped, so it may lie anywhere in (-2π, 2π).
func AngleBetween(p1, p2, center r2.Vec) float64 {
	return d2.Angle(r2.Sub(p2, center)) - d2.Angle(r2.Sub(p1, center))
}
