package path2

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ExtendEnd extends a line so its last point is a distance r from the
// origin. The new point is appended along the ray from the second-to-last
// point through the last point, which must lie inside or on the circle of
// radius r. A last point outside the circle would require trimming the
// line, which is not supported: ErrNotImplemented is returned.
func ExtendEnd(points []r2.Vec, r float64) ([]r2.Vec, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("extending %d points: %w", n, ErrShortLine)
	}
	last := points[n-1]
	if r2.Norm(last) > r {
		return nil, fmt.Errorf("trimming end of line to radius %g: %w", r, ErrNotImplemented)
	}
	p, err := rayCircle(last, r2.Sub(last, points[n-2]), r)
	if err != nil {
		return nil, err
	}
	out := make([]r2.Vec, n, n+1)
	copy(out, points)
	return append(out, p), nil
}

// TrimStart trims a line so its first point is a distance r from the
// origin. The first point must lie strictly inside the circle of radius r.
// All points up to the first segment crossing the circle are dropped and
// the crossing is prepended as the new first point. Extending the start of
// a line is not supported: ErrNotImplemented is returned when the first
// point lies on or outside the circle.
func TrimStart(points []r2.Vec, r float64) ([]r2.Vec, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("trimming %d points: %w", n, ErrShortLine)
	}
	if r2.Norm(points[0]) >= r {
		return nil, fmt.Errorf("extending start of line to radius %g: %w", r, ErrNotImplemented)
	}
	for i := 1; i < n; i++ {
		if r2.Norm(points[i]) < r {
			continue
		}
		prev := points[i-1]
		p, err := rayCircle(prev, r2.Sub(points[i], prev), r)
		if err != nil {
			return nil, err
		}
		out := make([]r2.Vec, 0, n-i+1)
		out = append(out, p)
		return append(out, points[i:]...), nil
	}
	return nil, fmt.Errorf("no point of line reaches radius %g: %w", r, ErrNoIntersection)
}

// rayCircle returns the intersection of the ray starting at o with direction
// dir and the circle of radius r about the origin. It takes the positive
// root l of |o + l*û| = r, û being the unit direction.
func rayCircle(o, dir r2.Vec, r float64) (r2.Vec, error) {
	sin, cos := math.Sincos(math.Atan2(dir.Y, dir.X))
	u := r2.Vec{X: cos, Y: sin}
	b := r2.Dot(o, u)
	cross := r2.Cross(u, o)
	disc := r*r - cross*cross
	if disc < 0 || math.IsNaN(disc) {
		return r2.Vec{}, fmt.Errorf("ray from %v misses radius %g: %w", o, r, ErrNoIntersection)
	}
	l := -b + math.Sqrt(disc)
	return r2.Add(o, r2.Scale(l, u)), nil
}
