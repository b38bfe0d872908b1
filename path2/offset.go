package path2

import (
	"fmt"
	"math"

	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Offset returns a line parallel to points displaced by offset. The result
// has as many points as the input.
//
// Every point moves along the normal of its adjoining segments, the normal
// being the segment direction rotated by -90°, so a positive offset moves a
// line drawn along +x towards -y. End points use the normal of their only
// segment. Interior points use the average of the two segment normal angles.
// The angles are averaged, not the vectors: where the two segment angles
// straddle the ±π discontinuity the displacement points the wrong way.
func Offset(points []r2.Vec, offset float64) ([]r2.Vec, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("offsetting %d points: %w", n, ErrShortLine)
	}
	normals := make([]float64, n-1)
	for i := range normals {
		normals[i] = d2.Angle(r2.Sub(points[i+1], points[i])) - math.Pi/2
	}

	out := make([]r2.Vec, n)
	out[0] = r2.Add(points[0], d2.PolarToXY(offset, normals[0]))
	for i := 1; i < n-1; i++ {
		avg := (normals[i-1] + normals[i]) / 2
		out[i] = r2.Add(points[i], d2.PolarToXY(offset, avg))
	}
	out[n-1] = r2.Add(points[n-1], d2.PolarToXY(offset, normals[n-2]))
	return out, nil
}
