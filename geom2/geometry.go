package geom2

import (
	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Geometry is an ordered collection of primitives. Insertion order is
// drawing order. Items are not deduplicated.
type Geometry struct {
	Items []Primitive
}

// Add appends primitives to the geometry.
func (g *Geometry) Add(p ...Primitive) {
	g.Items = append(g.Items, p...)
}

// Bounds returns the box enclosing all primitives. ok is false for an
// empty geometry.
func (g *Geometry) Bounds() (bb d2.Box, ok bool) {
	if len(g.Items) == 0 {
		return d2.Box{}, false
	}
	bb = g.Items[0].Bounds()
	for _, item := range g.Items[1:] {
		bb = bb.Extend(item.Bounds())
	}
	return bb, true
}

// BoundsWithMargin returns the bounding box grown by marginFactor times its
// size, half of the margin on each side.
func (g *Geometry) BoundsWithMargin(marginFactor float64) (bb d2.Box, ok bool) {
	bb, ok = g.Bounds()
	if !ok {
		return bb, false
	}
	return bb.Enlarge(r2.Scale(marginFactor, bb.Size())), true
}

// Count is a tally of primitives by kind.
type Count struct {
	Polylines, Arcs, Circles int
}

// Count tallies the primitives of the geometry by kind.
func (g *Geometry) Count() (c Count) {
	for _, item := range g.Items {
		switch item.(type) {
		case Polyline, *Polyline:
			c.Polylines++
		case Arc, *Arc:
			c.Arcs++
		case Circle, *Circle:
			c.Circles++
		}
	}
	return c
}
