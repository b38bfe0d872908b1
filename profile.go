package gear

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/soypat/gear/geom2"
	"github.com/soypat/gear/internal/d2"
	"github.com/soypat/gear/involute"
	"github.com/soypat/gear/path2"
	"gonum.org/v1/gonum/spatial/r2"
)

// ProfileParams controls how a gear outline is generated.
type ProfileParams struct {
	Steps int     // involute approximation steps, 0 selects DefaultApproximationSteps
	Kerf  float64 // offset of the outline to account for cutter kerf, 0 for none
	Bore  float64 // bore diameter, 0 for no bore
}

func (k ProfileParams) validate() error {
	switch {
	case k.Steps < 0:
		return errMsg(ErrInvalidParameter, "approximation steps %d must be positive", k.Steps)
	case math.IsNaN(k.Kerf) || math.IsInf(k.Kerf, 0):
		return errMsg(ErrInvalidParameter, "kerf %g not finite", k.Kerf)
	case !(k.Bore >= 0) || math.IsInf(k.Bore, 0):
		return errMsg(ErrInvalidParameter, "bore %g must be zero or positive", k.Bore)
	}
	return nil
}

func (k ProfileParams) steps() int {
	if k.Steps == 0 {
		return DefaultApproximationSteps
	}
	return k.Steps
}

// Profile is shorthand for Profile(p, k).
func (p Params) Profile(k ProfileParams) (*geom2.Geometry, error) {
	return Profile(p, k)
}

// Profile returns the outline of the gear centered at the origin. The
// geometry holds, for each tooth in order, its two flank polylines, the
// arc along the root circle before the tooth and the arc across the tooth
// tip. A circle for the bore is last, if requested.
//
// The first tooth gap is centered on the positive x-axis. A positive kerf
// grows the gear: flanks are offset into the gaps, the root and tip arcs
// move out by kerf and the bore shrinks by kerf.
func Profile(p Params, k ProfileParams) (*geom2.Geometry, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := k.validate(); err != nil {
		return nil, err
	}
	var (
		steps         = k.steps()
		kerf          = k.Kerf
		pitchDiameter = p.PitchDiameter()
		baseDiameter  = p.BaseDiameter()
		outerDiameter = p.OutsideDiameter()
		rootDiameter  = p.RootDiameter()
		circularPitch = p.CircularPitch()
		r             = baseDiameter / 2
		log           = Logger()
	)
	log.Debug("gear dimensions",
		slog.Int("teeth", p.Teeth),
		slog.Float64("pitch_diameter", pitchDiameter),
		slog.Float64("base_diameter", baseDiameter),
		slog.Float64("outside_diameter", outerDiameter),
		slog.Float64("root_diameter", rootDiameter),
	)

	if !(rootDiameter/2+kerf > 0) {
		return nil, fmt.Errorf("%w: root radius %g with kerf %g", ErrDegenerate, rootDiameter/2, kerf)
	}

	// Involute from the base circle to the outside diameter preceded by
	// a point on the root circle.
	tOutside, err := involute.T(r, outerDiameter)
	if err != nil {
		return nil, fmt.Errorf("%w: outside diameter: %w", ErrDegenerate, err)
	}
	flank := make([]r2.Vec, 0, steps+2)
	flank = append(flank, r2.Vec{X: rootDiameter / 2})
	flank = append(flank, involute.Sample(r, tOutside, steps)...)

	// Rotate the flank so it crosses the pitch circle a quarter of the
	// circular pitch from the x-axis. This is the pinch point.
	tPitch, err := involute.T(r, pitchDiameter)
	if err != nil {
		return nil, fmt.Errorf("%w: pitch diameter: %w", ErrDegenerate, err)
	}
	rotAngle := circularPitch/4 - d2.Angle(involute.Point(r, tPitch))
	flank = path2.RotateOrigin(flank, rotAngle)
	topAngle := (circularPitch - 2*d2.Angle(involute.Point(r, tOutside)) - 2*rotAngle) / 2

	if kerf != 0 {
		offset, err := offsetFlank(flank, kerf, outerDiameter/2+kerf, rootDiameter/2+kerf)
		if err != nil {
			return nil, err
		}
		// Offsetting moves the end points around the circle.
		rotAngle += path2.AngleBetween(flank[0], offset[0], r2.Vec{})
		topAngle = (circularPitch - 2*d2.Angle(offset[len(offset)-1])) / 2
		flank = offset
		log.Debug("kerf offset applied",
			slog.Float64("kerf", kerf),
			slog.Float64("root_angle", rotAngle),
			slog.Float64("top_angle", topAngle),
		)
	}
	mirror := path2.MirrorX(flank)

	geom := &geom2.Geometry{Items: make([]geom2.Primitive, 0, 4*p.Teeth+1)}
	for i := 0; i < p.Teeth; i++ {
		a := float64(i) * circularPitch
		root, err := geom2.NewArc(r2.Vec{}, rootDiameter/2+kerf, a-rotAngle, a+rotAngle)
		if err != nil {
			return nil, fmt.Errorf("%w: root arc: %v", ErrDegenerate, err)
		}
		tip, err := geom2.NewArc(r2.Vec{}, outerDiameter/2+kerf, a+circularPitch/2-topAngle, a+circularPitch/2+topAngle)
		if err != nil {
			return nil, fmt.Errorf("%w: tip arc: %v", ErrDegenerate, err)
		}
		geom.Add(
			geom2.Polyline{Points: path2.RotateOrigin(flank, a)},
			geom2.Polyline{Points: path2.RotateOrigin(mirror, a)},
			root,
			tip,
		)
	}

	if k.Bore > 0 {
		bore, err := geom2.NewCircle(r2.Vec{}, k.Bore/2-kerf)
		if err != nil {
			return nil, fmt.Errorf("%w: bore: %v", ErrDegenerate, err)
		}
		geom.Add(bore)
	}
	log.Debug("gear profile generated", slog.Int("primitives", len(geom.Items)))
	return geom, nil
}

// offsetFlank offsets the flank by kerf and snaps its ends to the outside
// and root radii.
func offsetFlank(flank []r2.Vec, kerf, outside, root float64) ([]r2.Vec, error) {
	offset, err := path2.Offset(flank, kerf)
	if err != nil {
		return nil, err
	}
	offset, err = path2.ExtendEnd(offset, outside)
	if err != nil {
		return nil, fmt.Errorf("kerf %g at outside radius: %w", kerf, err)
	}
	offset, err = path2.TrimStart(offset, root)
	if err != nil {
		return nil, fmt.Errorf("kerf %g at root radius: %w", kerf, err)
	}
	return offset, nil
}
