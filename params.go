package gear

import "math"

// Defaults used by NewParams and ProfileParams.
const (
	DefaultAddendum           = 1.0
	DefaultDedendum           = 1.25
	DefaultApproximationSteps = 20
)

// Params defines a spur gear. Diameters are in the units of 1/Pitch.
type Params struct {
	Pitch         float64 // diametral pitch, teeth per unit of pitch diameter
	Teeth         int     // number of teeth, at least 3
	PressureAngle float64 // pressure angle in degrees, in (0, 90)
	Addendum      float64 // addendum factor, tooth height above pitch circle times pitch
	Dedendum      float64 // dedendum factor, tooth depth below base circle times pitch
}

// NewParams returns gear parameters with the default addendum and dedendum.
func NewParams(pitch float64, teeth int, pressureAngle float64) Params {
	return Params{
		Pitch:         pitch,
		Teeth:         teeth,
		PressureAngle: pressureAngle,
		Addendum:      DefaultAddendum,
		Dedendum:      DefaultDedendum,
	}
}

// Validate checks the parameters are in range. The returned error wraps
// ErrInvalidParameter.
func (p Params) Validate() error {
	switch {
	case !positive(p.Pitch):
		return errMsg(ErrInvalidParameter, "pitch %g must be positive", p.Pitch)
	case p.Teeth < 3:
		return errMsg(ErrInvalidParameter, "got %d teeth, need at least 3", p.Teeth)
	case !positive(p.PressureAngle) || p.PressureAngle >= 90:
		return errMsg(ErrInvalidParameter, "pressure angle %g must be in (0, 90) degrees", p.PressureAngle)
	case !positive(p.Addendum):
		return errMsg(ErrInvalidParameter, "addendum factor %g must be positive", p.Addendum)
	case !positive(p.Dedendum):
		return errMsg(ErrInvalidParameter, "dedendum factor %g must be positive", p.Dedendum)
	}
	return nil
}

// PitchDiameter returns the diameter of the pitch circle.
func (p Params) PitchDiameter() float64 {
	return float64(p.Teeth) / p.Pitch
}

// BaseDiameter returns the diameter of the circle the involute is generated from.
func (p Params) BaseDiameter() float64 {
	return p.PitchDiameter() * math.Cos(d2r(p.PressureAngle))
}

// OutsideDiameter returns the diameter of the tips of the teeth.
func (p Params) OutsideDiameter() float64 {
	return p.PitchDiameter() + 2*p.Addendum/p.Pitch
}

// RootDiameter returns the diameter of the bottom of the tooth gaps.
// It is measured from the base diameter, not the pitch diameter.
func (p Params) RootDiameter() float64 {
	return p.BaseDiameter() - 2*p.Dedendum/p.Pitch
}

// CircularPitch returns the angle between adjacent teeth in radians.
func (p Params) CircularPitch() float64 {
	return 2 * math.Pi / float64(p.Teeth)
}

func positive(f float64) bool { return f > 0 && !math.IsInf(f, 0) }

func d2r(degrees float64) float64 { return degrees * math.Pi / 180. }
