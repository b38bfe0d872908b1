package gear

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestDiameters(t *testing.T) {
	p := NewParams(48, 32, 20)
	pd := 32. / 48
	base := pd * math.Cos(20*math.Pi/180)
	for _, test := range []struct {
		name      string
		got, want float64
	}{
		{"pitch", p.PitchDiameter(), pd},
		{"base", p.BaseDiameter(), base},
		{"outside", p.OutsideDiameter(), pd + 2./48},
		{"root", p.RootDiameter(), base - 2*1.25/48},
		{"circular pitch", p.CircularPitch(), 2 * math.Pi / 32},
	} {
		if !scalar.EqualWithinAbs(test.got, test.want, 1e-15) {
			t.Errorf("%s diameter: got %g, want %g", test.name, test.got, test.want)
		}
	}
	if !(p.RootDiameter() < p.BaseDiameter() && p.BaseDiameter() < p.PitchDiameter() && p.PitchDiameter() < p.OutsideDiameter()) {
		t.Error("diameters out of order")
	}
}

func TestValidate(t *testing.T) {
	valid := NewParams(48, 32, 20)
	if err := valid.Validate(); err != nil {
		t.Fatal(err)
	}
	for name, mod := range map[string]func(*Params){
		"zero teeth":      func(p *Params) { p.Teeth = 0 },
		"two teeth":       func(p *Params) { p.Teeth = 2 },
		"negative pitch":  func(p *Params) { p.Pitch = -1 },
		"zero pitch":      func(p *Params) { p.Pitch = 0 },
		"NaN pitch":       func(p *Params) { p.Pitch = math.NaN() },
		"zero angle":      func(p *Params) { p.PressureAngle = 0 },
		"right angle":     func(p *Params) { p.PressureAngle = 90 },
		"zero addendum":   func(p *Params) { p.Addendum = 0 },
		"negative dedend": func(p *Params) { p.Dedendum = -1.25 },
		"unset factors":   func(p *Params) { *p = Params{Pitch: 48, Teeth: 32, PressureAngle: 20} },
	} {
		p := valid
		mod(&p)
		err := p.Validate()
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: want ErrInvalidParameter, got %v", name, err)
		}
	}
}

func TestErrMsgCaller(t *testing.T) {
	err := Params{}.Validate()
	if err == nil || !strings.Contains(err.Error(), "Validate line") {
		t.Errorf("error does not name caller: %v", err)
	}
}
