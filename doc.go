/*
Package gear generates the 2D outline of straight spur gears with a
symmetric involute tooth profile.

A gear is defined by its Params: diametral pitch, tooth count, pressure
angle and the addendum and dedendum factors. Profile builds a fresh
geom2.Geometry holding two involute flanks and two arcs per tooth plus an
optional bore circle. The geometry may be offset to compensate for the kerf
of a laser or waterjet cutter.

	g := gear.NewParams(48, 32, 20)
	geom, err := g.Profile(gear.ProfileParams{Bore: 0.125})
	if err != nil {
		log.Fatal(err)
	}
	err = render.CreateSVG("gear.svg", geom, render.SVGConfig{Scale: 500})

All functions are pure: Params are never modified and no state is kept
between calls, so gears can be generated concurrently.
*/
package gear
