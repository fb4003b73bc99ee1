package geodesic

import "math"

const (
	// tolerance for the 90° meridian arc shortcut
	quarterTol = 5e-15
	// convergence of the auxiliary azimuth near the antipode
	auxTol = 5e-13
	// band around the equator treated as "near" it
	equatorBand = .007
)

// meridianArc returns the length along a meridian of the unit ellipse with
// eccentricity squared esq from latitude phi1 to phi2. The result is signed
// and must be scaled by the semi-major axis.
func meridianArc(esq, phi1, phi2 float64) float64 {
	e2 := esq
	e4 := e2 * e2
	e6 := e4 * e2
	e8 := e6 * e2
	e10 := e8 * e2
	t1 := e2 * .75
	t2 := e4 * .234375
	t3 := e6 * .068359375
	t4 := e8 * .01922607421875
	t5 := e10 * .00528717041015625

	a := t1 + 1 + t2*3 + t3*10 + t4*35 + t5*126
	s1 := (phi2 - phi1) * a

	// equator to pole needs only the secular term
	if math.Abs(phi1) <= quarterTol && math.Abs(math.Abs(phi2)-math.Pi/2) < quarterTol {
		return (1 - esq) * s1
	}

	b := t1 + t2*4 + t3*15 + t4*56 + t5*210
	c := t2 + t3*6 + t4*28 + t5*120
	d := t3 + t4*8 + t5*45
	e := t4 + t5*10
	f := t5
	db := math.Sin(phi2*2) - math.Sin(phi1*2)
	dc := math.Sin(phi2*4) - math.Sin(phi1*4)
	dd := math.Sin(phi2*6) - math.Sin(phi1*6)
	de := math.Sin(phi2*8) - math.Sin(phi1*8)
	df := math.Sin(phi2*10) - math.Sin(phi1*10)
	s2 := -db*b/2 + dc*c/4 - dd*d/6 + de*e/8 - df*f/10

	return (1 - esq) * (s1 + s2)
}

// antipodalAux solves for the geodesic between two equatorial points whose
// longitude difference dlam is at or beyond the lift-off limit π(1-f). It
// returns the forward and back azimuths in [0, 2π), the equatorial minus
// geodesic distance on the unit ellipse, and whether the auxiliary azimuth
// converged.
func antipodalAux(flat, esq, dlam float64) (az12, az21, sms float64, ok bool) {
	cons := (math.Pi - math.Abs(dlam)) / (math.Pi * flat)

	t2 := flat * -.25 * (flat + 1 + flat*flat)
	t4 := flat * .1875 * flat * (flat*2.25 + 1)
	t6 := flat * -.1953125 * flat * flat

	var ao float64
	az := math.Asin(cons)
	s := az
	steps, ok := iterate(auxTol, 7, func() float64 {
		c2 := math.Cos(az)
		c2 *= c2
		ao = 1 + c2*(t2+c2*(t4+c2*t6))
		s = math.Asin(cons / ao)
		delta := s - az
		az = s
		return delta
	})
	if !ok {
		logCapped("vincenty/antipodal", steps)
	}

	az12 = s
	if dlam < 0 {
		az12 = 2*math.Pi - az12
	}
	az21 = math.Mod(2*math.Pi-az12, 2*math.Pi)

	// equatorial minus geodesic distance
	esqp := esq / (1 - esq)
	ca := math.Cos(az12)
	u2 := esqp * ca * ca
	u4 := u2 * u2
	u6 := u4 * u2
	u8 := u6 * u2
	bo := 1 + u2*.25 + u4*-.046875 + u6*.01953125 + u8*-.01068115234375
	sms = math.Pi * (1 - flat*math.Abs(math.Sin(az12))*ao - bo*(1-flat))
	return az12, az21, sms, ok
}
