package geodesic

import "math"

const (
	// end point miss, as an angle at the centre, accepted by the lift-off
	// refinement; about 0.1 mm on the Earth
	liftOffTol   = 1.5e-11
	liftOffSteps = 20
	// finite difference steps in azimuth and in distance over a
	liftOffDaz = 1e-8
	liftOffDs  = 1.5e-7
	// largest azimuth change of one Newton step
	liftOffMaxDaz = .2
)

// liftOffInverse solves the inverse problem for nearly antipodal points
// with one of them just off the equator, where Vincenty's ladder has no
// solution. The equatorial antipodal line gives the starting azimuth and
// distance; Newton's method on the direct problem then moves them until
// the line ends on p2. Both the northern and the southern start are tried
// and the shorter line is kept.
//
// Azimuths are returned in [0, 2π) like VincentyInverse. Converged is set
// when the end point miss is below liftOffTol.
func liftOffInverse(e *Ellipsoid, p1, p2 Point) Line {
	dlon := NormalizeAngle(p2.Lon - p1.Lon)
	az, back, sms, _ := antipodalAux(e.f, e.es, dlon)
	s0 := e.a * (math.Abs(dlon) - sms)

	starts := [2]float64{az, math.Pi - az}
	if p1.Lat+p2.Lat < 0 {
		starts[0], starts[1] = starts[1], starts[0]
	}

	var best Line
	for _, az0 := range starts {
		l := shootInverse(e, p1, p2, az0, s0)
		if !l.Converged {
			continue
		}
		// a near tie keeps the start on the side of the points
		if !best.Converged || l.S < best.S-liftOffTol*e.a {
			best = l
		}
	}
	if best.Converged {
		return best
	}

	logCapped("lift-off", liftOffSteps)
	return Line{P1: p1, P2: p2, Az12: az, Az21: back, S: s0}
}

// shootInverse refines az12 and s until the direct problem from p1 ends on
// p2.
func shootInverse(e *Ellipsoid, p1, p2 Point, az12, s float64) Line {
	cos2 := math.Cos(p2.Lat)
	miss := func(p Point) (north, east float64) {
		return p.Lat - p2.Lat, NormalizeAngle(p.Lon-p2.Lon) * cos2
	}

	ds := liftOffDs * e.a
	var end Line
	_, ok := iterate(liftOffTol, liftOffSteps, func() float64 {
		end = VincentyDirect(e, p1, az12, s)
		n, ea := miss(end.P2)
		if d := math.Hypot(n, ea); d < liftOffTol {
			return d
		}

		// Jacobian of the miss by forward differences
		na, eaa := miss(VincentyDirect(e, p1, az12+liftOffDaz, s).P2)
		ns, eas := miss(VincentyDirect(e, p1, az12, s+ds).P2)
		j11, j21 := (na-n)/liftOffDaz, (eaa-ea)/liftOffDaz
		j12, j22 := (ns-n)/ds, (eas-ea)/ds
		det := j11*j22 - j12*j21
		if det == 0 {
			return math.Inf(1)
		}
		daz := (j22*n - j12*ea) / det
		az12 -= math.Max(-liftOffMaxDaz, math.Min(liftOffMaxDaz, daz))
		s -= (j11*ea - j21*n) / det
		return math.Hypot(n, ea)
	})
	return Line{
		P1:        p1,
		P2:        p2,
		Az12:      positiveAngle(NormalizeAngle(az12)),
		Az21:      positiveAngle(end.Az21),
		S:         s,
		Converged: ok,
	}
}
