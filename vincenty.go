// Geodesics after T. Vincenty, "Direct and Inverse Solutions of Geodesics
// on the Ellipsoid with Application of Nested Equations", Survey Review
// XXIII (176), 1975: modified Rainsford's method with Helmert's elliptical
// terms, effective in any azimuth and at any distance short of antipodal.

package geodesic

import "math"

const (
	// convergence of the iterated auxiliary arc or longitude
	vincentyTol = 5e-14
	// iteration caps; well conditioned lines converge in 3 to 6 steps
	vincentyDirectSteps  = 10
	vincentyInverseSteps = 8
	// below this w = cos²α the equatorial form of cos 2σm is used
	equatorialW = 5e-15
)

// VincentyDirect solves the direct problem with Vincenty's iterative
// formulas.
func VincentyDirect(e *Ellipsoid, p1 Point, az12, s float64) Line {
	flat := e.f
	r := 1 - flat
	tu := r * math.Sin(p1.Lat) / math.Cos(p1.Lat)
	sf, cf := math.Sin(az12), math.Cos(az12)

	// twice the arc from the equator crossing to p1
	sig1x2 := math.Atan2(tu, cf) * 2

	cu := 1 / math.Sqrt(tu*tu+1)
	su := tu * cu
	sa := cu * sf
	c2a := 1 - sa*sa
	x := math.Sqrt((1/r/r-1)*c2a+1) + 1
	x = (x - 2) / x
	c := (x*x/4 + 1) / (1 - x)
	d := (x*.375*x - 1) * x
	tu = s / e.a / r / c

	var sy, cy, cz, ee float64
	y := tu
	steps, ok := iterate(vincentyTol, vincentyDirectSteps, func() float64 {
		sy, cy = math.Sin(y), math.Cos(y)
		cz = math.Cos(sig1x2 + y)
		ee = cz*cz*2 - 1
		prev := y
		y = ee + ee - 1
		y = (((sy*sy*4-3)*y*cz*d/6+ee*cy)*d/4-cz)*sy*d + tu
		return y - prev
	})
	if !ok {
		logCapped("vincenty/direct", steps)
	}

	baz := cu*cy*cf - su*sy
	phi2 := math.Atan2(su*cy+cu*sy*cf, r*math.Hypot(sa, baz))
	lam := math.Atan2(sy*sf, cu*cy-su*sy*cf)
	c = ((c2a*-3+4)*flat + 4) * c2a * flat / 16
	d = ((ee*cy*c+cz)*sy*c + y) * sa
	lam2 := p1.Lon + lam - (1-c)*d*flat

	return Line{
		P1:        p1,
		P2:        Point{Lon: NormalizeAngle(lam2), Lat: phi2},
		Az12:      NormalizeAngle(az12),
		Az21:      NormalizeAngle(math.Atan2(sa, baz) + math.Pi),
		S:         s,
		Converged: ok,
	}
}

// inverseCase classifies the geometry of an inverse problem.
type inverseCase int

const (
	inverseGeneral inverseCase = iota
	inverseCoincident
	inverseMeridian
	// both points on the equator, beyond the lift-off longitude
	inverseEquatorialAntipodal
	// beyond the lift-off longitude with a point just off the equator
	inverseLiftOff
)

func (c inverseCase) String() string {
	switch c {
	case inverseGeneral:
		return "general"
	case inverseCoincident:
		return "coincident"
	case inverseMeridian:
		return "meridian"
	case inverseEquatorialAntipodal:
		return "equatorial-antipodal"
	case inverseLiftOff:
		return "lift-off"
	}
	return "unknown"
}

func classifyInverse(e *Ellipsoid, p1, p2 Point) inverseCase {
	dlon := NormalizeAngle(p2.Lon - p1.Lon)
	if math.Abs(dlon) < vincentyTol {
		if math.Abs(p2.Lat-p1.Lat) < vincentyTol {
			return inverseCoincident
		}
		return inverseMeridian
	}

	// Lift-off: beyond π(1-f) the geodesic between equatorial points
	// leaves the equator.
	if e.f == 0 || math.Abs(dlon) < math.Pi*(1-e.f) {
		return inverseGeneral
	}
	r1, r2 := math.Abs(p1.Lat), math.Abs(p2.Lat)
	switch {
	case r1 > equatorBand && r2 > equatorBand:
		return inverseGeneral
	case r1 < vincentyTol && r2 > equatorBand, r2 < vincentyTol && r1 > equatorBand:
		return inverseGeneral
	case r1 > vincentyTol || r2 > vincentyTol:
		return inverseLiftOff
	}
	return inverseEquatorialAntipodal
}

// VincentyInverse solves the inverse problem with Vincenty's iterative
// formulas. Azimuths are returned in [0, 2π).
//
// Meridional lines are measured with a meridian arc series and equatorial
// lines past the lift-off longitude with an auxiliary azimuth; a point
// just off the equator in that region yields a zero line.
func VincentyInverse(e *Ellipsoid, p1, p2 Point) Line {
	switch classifyInverse(e, p1, p2) {
	case inverseCoincident, inverseLiftOff:
		return zeroLine(p1, p2)
	case inverseMeridian:
		return vincentyMeridian(e, p1, p2)
	case inverseEquatorialAntipodal:
		return vincentyEquatorialAntipodal(e, p1, p2)
	}
	return vincentyGeneral(e, p1, p2)
}

func vincentyMeridian(e *Ellipsoid, p1, p2 Point) Line {
	l := Line{
		P1:        p1,
		P2:        p2,
		S:         e.a * math.Abs(meridianArc(e.es, p1.Lat, p2.Lat)),
		Converged: true,
	}
	if p2.Lat > p1.Lat {
		l.Az12, l.Az21 = 0, math.Pi
	} else {
		l.Az12, l.Az21 = math.Pi, 0
	}
	return l
}

func vincentyEquatorialAntipodal(e *Ellipsoid, p1, p2 Point) Line {
	dlon := NormalizeAngle(p2.Lon - p1.Lon)
	az12, az21, sms, ok := antipodalAux(e.f, e.es, dlon)
	return Line{
		P1:        p1,
		P2:        p2,
		Az12:      az12,
		Az21:      az21,
		S:         e.a * (math.Abs(dlon) - sms),
		Converged: ok,
	}
}

func vincentyGeneral(e *Ellipsoid, p1, p2 Point) Line {
	f := e.f
	f0 := 1 - f
	epsq := e.es / (1 - e.es)
	f2 := f * f
	f3 := f * f2
	f4 := f * f3

	dlon := NormalizeAngle(p2.Lon - p1.Lon)

	// reduced latitudes
	u1 := math.Atan(f0 * math.Sin(p1.Lat) / math.Cos(p1.Lat))
	u2 := math.Atan(f0 * math.Sin(p2.Lat) / math.Cos(p2.Lat))
	su1, cu1 := math.Sin(u1), math.Cos(u1)
	su2, cu2 := math.Sin(u2), math.Cos(u2)

	var (
		clon, slon         float64
		csig, ssig, sig    float64
		sinalf, w          float64
		q2, q4, q6, r2, r3 float64
	)
	ab := dlon
	steps, ok := iterate(vincentyTol, vincentyInverseSteps, func() float64 {
		clon, slon = math.Cos(ab), math.Sin(ab)
		csig = su1*su2 + cu1*cu2*clon
		ssig = math.Hypot(slon*cu2, su2*cu1-su1*cu2*clon)
		sig = math.Atan2(ssig, csig)
		sinalf = cu1 * cu2 * slon / ssig
		w = 1 - sinalf*sinalf
		t4 := w * w
		t6 := w * t4

		// coefficients of type A
		ao := f - f2*(f+1+f2)*w/4 + f3*3*(f*9/4+1)*t4/16 - f4*25*t6/128
		a2 := f2*(f+1+f2)*w/4 - f3*(f*9/4+1)*t4/4 + f4*75*t6/256
		a4 := f3*(f*9/4+1)*t4/32 - f4*15*t6/256
		a6 := f4 * 5 * t6 / 768

		// multiple angle functions
		var qo float64
		if w > equatorialW {
			qo = su1 * -2 * su2 / w
		}
		q2 = csig + qo
		q4 = q2*2*q2 - 1
		q6 = q2 * (q2*4*q2 - 3)
		r2 = ssig * 2 * csig
		r3 = ssig * (3 - ssig*4*ssig)

		prev := ab
		ab = dlon + sinalf*(ao*sig+a2*ssig*q2+a4*r2*q4+a6*r3*q6)
		return ab - prev
	})
	if !ok {
		logCapped("vincenty/inverse", steps)
	}

	// coefficients of type B
	z := epsq * w
	bo := z*(z*(z*(.01953125-z*175/16384)-.046875)+.25) + 1
	b2 := z * (z*(z*(z*35/2048-.029296875)+.0625) - .25)
	b4 := z * z * (z*(.005859375-z*35/8192) - .0078125)
	b6 := z * z * z * (z*5/6144 - 6.5104166666666663e-4)

	l := Line{
		P1:        p1,
		P2:        p2,
		S:         e.a * f0 * (bo*sig + b2*ssig*q2 + b4*r2*q4 + b6*r3*q6),
		Converged: ok,
	}

	if math.Abs(su1) < equatorialW && math.Abs(su2) < equatorialW {
		// along the equator
		l.Az12 = math.Pi / 2
		if dlon < 0 {
			l.Az12 *= 3
		}
		l.Az21 = math.Mod(l.Az12+math.Pi, 2*math.Pi)
		return l
	}
	l.Az12 = positiveAngle(math.Atan2(cu2*slon, su2*cu1-su1*cu2*clon))
	l.Az21 = math.Pi + math.Atan2(cu1*slon, su2*cu1*clon-su1*cu2)
	if l.Az21 >= 2*math.Pi {
		l.Az21 -= 2 * math.Pi
	}
	return l
}
