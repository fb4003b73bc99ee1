// Geodesics after P. D. Thomas, "Spherical Geodesics, Reference Systems,
// & Local Geometry", U.S. Naval Oceanographic Office SP-138, 1970.
//
// The formulas work on the reduced colatitude and carry the flattening to
// second order. The direct problem is closed form and the inverse applies
// a single correction to the longitude difference.

package geodesic

import "math"

const (
	// |sin az12| below this is treated as a meridian
	meridianTol = 1e-9
	// coincident point tolerance of the inverse
	thomasTol = 1e-12
)

// ThomasDirect solves the direct problem with Thomas's formulas.
func ThomasDirect(e *Ellipsoid, p1 Point, az12, s float64) Line {
	f := e.f
	f4 := 0.25 * f
	onef := 1 - f

	al12 := NormalizeAngle(az12)
	signS := math.Abs(al12) > math.Pi/2
	th1 := math.Atan(onef * math.Tan(p1.Lat))
	costh1, sinth1 := math.Cos(th1), math.Sin(th1)

	var sina12, cosa12, M float64
	merid := math.Abs(math.Sin(al12)) < meridianTol
	if merid {
		cosa12 = 1
		if signS {
			cosa12 = -1
		}
	} else {
		sina12, cosa12 = math.Sin(al12), math.Cos(al12)
		M = costh1 * sina12
	}
	N := costh1 * cosa12

	var c1, c2, D, P, s1 float64
	if merid {
		c2 = f4
		D = (1 - c2) * (1 - c2)
		P = c2 / D
		s1 = math.Pi/2 - th1
	} else {
		c1 = f * M
		c2 = f4 * (1 - M*M)
		D = (1 - c2) * (1 - c2 - c1*M)
		P = (1 + .5*c1*M) * c2 / D
		// arc from the equator crossing to point 1
		if math.Abs(M) < 1 {
			if x := sinth1 / math.Sqrt(1-M*M); math.Abs(x) < 1 {
				s1 = math.Acos(x)
			}
		}
	}

	d := s / (D * e.a)
	if signS {
		d = -d
	}
	u := 2 * (s1 - d)
	V := math.Cos(u + d)
	sind := math.Sin(d)
	X := c2 * c2 * sind * math.Cos(d) * (2*V*V - 1)
	ds := d + X - 2*P*V*(1-2*P*math.Cos(u))*sind
	ss := s1 + s1 - ds

	cosds, sinds := math.Cos(ds), math.Sin(ds)
	if signS {
		sinds = -sinds
	}
	al21 := N*cosds - sinth1*sinds

	var phi2, de float64
	if merid {
		phi2 = math.Atan(math.Tan(math.Pi/2+s1-ds) / onef)
		if al21 > 0 {
			al21 = math.Pi
			if signS {
				de = math.Pi
			} else {
				phi2 = -phi2
			}
		} else {
			al21 = 0
			if signS {
				phi2 = -phi2
			} else {
				de = math.Pi
			}
		}
	} else {
		al21 = math.Atan(M / al21)
		if al21 > 0 {
			al21 += math.Pi
		}
		if al12 < 0 {
			al21 -= math.Pi
		}
		phi2 = math.Atan(-(sinth1*cosds + N*sinds) * math.Sin(al21) / (onef * M))
		de = math.Atan2(sinds*sina12, costh1*cosds-sinth1*sinds*cosa12)
		if signS {
			de += c1 * ((1-c2)*ds + c2*sinds*math.Cos(ss))
		} else {
			de -= c1 * ((1-c2)*ds - c2*sinds*math.Cos(ss))
		}
	}

	return Line{
		P1:        p1,
		P2:        Point{Lon: NormalizeAngle(p1.Lon + de), Lat: phi2},
		Az12:      al12,
		Az21:      NormalizeAngle(al21),
		S:         s,
		Converged: true,
	}
}

// ThomasInverse solves the inverse problem with Thomas's formulas.
func ThomasInverse(e *Ellipsoid, p1, p2 Point) Line {
	f := e.f
	f2 := 0.5 * f
	f4 := 0.5 * f2
	f64 := 0.25 * f4 * f4
	onef := 1 - f

	th1 := math.Atan(onef * math.Tan(p1.Lat))
	th2 := math.Atan(onef * math.Tan(p2.Lat))
	thm := .5 * (th1 + th2)
	dthm := .5 * (th2 - th1)
	dlam := NormalizeAngle(p2.Lon - p1.Lon)
	dlamm := .5 * dlam
	if math.Abs(dlam) < thomasTol && math.Abs(dthm) < thomasTol {
		return zeroLine(p1, p2)
	}

	sindlamm := math.Sin(dlamm)
	costhm, sinthm := math.Cos(thm), math.Sin(thm)
	cosdthm, sindthm := math.Cos(dthm), math.Sin(dthm)
	L := sindthm*sindthm + (cosdthm*cosdthm-sinthm*sinthm)*sindlamm*sindlamm
	if 1-L < thomasTol {
		// antipodal on the auxiliary sphere, where the series divide by
		// zero; the shortest line runs over a pole, take the northern one
		return Line{
			P1:        p1,
			P2:        p2,
			S:         e.a * (math.Abs(meridianArc(e.es, p1.Lat, math.Pi/2)) + math.Abs(meridianArc(e.es, p2.Lat, math.Pi/2))),
			Converged: true,
		}
	}
	cosd := 1 - L - L
	d := math.Acos(cosd)
	E := cosd + cosd
	sind := math.Sin(d)

	Y := sinthm * cosdthm
	Y *= (Y + Y) / (1 - L)
	T := sindthm * costhm
	T *= (T + T) / L
	X := Y + T
	Y -= T
	T = d / sind
	D := 4 * T * T
	A := D * E
	B := D + D

	dist := e.a * sind * (T - f4*(T*X-Y) +
		f64*(X*(A+(T-.5*(A-E))*X)-Y*(B+E*Y)+D*X*Y))

	// Corrected half longitude difference on the auxiliary sphere. Thomas
	// writes the first factor as (2Y - E(4-X))/4 * tan(dlam), which reduces
	// to -2 cos(th1) cos(th2) sin(dlam) and stays finite at dlam = ±π/2.
	tandlammp := math.Tan(.5 * (dlam + 2*math.Cos(th1)*math.Cos(th2)*math.Sin(dlam)*
		(f2*T+f64*(32*T-(20*T-A)*X-(B+4)*Y))))

	u := math.Atan2(sindthm, tandlammp*costhm)
	v := math.Atan2(cosdthm, tandlammp*sinthm)
	return Line{
		P1:        p1,
		P2:        p2,
		Az12:      NormalizeAngle(2*math.Pi + v - u),
		Az21:      NormalizeAngle(2*math.Pi - v - u),
		S:         dist,
		Converged: true,
	}
}
