// Great circle routines for a spherical earth.
//
// Formulas from "Map Projections--A Working Manual", USGS Professional
// Paper 1395, pp. 30-31, J. P. Snyder (1987).

package geodesic

import "math"

// SphericalDirect solves the direct problem on a sphere of radius e.Radius(),
// ignoring any flattening.
func SphericalDirect(e *Ellipsoid, p1 Point, az12, s float64) Line {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / cosδ−sinφ1⋅sinφ2
	δ := s / e.a
	cδ, sδ := math.Cos(δ), math.Sin(δ)
	cφ1, sφ1 := math.Cos(p1.Lat), math.Sin(p1.Lat)
	cθ := math.Cos(az12)

	φ2 := math.Asin(sφ1*cδ + cφ1*sδ*cθ)
	Δλ := math.Atan2(sδ*math.Sin(az12), cφ1*cδ-sφ1*sδ*cθ)
	λ2 := NormalizeAngle(p1.Lon + Δλ)

	// back azimuth is the bearing from point 2 toward point 1
	az21 := math.Atan2(cφ1*math.Sin(-Δλ),
		math.Cos(φ2)*sφ1-math.Sin(φ2)*cφ1*math.Cos(Δλ))

	return Line{
		P1:        p1,
		P2:        Point{Lon: λ2, Lat: φ2},
		Az12:      NormalizeAngle(az12),
		Az21:      NormalizeAngle(az21),
		S:         s,
		Converged: true,
	}
}

// SphericalInverse solves the inverse problem on a sphere of radius
// e.Radius(), ignoring any flattening.
func SphericalInverse(e *Ellipsoid, p1, p2 Point) Line {
	Δλ := p2.Lon - p1.Lon
	Δφ := p2.Lat - p1.Lat
	c2, c1 := math.Cos(p2.Lat), math.Cos(p1.Lat)
	s2, s1 := math.Sin(p2.Lat), math.Sin(p1.Lat)

	// haversine form keeps precision for closely spaced points
	shφ := math.Sin(0.5 * Δφ)
	shλ := math.Sin(0.5 * Δλ)
	haver := math.Min(1, shφ*shφ+c1*c2*shλ*shλ)
	dist := 2 * e.a * math.Asin(math.Sqrt(haver))

	sλ, cλ := math.Sin(Δλ), math.Cos(Δλ)
	az12 := positiveAngle(math.Atan2(c2*sλ, c1*s2-s1*c2*cλ))
	az21 := positiveAngle(-math.Atan2(c1*sλ, c2*s1-s2*c1*cλ))

	return Line{
		P1:        p1,
		P2:        p2,
		Az12:      NormalizeAngle(az12),
		Az21:      NormalizeAngle(az21),
		S:         dist,
		Converged: true,
	}
}
