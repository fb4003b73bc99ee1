package geodesic

import "math"

// WGS84 conforming ellispoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = NewEllipsoid(6378137, float64(1.)/298.257223563)

// GRS80 is the Geodetic Reference System 1980 ellipsoid.
var GRS80 = NewEllipsoid(6378137, float64(1.)/298.257222101)

// Clarke1866 is the ellipsoid of the North American Datum of 1927.
var Clarke1866 = NewEllipsoid(6378206.4, float64(1.)/294.978698214)

// International1924 is the Hayford ellipsoid.
var International1924 = NewEllipsoid(6378388, float64(1.)/297)

// Globe is a pre-initialized spherical representing Earth as a
// terrestrial globe.
var Globe = NewSpherical(6378137)

// Method selects the ellipsoidal solver family.
type Method int

const (
	// Auto uses Vincenty's iterative formulas. The nearly antipodal
	// inverse problems Vincenty cannot solve are found by Newton's method
	// on Vincenty's direct problem.
	Auto Method = iota
	// Vincenty uses the iterative series solution of T. Vincenty.
	Vincenty
	// Thomas uses the closed form second order solution of P. D. Thomas.
	Thomas
)

func (m Method) String() string {
	switch m {
	case Auto:
		return "auto"
	case Vincenty:
		return "vincenty"
	case Thomas:
		return "thomas"
	}
	return "unknown"
}

// Ellipsoid holds the parameters of a reference ellipsoid. It is immutable
// and may be shared between goroutines.
type Ellipsoid struct {
	a     float64 // semi-major axis
	f     float64 // flattening
	es    float64 // eccentricity squared
	oneEs float64 // 1 - es
}

// NewEllipsoid initializes a new geodesic ellipsoid object.
//
// Param radius is the equatorial radius (semi-major axis). Its unit is the
// unit of every distance passed to or returned from the ellipsoid.
// Param flattening is the flattening factor of the ellipsoid; zero makes it
// a sphere.
//
// The WGS84 pacakge-level variable is a pre-initialized ellipsoid
// representing Earth.
func NewEllipsoid(radius, flattening float64) *Ellipsoid {
	es := flattening * (2 - flattening)
	return &Ellipsoid{a: radius, f: flattening, es: es, oneEs: 1 - es}
}

// NewSpherical initializes a new geodesic ellipsoid object that uses
// simplified operations on a sphere.
//
// The Inverse and Direct operations will often be more computationally
// efficient than NewEllipsoid because it uses simplier great-circle
// calculations such as the Haversine formula.
//
// The Globe package-level variable is a pre-initialized spherical
// representing Earth as a terrestrial globe.
func NewSpherical(radius float64) *Ellipsoid {
	return NewEllipsoid(radius, 0)
}

// Radius of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.a
}

// SemiMinor is the polar semi-axis, a(1-f).
func (e *Ellipsoid) SemiMinor() float64 {
	return e.a * (1 - e.f)
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.f
}

// EccentricitySquared of the Ellipsoid
func (e *Ellipsoid) EccentricitySquared() float64 {
	return e.es
}

// OneMinusEs returns 1 - EccentricitySquared.
func (e *Ellipsoid) OneMinusEs() float64 {
	return e.oneEs
}

// Spherical returns true if the flattening is zero.
func (e *Ellipsoid) Spherical() bool {
	return e.f == 0
}

// Valid reports whether the parameters describe a usable ellipsoid: a
// finite positive radius and a flattening in [0, 1).
func (e *Ellipsoid) Valid() bool {
	return e.a > 0 && !math.IsInf(e.a, 1) && e.f >= 0 && e.f < 1
}

// Direct solves the direct geodesic problem.
//
// Param p1 is the starting point (radians).
// Param az12 is the azimuth at p1 (radians clockwise from north).
// Param s is the distance from p1 to the end point.
//
// The returned line carries the end point and the back azimuth at it, both
// normalized to (-π, π]. Spheres use great circle formulas, other
// ellipsoids Vincenty's method. Input is assumed valid; see SolveDirect for
// the checked variant.
func (e *Ellipsoid) Direct(p1 Point, az12, s float64) Line {
	return e.DirectWith(Auto, p1, az12, s)
}

// DirectWith is like Direct but selects the ellipsoidal method. Auto and
// Vincenty are the same for the direct problem.
func (e *Ellipsoid) DirectWith(m Method, p1 Point, az12, s float64) Line {
	switch {
	case e.Spherical():
		return SphericalDirect(e, p1, az12, s)
	case m == Thomas:
		return ThomasDirect(e, p1, az12, s)
	default:
		return VincentyDirect(e, p1, az12, s)
	}
}

// Inverse solves the inverse geodesic problem.
//
// Param p1 and p2 are the end points (radians).
//
// The returned line carries the distance, the forward azimuth at p1 and the
// back azimuth at p2. Spheres use great circle formulas. On an ellipsoid
// Vincenty's method is used. When p1 and p2 are nearly antipodal with one
// of them just off the equator, Vincenty's inverse has no solution; the
// line is then found by shooting with Vincenty's direct problem until it
// ends on p2, and Converged reports whether it got within 0.1 mm.
//
// Other nearly antipodal lines may stop at Vincenty's step cap; the
// result then has Converged unset.
//
// Thomas's closed form is only second order in the flattening and breaks
// down close to the antipode, so it is never chosen here. Use InverseWith
// to select it.
func (e *Ellipsoid) Inverse(p1, p2 Point) Line {
	return e.InverseWith(Auto, p1, p2)
}

// InverseWith is like Inverse but selects the ellipsoidal method.
func (e *Ellipsoid) InverseWith(m Method, p1, p2 Point) Line {
	if e.Spherical() {
		return SphericalInverse(e, p1, p2)
	}
	switch m {
	case Vincenty:
		return VincentyInverse(e, p1, p2)
	case Thomas:
		return ThomasInverse(e, p1, p2)
	}
	if e.nearAntipodal(p1, p2) {
		return liftOffInverse(e, p1, p2)
	}
	return VincentyInverse(e, p1, p2)
}

// nearAntipodal reports whether p2 lies beyond the lift-off longitude of p1
// with one point just off the equator, where Vincenty's ladder has no
// solution.
func (e *Ellipsoid) nearAntipodal(p1, p2 Point) bool {
	return classifyInverse(e, p1, p2) == inverseLiftOff
}
