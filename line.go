package geodesic

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned by SolveDirect and SolveInverse when a required
// point or ellipsoid is missing, the ellipsoid parameters are unusable, or
// the distance of a direct problem is not positive.
var ErrInvalidInput = errors.New("invalid geodesic input")

// Point is a geographic position in radians.
//
// Lat must be in [-π/2, π/2]. Lon need not be normalized on input; solver
// outputs are always in (-π, π].
type Point struct {
	Lon float64
	Lat float64
}

// Line is a geodesic between two points.
//
// For the direct problem P1, Az12 and S are the knowns and the solver fills
// in P2 and Az21. For the inverse problem P1 and P2 are the knowns and the
// solver fills in Az12, Az21 and S. Azimuths are radians clockwise from
// north; Az21 is the back azimuth, pointing from P2 toward P1. S is in the
// units of the ellipsoid's semi-major axis.
type Line struct {
	P1, P2 Point
	Az12   float64
	Az21   float64
	S      float64

	// Converged is false when an iterative solver stopped at its step cap
	// instead of reaching its tolerance. The values are still the solver's
	// best estimate, but may be imprecise, typically for nearly antipodal
	// points.
	//
	// It says nothing about the accuracy of a closed form: Thomas's
	// solutions are always marked converged, although their second order
	// errors grow to kilometres, and beyond, near the antipode.
	Converged bool
}

// zeroLine is the degenerate result for coincident points.
func zeroLine(p1, p2 Point) Line {
	return Line{P1: p1, P2: p2, Converged: true}
}

// SolveDirect solves the direct problem: the point reached from p1 by
// travelling distance s along azimuth az12.
//
// It fails with ErrInvalidInput if p1 or e is nil, e is not a usable
// ellipsoid, or s is not positive. Otherwise it always succeeds.
func SolveDirect(e *Ellipsoid, p1 *Point, az12, s float64) (Line, error) {
	switch {
	case e == nil:
		return Line{}, fmt.Errorf("%w: no ellipsoid", ErrInvalidInput)
	case !e.Valid():
		return Line{}, fmt.Errorf("%w: ellipsoid a=%g f=%g", ErrInvalidInput, e.a, e.f)
	case p1 == nil:
		return Line{}, fmt.Errorf("%w: no starting point", ErrInvalidInput)
	case !(s > 0):
		return Line{}, fmt.Errorf("%w: distance %g is not positive", ErrInvalidInput, s)
	case !validPoint(*p1):
		return Line{}, fmt.Errorf("%w: latitude %g out of range", ErrInvalidInput, p1.Lat)
	}
	return e.Direct(*p1, az12, s), nil
}

// SolveInverse solves the inverse problem between p1 and p2.
//
// It fails with ErrInvalidInput if either point or e is nil or e is not a
// usable ellipsoid.
func SolveInverse(e *Ellipsoid, p1, p2 *Point) (Line, error) {
	switch {
	case e == nil:
		return Line{}, fmt.Errorf("%w: no ellipsoid", ErrInvalidInput)
	case !e.Valid():
		return Line{}, fmt.Errorf("%w: ellipsoid a=%g f=%g", ErrInvalidInput, e.a, e.f)
	case p1 == nil || p2 == nil:
		return Line{}, fmt.Errorf("%w: missing end point", ErrInvalidInput)
	case !validPoint(*p1):
		return Line{}, fmt.Errorf("%w: latitude %g out of range", ErrInvalidInput, p1.Lat)
	case !validPoint(*p2):
		return Line{}, fmt.Errorf("%w: latitude %g out of range", ErrInvalidInput, p2.Lat)
	}
	return e.Inverse(*p1, *p2), nil
}

func validPoint(p Point) bool {
	return math.Abs(p.Lat) <= math.Pi/2 && !math.IsNaN(p.Lon) && !math.IsInf(p.Lon, 0)
}
