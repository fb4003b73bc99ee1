package geodesic

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// PointFromLatLng converts an S2 latitude/longitude pair.
func PointFromLatLng(ll s2.LatLng) Point {
	return Point{Lon: ll.Lng.Radians(), Lat: ll.Lat.Radians()}
}

// LatLng converts p to an S2 latitude/longitude pair.
func (p Point) LatLng() s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(p.Lat), Lng: s1.Angle(p.Lon)}
}

// DistanceS2 returns the geodesic distance between two S2 points, which
// are taken as geodetic directions on the ellipsoid.
func (e *Ellipsoid) DistanceS2(a, b s2.Point) float64 {
	return e.Inverse(PointFromLatLng(s2.LatLngFromPoint(a)), PointFromLatLng(s2.LatLngFromPoint(b))).S
}

// DestinationS2 returns the S2 point reached from start by travelling
// distance s along azimuth az (radians clockwise from north).
func (e *Ellipsoid) DestinationS2(start s2.Point, az, s float64) s2.Point {
	l := e.Direct(PointFromLatLng(s2.LatLngFromPoint(start)), az, s)
	return s2.PointFromLatLng(l.P2.LatLng())
}
