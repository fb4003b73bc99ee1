package geodesic

import (
	"errors"
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
)

// ErrUnsupportedGeometry is returned by GeometryLength for geometry types
// that have no length.
var ErrUnsupportedGeometry = errors.New("unsupported geometry")

// GeometryLength returns the geodesic length of a geometry whose X and Y
// are longitude and latitude in degrees. Rings of polygons contribute
// their perimeter; points have zero length.
func (e *Ellipsoid) GeometryLength(g geom.T) (float64, error) {
	switch g := g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return 0, nil
	case *geom.LineString:
		return e.LineLength(coordPoints(g.Coords())), nil
	case *geom.LinearRing:
		return e.LineLength(coordPoints(g.Coords())), nil
	case *geom.MultiLineString:
		var total float64
		for i := 0; i < g.NumLineStrings(); i++ {
			total += e.LineLength(coordPoints(g.LineString(i).Coords()))
		}
		return total, nil
	case *geom.Polygon:
		return e.polygonPerimeter(g), nil
	case *geom.MultiPolygon:
		var total float64
		for i := 0; i < g.NumPolygons(); i++ {
			total += e.polygonPerimeter(g.Polygon(i))
		}
		return total, nil
	case *geom.GeometryCollection:
		var total float64
		for _, c := range g.Geoms() {
			l, err := e.GeometryLength(c)
			if err != nil {
				return 0, err
			}
			total += l
		}
		return total, nil
	}
	return 0, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
}

func (e *Ellipsoid) polygonPerimeter(p *geom.Polygon) float64 {
	var total float64
	for i := 0; i < p.NumLinearRings(); i++ {
		total += e.LineLength(coordPoints(p.LinearRing(i).Coords()))
	}
	return total
}

// LineString returns the points as an XY line string in degrees.
func LineString(pts []Point) *geom.LineString {
	coords := make([]geom.Coord, len(pts))
	for i, p := range pts {
		coords[i] = geom.Coord{deg(p.Lon), deg(p.Lat)}
	}
	return geom.NewLineString(geom.XY).MustSetCoords(coords)
}

func coordPoints(coords []geom.Coord) []Point {
	pts := make([]Point, len(coords))
	for i, c := range coords {
		pts[i] = Point{Lon: c[0] * math.Pi / 180, Lat: c[1] * math.Pi / 180}
	}
	return pts
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
