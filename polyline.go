package geodesic

// Polyline struct for accumulating the length of a sequence of geodesics.
// This must be initialized from Ellipsoid.PolylineInit before use.
type Polyline struct {
	e      *Ellipsoid
	closed bool
	first  Point
	last   Point
	n      int
	length float64
}

// PolylineInit initializes a polyline.
// Param closed for a closed ring instead of an open line.
//
// If closed is set, Compute includes the edge from the last vertex back to
// the first, so the result is the perimeter of the polygon the vertices
// describe. There's no need to "close" the ring by repeating the first
// vertex.
func (e *Ellipsoid) PolylineInit(closed bool) Polyline {
	return Polyline{e: e, closed: closed}
}

// AddPoint adds a point to the polyline.
//
// Param pt is the position of the point (radians).
func (p *Polyline) AddPoint(pt Point) {
	if p.n == 0 {
		p.first = pt
	} else {
		p.length += p.e.Inverse(p.last, pt).S
	}
	p.last = pt
	p.n++
}

// AddEdge adds an edge to the polyline.
//
// Param az is the azimuth at the current point (radians).
// Param s is the distance from the current point to the next point.
//
// An edge added before any point is ignored.
func (p *Polyline) AddEdge(az, s float64) {
	if p.n == 0 {
		return
	}
	p.last = p.e.Direct(p.last, az, s).P2
	p.length += s
	p.n++
}

// Compute returns the length of the polyline, or the perimeter if it was
// initialized as closed, and the number of points.
//
// More points can be added to the polyline after this call.
func (p *Polyline) Compute() (length float64, n int) {
	length = p.length
	if p.closed && p.n > 2 {
		length += p.e.Inverse(p.last, p.first).S
	}
	return length, p.n
}

// Clear the polyline, allowing a new one to be started.
func (p *Polyline) Clear() {
	p.first, p.last = Point{}, Point{}
	p.n = 0
	p.length = 0
}

// LineLengths returns the geodesic distances between consecutive points.
func (e *Ellipsoid) LineLengths(pts []Point) []float64 {
	if len(pts) < 2 {
		return nil
	}
	d := make([]float64, len(pts)-1)
	for i := range d {
		d[i] = e.Inverse(pts[i], pts[i+1]).S
	}
	return d
}

// LineLength returns the total geodesic length of the path through pts.
func (e *Ellipsoid) LineLength(pts []Point) float64 {
	var total float64
	for _, d := range e.LineLengths(pts) {
		total += d
	}
	return total
}
