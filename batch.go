package geodesic

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Arc generates points at a fixed distance from l.P1 while sweeping the
// azimuth. The first point is l.P2; each of the following n points is the
// end of a line of length l.S from l.P1 with the azimuth advanced by dAz
// (radians) over the previous one. Negative n is taken as zero.
func (e *Ellipsoid) Arc(l Line, dAz float64, n int) []Point {
	n = max(n, 0)
	pts := make([]Point, 0, n+1)
	pts = append(pts, l.P2)
	az := l.Az12
	for i := 0; i < n; i++ {
		az = NormalizeAngle(az + dAz)
		pts = append(pts, e.Direct(l.P1, az, l.S).P2)
	}
	return pts
}

// Interpolate divides the line into n equal parts and returns the n+1
// division points, starting with l.P1 and ending with l.P2. l.Az12 and l.S
// must be set, typically by Inverse. Non-positive n returns nil.
func (e *Ellipsoid) Interpolate(l Line, n int) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, 0, n+1)
	pts = append(pts, l.P1)
	step := l.S / float64(n)
	for i := 1; i < n; i++ {
		pts = append(pts, e.Direct(l.P1, l.Az12, float64(i)*step).P2)
	}
	return append(pts, l.P2)
}

// Intervals returns the number of parts of length step that best divide a
// line of length s, the count Interpolate expects. It is 0 when the ratio
// is not finite, as for a zero step.
func Intervals(s, step float64) int {
	r := s / math.Abs(step)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return int(r + .5)
}

// Npts returns n points equally spaced along the geodesic from p1 to p2,
// excluding the end points themselves.
func (e *Ellipsoid) Npts(p1, p2 Point, n int) []Point {
	if n <= 0 {
		return nil
	}
	l := e.Inverse(p1, p2)
	step := l.S / float64(n+1)
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = e.Direct(p1, l.Az12, float64(i+1)*step).P2
	}
	return pts
}

// DirectQuery is one direct problem of a batch.
type DirectQuery struct {
	P1   Point
	Az12 float64
	S    float64
}

// InverseQuery is one inverse problem of a batch.
type InverseQuery struct {
	P1, P2 Point
}

// DirectBatch solves many direct problems in parallel. Each query is
// validated as by SolveDirect; the first invalid query, or cancellation of
// ctx, aborts the batch and its error is returned.
func (e *Ellipsoid) DirectBatch(ctx context.Context, queries []DirectQuery) ([]Line, error) {
	lines := make([]Line, len(queries))
	err := runBatch(ctx, len(queries), func(i int) error {
		q := queries[i]
		l, err := SolveDirect(e, &q.P1, q.Az12, q.S)
		if err != nil {
			return fmt.Errorf("direct query %d: %w", i, err)
		}
		lines[i] = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// InverseBatch solves many inverse problems in parallel. Each query is
// validated as by SolveInverse.
func (e *Ellipsoid) InverseBatch(ctx context.Context, queries []InverseQuery) ([]Line, error) {
	lines := make([]Line, len(queries))
	err := runBatch(ctx, len(queries), func(i int) error {
		q := queries[i]
		l, err := SolveInverse(e, &q.P1, &q.P2)
		if err != nil {
			return fmt.Errorf("inverse query %d: %w", i, err)
		}
		lines[i] = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// runBatch calls solve for every index in [0, n), splitting the range into
// one contiguous chunk per processor.
func runBatch(ctx context.Context, n int, solve func(i int) error) error {
	workers := min(runtime.GOMAXPROCS(0), n)
	if workers == 0 {
		return ctx.Err()
	}
	chunk := (n + workers - 1) / workers

	eg, ctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		eg.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := solve(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}
