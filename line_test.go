package geodesic

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEllipsoid(t *testing.T) {
	assert.Equal(t, 6378137.0, WGS84.Radius())
	assert.InDelta(t, 6356752.314245, WGS84.SemiMinor(), 1e-6)
	assert.InDelta(t, 0.00669437999014, WGS84.EccentricitySquared(), 1e-14)
	assert.InDelta(t, 1-0.00669437999014, WGS84.OneMinusEs(), 1e-14)
	assert.False(t, WGS84.Spherical())
	assert.True(t, WGS84.Valid())

	for _, e := range []*Ellipsoid{GRS80, Clarke1866, International1924, Globe} {
		assert.True(t, e.Valid())
	}
	assert.Equal(t, 1.0, Globe.OneMinusEs())
	assert.Equal(t, Globe.Radius(), Globe.SemiMinor())

	assert.False(t, NewEllipsoid(0, 0).Valid())
	assert.False(t, NewEllipsoid(-1, 0.003).Valid())
	assert.False(t, NewEllipsoid(math.Inf(1), 0).Valid())
	assert.False(t, NewEllipsoid(math.NaN(), 0).Valid())
	assert.False(t, NewEllipsoid(1, 1).Valid())
	assert.False(t, NewEllipsoid(1, -0.1).Valid())
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "auto", Auto.String())
	assert.Equal(t, "vincenty", Vincenty.String())
	assert.Equal(t, "thomas", Thomas.String())
	assert.Equal(t, "unknown", Method(9).String())
}

func TestSolveDirect(t *testing.T) {
	p1 := Point{0.1, 0.7}
	l, err := SolveDirect(WGS84, &p1, 0.4, 5e5)
	require.NoError(t, err)
	assert.Equal(t, WGS84.Direct(p1, 0.4, 5e5), l)

	l, err = SolveDirect(Globe, &p1, 0.4, 5e5)
	require.NoError(t, err)
	assert.Equal(t, SphericalDirect(Globe, p1, 0.4, 5e5), l)

	bad := Point{0, 2}
	tests := []struct {
		name string
		e    *Ellipsoid
		p1   *Point
		s    float64
	}{
		{"nil ellipsoid", nil, &p1, 1},
		{"bad ellipsoid", NewEllipsoid(-1, 0), &p1, 1},
		{"nil point", WGS84, nil, 1},
		{"zero distance", WGS84, &p1, 0},
		{"negative distance", WGS84, &p1, -5},
		{"nan distance", WGS84, &p1, math.NaN()},
		{"bad latitude", WGS84, &bad, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := SolveDirect(tt.e, tt.p1, 0, tt.s)
			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
			assert.Equal(t, Line{}, l)
		})
	}
}

func TestSolveInverse(t *testing.T) {
	p1, p2 := Point{0.1, 0.7}, Point{-0.3, 0.2}
	l, err := SolveInverse(WGS84, &p1, &p2)
	require.NoError(t, err)
	assert.Equal(t, WGS84.Inverse(p1, p2), l)

	l, err = SolveInverse(WGS84, &p1, &p1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.S)

	bad := Point{math.Inf(1), 0}
	tests := []struct {
		name   string
		e      *Ellipsoid
		p1, p2 *Point
	}{
		{"nil ellipsoid", nil, &p1, &p2},
		{"bad ellipsoid", NewEllipsoid(1, 1), &p1, &p2},
		{"nil first point", WGS84, nil, &p2},
		{"nil second point", WGS84, &p1, nil},
		{"bad first point", WGS84, &bad, &p2},
		{"bad second point", WGS84, &p1, &bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SolveInverse(tt.e, tt.p1, tt.p2)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
