package geodesic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func angleDiff(a, b float64) float64 {
	return math.Abs(math.Remainder(a-b, 2*math.Pi))
}

func TestVincentyQuarterMeridian(t *testing.T) {
	l := VincentyInverse(WGS84, Point{0, 0}, Point{0, math.Pi / 2})
	assert.InDelta(t, 10001965.729312, l.S, 1e-3)
	assert.Equal(t, 0.0, l.Az12)
	assert.Equal(t, math.Pi, l.Az21)
	assert.True(t, l.Converged)
}

func TestVincentyMeridianSouth(t *testing.T) {
	l := VincentyInverse(WGS84, Point{1, 0.5}, Point{1, -0.2})
	assert.InDelta(t, 4437500.130185, l.S, 1e-3)
	assert.Equal(t, math.Pi, l.Az12)
	assert.Equal(t, 0.0, l.Az21)

	// same meridian written on both sides of the antimeridian
	l = VincentyInverse(WGS84, Point{-math.Pi, 0.5}, Point{math.Pi, 0.2})
	assert.InDelta(t, 1902987.741732, l.S, 1e-3)
	assert.Equal(t, math.Pi, l.Az12)
}

func TestVincentyEquator(t *testing.T) {
	a := WGS84.Radius()
	l := VincentyInverse(WGS84, Point{0, 0}, Point{math.Pi / 2, 0})
	assert.InDelta(t, a*math.Pi/2, l.S, 1e-6)
	assert.Equal(t, math.Pi/2, l.Az12)
	assert.Equal(t, 3*math.Pi/2, l.Az21)

	l = VincentyInverse(WGS84, Point{0, 0}, Point{-math.Pi / 2, 0})
	assert.InDelta(t, a*math.Pi/2, l.S, 1e-6)
	assert.Equal(t, 3*math.Pi/2, l.Az12)
	assert.Equal(t, math.Pi/2, l.Az21)
}

func TestVincentyCoincident(t *testing.T) {
	p := Point{-1.2, 0.4}
	l := VincentyInverse(WGS84, p, p)
	assert.Equal(t, 0.0, l.S)
	assert.Equal(t, 0.0, l.Az12)
	assert.Equal(t, 0.0, l.Az21)
	assert.True(t, l.Converged)

	q := Point{p.Lon + 2*math.Pi, p.Lat}
	assert.Equal(t, 0.0, VincentyInverse(WGS84, p, q).S)
}

func TestVincentyGRS80(t *testing.T) {
	// Tsukuba to Tokyo, checked against the GSI survey calculator.
	p1 := Point{rad(140.08785502777778), rad(36.10377477777778)}
	p2 := Point{rad(139.74475044444443), rad(35.65502847222223)}
	l := VincentyInverse(GRS80, p1, p2)
	assert.InDelta(t, 58643.804, l.S, 0.01)
}

func TestVincentyEquatorialAntipodal(t *testing.T) {
	l := VincentyInverse(WGS84, Point{0, 0}, Point{rad(179.8), 0})
	assert.InDelta(t, 20000239.437725, l.S, 1e-2)
	assert.InDelta(t, rad(19.368626), l.Az12, 1e-6)
	assert.InDelta(t, 2*math.Pi-l.Az12, l.Az21, 1e-12)
	assert.True(t, l.Converged)

	m := VincentyInverse(WGS84, Point{0, 0}, Point{rad(-179.8), 0})
	assert.InDelta(t, l.S, m.S, 1e-6)
	assert.InDelta(t, 2*math.Pi-l.Az12, m.Az12, 1e-12)
	assert.InDelta(t, l.Az12, m.Az21, 1e-12)

	// exactly antipodal, over the pole
	l = VincentyInverse(WGS84, Point{0, 0}, Point{math.Pi, 0})
	assert.InDelta(t, 20003931.458625, l.S, 1e-2)
	assert.Equal(t, 0.0, l.Az12)
	assert.Equal(t, 0.0, l.Az21)
}

func TestVincentyLiftOff(t *testing.T) {
	p1, p2 := Point{0, 0.001}, Point{rad(179.8), 0}
	assert.Equal(t, inverseLiftOff, classifyInverse(WGS84, p1, p2))
	assert.Equal(t, zeroLine(p1, p2), VincentyInverse(WGS84, p1, p2))
}

func TestVincentyNonConvergence(t *testing.T) {
	p1, p2 := Point{0, -0.5}, Point{rad(179.9), 0.5}
	l := VincentyInverse(WGS84, p1, p2)
	assert.False(t, l.Converged)
	assert.False(t, math.IsNaN(l.S))
	assert.Greater(t, l.S, 1.99e7)
	assert.Less(t, l.S, 2.01e7)

	// capped lines are still reported through the default dispatch
	assert.Equal(t, l, WGS84.Inverse(p1, p2))
}

func TestClassifyInverse(t *testing.T) {
	lift := rad(179.8)
	tests := []struct {
		p1, p2 Point
		want   inverseCase
	}{
		{Point{0.5, 0.5}, Point{0.5, 0.5}, inverseCoincident},
		{Point{0.5, 0.1}, Point{0.5, 0.7}, inverseMeridian},
		{Point{-math.Pi, 0.1}, Point{math.Pi, 0.7}, inverseMeridian},
		{Point{0, 0.1}, Point{1, 0.7}, inverseGeneral},
		{Point{0, 0}, Point{lift, 0}, inverseEquatorialAntipodal},
		{Point{0, 0}, Point{-lift, 0}, inverseEquatorialAntipodal},
		{Point{0, 0.001}, Point{lift, 0}, inverseLiftOff},
		{Point{0, 0.001}, Point{lift, -0.001}, inverseLiftOff},
		{Point{0, 0.5}, Point{lift, -0.5}, inverseGeneral},
		{Point{0, 0}, Point{lift, 0.5}, inverseGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyInverse(WGS84, tt.p1, tt.p2), "%v -> %v", tt.p1, tt.p2)
	}

	// a sphere has no lift-off region
	assert.Equal(t, inverseGeneral, classifyInverse(Globe, Point{0, 0.001}, Point{lift, 0}))
	assert.Equal(t, "lift-off", inverseLiftOff.String())
}

// randomLine picks a start point, azimuth and distance well away from the
// antipode.
func randomLine(rng *rand.Rand, maxS float64) (Point, float64, float64) {
	p1 := Point{rng.Float64()*2*math.Pi - math.Pi, rng.Float64()*2.8 - 1.4}
	az := rng.Float64()*2*math.Pi - math.Pi
	s := 1e3 + rng.Float64()*(maxS-1e3)
	return p1, az, s
}

func TestVincentyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20_000; i++ {
		p1, az, s := randomLine(rng, 1e7)
		dir := WGS84.Direct(p1, az, s)
		require.True(t, dir.Converged)
		inv := WGS84.Inverse(p1, dir.P2)
		require.True(t, inv.Converged)
		require.InDelta(t, s, inv.S, s*1e-9, "%v az=%v s=%v", p1, az, s)
		require.Less(t, angleDiff(az, inv.Az12), 1e-9, "%v az=%v s=%v", p1, az, s)
		require.Less(t, angleDiff(dir.Az21, inv.Az21), 1e-9, "%v az=%v s=%v", p1, az, s)
	}
}

func TestVincentySymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 20_000; i++ {
		p1, az, s := randomLine(rng, 1e7)
		p2 := WGS84.Direct(p1, az, s).P2
		fwd := VincentyInverse(WGS84, p1, p2)
		rev := VincentyInverse(WGS84, p2, p1)
		require.InDelta(t, fwd.S, rev.S, fwd.S*1e-9)
		require.Less(t, angleDiff(fwd.Az12, rev.Az21), 1e-9)
		require.Less(t, angleDiff(fwd.Az21, rev.Az12), 1e-9)
	}
}

func TestVincentyAzimuthRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		p1, az, s := randomLine(rng, 1e7)
		l := VincentyInverse(WGS84, p1, WGS84.Direct(p1, az, s).P2)
		require.True(t, l.Az12 >= 0 && l.Az12 < 2*math.Pi)
		require.True(t, l.Az21 >= 0 && l.Az21 < 2*math.Pi)
	}
}

func TestVincentyDirectOutputs(t *testing.T) {
	l := VincentyDirect(WGS84, Point{3, 0.2}, 2*math.Pi+1, 2e6)
	assert.InDelta(t, 1, l.Az12, 1e-14)
	assert.True(t, l.P2.Lon > -math.Pi && l.P2.Lon <= math.Pi)
	assert.True(t, l.Az21 > -math.Pi && l.Az21 <= math.Pi)
	assert.Equal(t, 2e6, l.S)

	// due north from the equator reaches the quarter meridian at the pole
	l = VincentyDirect(WGS84, Point{0, 0}, 0, 10001965.729312)
	assert.InDelta(t, math.Pi/2, l.P2.Lat, 1e-9)
}
