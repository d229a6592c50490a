package corpus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversine_ZeroDistanceForIdenticalPoints(t *testing.T) {
	p := Pair{X0: 12.3, Y0: 45.6, X1: 12.3, Y1: 45.6}
	require.InDelta(t, 0.0, Haversine(p, EarthRadiusKM), 1e-9)
}

func TestHaversine_LondonToNewYork(t *testing.T) {
	p := Pair{X0: 0.1246, Y0: 51.5007, X1: -74.0445, Y1: 40.6892}
	got := Haversine(p, EarthRadiusKM)
	require.InDelta(t, 5574.84, got, 1e-1)
}

func TestHaversine_Symmetric(t *testing.T) {
	p := Pair{X0: 10, Y0: 20, X1: 30, Y1: 40}
	rev := Pair{X0: p.X1, Y0: p.Y1, X1: p.X0, Y1: p.Y0}
	require.InDelta(t, Haversine(p, EarthRadiusKM), Haversine(rev, EarthRadiusKM), 1e-9)
}

func TestHaversine_AntipodalIsHalfCircumference(t *testing.T) {
	p := Pair{X0: 0, Y0: 0, X1: 180, Y1: 0}
	got := Haversine(p, EarthRadiusKM)
	require.InDelta(t, EarthRadiusKM*3.14159265358979, got, 1e-3)
}
