package corpus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate_UniformProducesRequestedCountWithinRange(t *testing.T) {
	pairs, err := Generate(GenerateConfig{Count: 500, Seed: 1, Method: Uniform, Workers: 4})
	require.NoError(t, err)
	require.Len(t, pairs, 500)

	for _, p := range pairs {
		require.GreaterOrEqual(t, p.X0, -180.0)
		require.LessOrEqual(t, p.X0, 180.0)
		require.GreaterOrEqual(t, p.Y0, -90.0)
		require.LessOrEqual(t, p.Y0, 90.0)
	}
}

func TestGenerate_DeterministicForSameSeed(t *testing.T) {
	a, err := Generate(GenerateConfig{Count: 200, Seed: 42, Method: Uniform, Workers: 3})
	require.NoError(t, err)
	b, err := Generate(GenerateConfig{Count: 200, Seed: 42, Method: Uniform, Workers: 3})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerate_ClusterStaysWithinBounds(t *testing.T) {
	pairs, err := Generate(GenerateConfig{Count: 300, Seed: 7, Method: Cluster, Clusters: 4, Workers: 2})
	require.NoError(t, err)
	require.Len(t, pairs, 300)
	for _, p := range pairs {
		require.GreaterOrEqual(t, p.X0, -180.0)
		require.LessOrEqual(t, p.X0, 180.0)
		require.GreaterOrEqual(t, p.Y1, -90.0)
		require.LessOrEqual(t, p.Y1, 90.0)
	}
}

func TestGenerate_ZeroCountReturnsEmpty(t *testing.T) {
	pairs, err := Generate(GenerateConfig{Count: 0})
	require.NoError(t, err)
	require.Nil(t, pairs)
}

func TestGenerate_WorkersExceedingCountClamps(t *testing.T) {
	pairs, err := Generate(GenerateConfig{Count: 3, Seed: 1, Method: Uniform, Workers: 100})
	require.NoError(t, err)
	require.Len(t, pairs, 3)
}
