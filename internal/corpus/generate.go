package corpus

import (
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type Method string

const (
	Uniform Method = "uniform"
	Cluster Method = "cluster"
)

type GenerateConfig struct {
	Count    int
	Seed     int64
	Method   Method
	Clusters int // only used by Cluster
	Workers  int // shard count; 0 means GOMAXPROCS
}

// Generate synthesizes Count pairs in Count-sized order, sharding the
// work across Workers goroutines the way GC's collectors run one
// goroutine per shard under a single errgroup: each worker owns a
// disjoint, contiguous range of the output and writes only into it, so
// no synchronization is needed beyond the final Wait.
func Generate(cfg GenerateConfig) ([]Pair, error) {
	if cfg.Count <= 0 {
		return nil, nil
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.Count {
		workers = cfg.Count
	}

	centers := clusterCenters(cfg)

	pairs := make([]Pair, cfg.Count)
	shardSize := (cfg.Count + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * shardSize
		end := start + shardSize
		if end > cfg.Count {
			end = cfg.Count
		}
		if start >= end {
			continue
		}
		workerSeed := cfg.Seed + int64(w)
		startCopy, endCopy := start, end
		g.Go(func() error {
			rng := rand.New(rand.NewSource(workerSeed))
			for i := startCopy; i < endCopy; i++ {
				pairs[i] = generateOne(cfg.Method, rng, centers)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func generateOne(method Method, rng *rand.Rand, centers []clusterCenter) Pair {
	switch method {
	case Cluster:
		return generateClusterPair(rng, centers)
	default:
		return generateUniformPair(rng)
	}
}

func generateUniformPair(rng *rand.Rand) Pair {
	return Pair{
		X0: randomLongitude(rng),
		Y0: randomLatitude(rng),
		X1: randomLongitude(rng),
		Y1: randomLatitude(rng),
	}
}

func randomLongitude(rng *rand.Rand) float64 {
	return rng.Float64()*360.0 - 180.0
}

func randomLatitude(rng *rand.Rand) float64 {
	return rng.Float64()*180.0 - 90.0
}

type clusterCenter struct {
	lon, lat float64
}

// clusterMaxOffsetDeg caps how far a clustered point can land from its
// center, keeping clusters visually distinct on a 360x180 degree grid.
const clusterMaxOffsetDeg = 20.0

func clusterCenters(cfg GenerateConfig) []clusterCenter {
	if cfg.Method != Cluster {
		return nil
	}
	n := cfg.Clusters
	if n <= 0 {
		n = 1
	}
	rng := rand.New(rand.NewSource(cfg.Seed ^ 0x5a5a5a5a))
	centers := make([]clusterCenter, n)
	for i := range centers {
		centers[i] = clusterCenter{lon: randomLongitude(rng), lat: randomLatitude(rng)}
	}
	return centers
}

func generateClusterPair(rng *rand.Rand, centers []clusterCenter) Pair {
	c0 := centers[rng.Intn(len(centers))]
	c1 := centers[rng.Intn(len(centers))]
	return Pair{
		X0: clampLongitude(c0.lon + (rng.Float64()*2-1)*clusterMaxOffsetDeg),
		Y0: clampLatitude(c0.lat + (rng.Float64()*2-1)*clusterMaxOffsetDeg),
		X1: clampLongitude(c1.lon + (rng.Float64()*2-1)*clusterMaxOffsetDeg),
		Y1: clampLatitude(c1.lat + (rng.Float64()*2-1)*clusterMaxOffsetDeg),
	}
}

func clampLongitude(v float64) float64 {
	return math.Max(-180.0, math.Min(180.0, v))
}

func clampLatitude(v float64) float64 {
	return math.Max(-90.0, math.Min(90.0, v))
}
