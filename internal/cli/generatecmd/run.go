package generatecmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/yandex/haversine-workbench/internal/corpus"
	"github.com/yandex/haversine-workbench/internal/xlog"
)

var (
	flagCount    int
	flagSeed     int64
	flagMethod   string
	flagClusters int
	flagWorkers  int
	flagOutput   string
	flagAnswer   string
	flagVerbose  bool
)

func init() {
	rootCmd.RunE = runGenerate

	rootCmd.Flags().IntVar(&flagCount, "count", 10000, "number of coordinate pairs to generate")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 1, "random seed")
	rootCmd.Flags().StringVar(&flagMethod, "method", "uniform", "generation method: uniform or cluster")
	rootCmd.Flags().IntVar(&flagClusters, "clusters", 8, "number of cluster centers, for --method cluster")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "parallel generation shards (0 = GOMAXPROCS)")
	rootCmd.Flags().StringVar(&flagOutput, "output", "pairs.json", "path to write the JSON corpus")
	rootCmd.Flags().StringVar(&flagAnswer, "answer", "pairs.answer", "path to write the binary answer file")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable verbose development logging")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger, err := xlog.NewRoot(flagVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Zap().Sync() //nolint:errcheck

	method := corpus.Method(flagMethod)
	if method != corpus.Uniform && method != corpus.Cluster {
		return fmt.Errorf("unknown --method %q: want uniform or cluster", flagMethod)
	}

	pairs, err := corpus.Generate(corpus.GenerateConfig{
		Count:    flagCount,
		Seed:     flagSeed,
		Method:   method,
		Clusters: flagClusters,
		Workers:  flagWorkers,
	})
	if err != nil {
		return xerrors.Errorf("failed to generate corpus: %w", err)
	}

	distances := make([]float64, len(pairs))
	sum := 0.0
	for i, p := range pairs {
		distances[i] = corpus.Haversine(p, corpus.EarthRadiusKM)
		sum += distances[i]
	}
	avg := 0.0
	if len(pairs) > 0 {
		avg = sum / float64(len(pairs))
	}

	jsonFile, err := os.Create(flagOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", flagOutput, err)
	}
	defer jsonFile.Close()
	if err := corpus.WriteJSON(jsonFile, pairs, avg); err != nil {
		return fmt.Errorf("failed to write %s: %w", flagOutput, err)
	}

	answerFile, err := os.Create(flagAnswer)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", flagAnswer, err)
	}
	defer answerFile.Close()
	if err := corpus.WriteAnswer(answerFile, pairs, distances, avg); err != nil {
		return fmt.Errorf("failed to write %s: %w", flagAnswer, err)
	}

	logger.Info("generated corpus",
		zap.Int("count", len(pairs)),
		zap.String("method", string(method)),
		zap.Float64("avg", avg),
		zap.String("output", flagOutput),
		zap.String("answer", flagAnswer),
	)

	return nil
}
