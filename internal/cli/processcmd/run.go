package processcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/yandex/haversine-workbench/internal/corpus"
	"github.com/yandex/haversine-workbench/internal/loader"
	"github.com/yandex/haversine-workbench/internal/profiler"
	"github.com/yandex/haversine-workbench/internal/report"
	"github.com/yandex/haversine-workbench/internal/xlog"
)

var (
	flagInput    string
	flagAnswer   string
	flagPathTrim string
	flagListView bool
	flagVerbose  bool
)

func init() {
	rootCmd.RunE = runProcess

	rootCmd.Flags().StringVar(&flagInput, "input", "pairs.json", "path to the JSON corpus")
	rootCmd.Flags().StringVar(&flagAnswer, "answer", "", "path to the binary answer file (optional)")
	rootCmd.Flags().StringVar(&flagPathTrim, "path-trim", "", "prefix to strip from reported source file paths")
	rootCmd.Flags().BoolVar(&flagListView, "list", false, "print the flat, cycle-sorted view instead of the call tree")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable verbose development logging")
}

func runProcess(cmd *cobra.Command, args []string) error {
	logger, err := xlog.NewRoot(flagVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Zap().Sync() //nolint:errcheck

	prof := profiler.Default
	prof.Start()

	readSection := prof.Section("read input json")
	jsonBytes, err := os.ReadFile(flagInput)
	readSection.End()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", flagInput, err)
	}

	var answer *corpus.Answer
	if flagAnswer != "" {
		answerSection := prof.Section("read answer file")
		var answerBytes []byte
		answerBytes, err = os.ReadFile(flagAnswer)
		if err == nil {
			answer, err = corpus.DecodeAnswer(answerBytes)
		}
		answerSection.End()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", flagAnswer, err)
		}
	}

	loadResult, err := loader.Load(jsonBytes, prof, answer)
	if err != nil {
		prof.StopAndCollect(flagPathTrim)
		return xerrors.Errorf("failed to process corpus: %w", err)
	}

	profileResult := prof.StopAndCollect(flagPathTrim)

	logger.Info("processed corpus",
		zap.Int("pairs", len(loadResult.Pairs)),
		zap.Float64("computed_avg", loadResult.ComputedAvg),
		zap.Bool("mismatch", loadResult.Mismatch),
	)

	fmt.Printf("pairs: %d\n", len(loadResult.Pairs))
	fmt.Printf("computed avg: %.16f\n", loadResult.ComputedAvg)
	if loadResult.HasJSONAvg {
		fmt.Printf("corpus avg:   %.16f\n", loadResult.JSONAvg)
	}
	if loadResult.HasAnswer {
		fmt.Printf("answer avg:   %.16f\n", loadResult.AnswerAvg)
		if loadResult.Mismatch {
			fmt.Println("MISMATCH: computed average differs from the answer file beyond tolerance")
		}
	}
	fmt.Println()

	if profileResult != nil {
		if flagListView {
			return report.PrintList(os.Stdout, profileResult)
		}
		return report.PrintTree(os.Stdout, profileResult)
	}
	return nil
}
