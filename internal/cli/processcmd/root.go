// Package processcmd is the cobra command tree for haversine-process,
// the loader binary that parses a corpus, recomputes distances, and
// reports where its own cycles went.
package processcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yandex/haversine-workbench/internal/buildinfo"
)

var rootCmd = &cobra.Command{
	Use:           "haversine-process",
	Short:         "Parse a coordinate corpus, recompute distances, and report cycle usage",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build info",
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildinfo.Dump(os.Stdout)
		},
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
