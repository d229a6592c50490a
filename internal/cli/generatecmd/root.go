// Package generatecmd is the cobra command tree for haversine-generate.
package generatecmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yandex/haversine-workbench/internal/buildinfo"
)

var rootCmd = &cobra.Command{
	Use:           "haversine-generate",
	Short:         "Generate a coordinate-pair corpus and its answer file",
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
