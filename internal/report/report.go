// Package report renders a reconstructed profile tree (module I) into
// the two textual views the profiler API surface promises:
// printTree (indented by call depth) and printList (flat, sorted by
// total cycles). Exact formatting is not normative; every line carries
// id, call count, total cycles, average cycles, milliseconds, and a
// two-decimal percentage, per spec 6.
package report

import (
	"cmp"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/slices"

	"github.com/yandex/haversine-workbench/internal/profiler/reconstruct"
)

// PrintTree walks the tree depth-first, indenting each line by its
// call depth, the way a flamegraph builder walks its block tree.
func PrintTree(w io.Writer, result *reconstruct.Result) error {
	root := result.Root
	if _, err := fmt.Fprintf(w, "Total time: %.4fms (CPU freq %s Hz)\n", root.Time(result.CPUFreq)*1000, humanize.Comma(int64(result.CPUFreq))); err != nil {
		return err
	}
	return printNode(w, root, result.CPUFreq, 0)
}

func printNode(w io.Writer, n *reconstruct.Node, cpuFreq uint64, depth int) error {
	for _, child := range n.Children {
		if err := printLine(w, child, cpuFreq, depth); err != nil {
			return err
		}
		if err := printNode(w, child, cpuFreq, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func printLine(w io.Writer, n *reconstruct.Node, cpuFreq uint64, depth int) error {
	guide := "  "
	if IsInteractive() {
		guide = "│ "
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += guide
	}
	_, err := fmt.Fprintf(w, "%s%s: count=%d cycles=%s avg=%s ms=%.4f pct=%.2f%%\n",
		indent,
		n.ID,
		n.CallCount,
		humanize.Comma(int64(n.TotalCycles)),
		humanize.Comma(int64(n.AverageCycles())),
		n.Time(cpuFreq)*1000,
		n.Percentage*100,
	)
	return err
}

// PrintList renders every distinct call-site node, sorted by total
// cycles descending, one line per node with no indentation.
func PrintList(w io.Writer, result *reconstruct.Result) error {
	nodes := make([]*reconstruct.Node, len(result.Flat))
	copy(nodes, result.Flat)
	slices.SortFunc(nodes, func(a, b *reconstruct.Node) int {
		return cmp.Compare(b.TotalCycles, a.TotalCycles)
	})
	for _, n := range nodes {
		if err := printLine(w, n, result.CPUFreq, 0); err != nil {
			return err
		}
	}
	return nil
}
