package reconstruct

import (
	"fmt"
	"strings"

	"github.com/yandex/haversine-workbench/internal/profiler/ring"
)

// Location is the call-site view reconstruction needs out of a record:
// identity plus the fields rendered into the report. profiler.CallSite
// satisfies this.
type Location interface {
	ring.Location
	GetFilePath() string
	GetLineNumber() int
	GetFunctionName() string
	GetSectionName() (name string, ok bool)
}

type frame struct {
	node        *Node
	startCycles uint64
}

// Result is the reconstructed tree plus the flat list of every distinct
// call-site node encountered, in first-appearance order.
type Result struct {
	Root    *Node
	Flat    []*Node
	CPUFreq uint64
}

// Build replays records (already in slot order) into a call tree. It
// panics on an unbalanced begin/end sequence — reconstruction treats
// that as a programming bug, not a recoverable error, per the profiler's
// error taxonomy. Ring overflow is caught earlier, by Ring.Push.
func Build(records []ring.Record, cpuFreq uint64, pathTrim string) *Result {
	root := newNode(nil, "ROOT", 0, "", 0, "", "", false)

	var stack []frame
	var flat []*Node

	for _, rec := range records {
		loc, ok := rec.Location.(Location)
		if !ok {
			panic(fmt.Sprintf("profile record carries a location that does not implement reconstruct.Location: %T", rec.Location))
		}
		filePath := trimPrefix(loc.GetFilePath(), pathTrim)

		switch rec.Type {
		case ring.ProfilerStart:
			stack = append(stack, frame{node: root, startCycles: rec.Cycles})

		case ring.ProfilerEnd:
			if len(stack) != 1 || stack[0].node != root {
				panic(fmt.Sprintf("unbalanced profiler start/end: stack depth %d at ProfilerEnd", len(stack)))
			}
			root.addCall(rec.Cycles - stack[0].startCycles)
			stack = stack[:0]
			setPercentages(root)
			return &Result{Root: root, Flat: flat, CPUFreq: cpuFreq}

		case ring.SectionBegin:
			if len(stack) == 0 {
				panic("section begin with no enclosing profiler/section frame")
			}
			top := stack[len(stack)-1].node
			if top.ID == loc.ID() {
				// Same call site already open (recursion, or another thread
				// running the same section): accumulate into the open node.
				stack = append(stack, frame{node: top, startCycles: rec.Cycles})
				break
			}
			section, hasSection := loc.GetSectionName()
			child, created := top.childOrCreate(loc.ID(), rec.ThreadID, filePath, loc.GetLineNumber(), loc.GetFunctionName(), section, hasSection)
			if created {
				flat = append(flat, child)
			}
			stack = append(stack, frame{node: child, startCycles: rec.Cycles})

		case ring.SectionEnd:
			if len(stack) == 0 {
				panic("section end with no matching begin on the stack")
			}
			top := stack[len(stack)-1]
			if top.node.ID != loc.ID() {
				panic(fmt.Sprintf("unbalanced section end: expected %q, got %q", top.node.ID, loc.ID()))
			}
			top.node.addCall(rec.Cycles - top.startCycles)
			stack = stack[:len(stack)-1]
		}
	}

	// No ProfilerEnd record: the profiler was never stopped. Report what
	// was collected so far rather than discarding it.
	setPercentages(root)
	return &Result{Root: root, Flat: flat, CPUFreq: cpuFreq}
}

func setPercentages(root *Node) {
	var walk func(n *Node)
	walk = func(n *Node) {
		if root.TotalCycles > 0 {
			n.Percentage = float64(n.TotalCycles) / float64(root.TotalCycles)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	root.Percentage = 1.0
	for _, child := range root.Children {
		walk(child)
	}
}

func trimPrefix(filePath, prefix string) string {
	if prefix == "" {
		return filePath
	}
	return strings.TrimPrefix(filePath, prefix)
}
