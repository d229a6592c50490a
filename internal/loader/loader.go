// Package loader parses the coordinate corpus under profiler sections,
// recomputes each pair's Haversine distance, and checks the total
// against the companion answer file.
package loader

import (
	"fmt"
	"math"

	"github.com/yandex/haversine-workbench/internal/corpus"
	"github.com/yandex/haversine-workbench/internal/jsonio/ast"
	"github.com/yandex/haversine-workbench/internal/jsonio/parser"
	"github.com/yandex/haversine-workbench/internal/jsonio/view"
	"github.com/yandex/haversine-workbench/internal/profiler"
)

// relativeTolerance bounds how far the recomputed average may drift from
// the answer file's trailing average before it is reported as a
// mismatch rather than floating-point noise.
const relativeTolerance = 1e-9

// Result is what the loader reports after parsing and recomputing.
type Result struct {
	Pairs       []corpus.Pair
	ComputedAvg float64
	JSONAvg     float64
	HasJSONAvg  bool
	AnswerAvg   float64
	HasAnswer   bool
	Mismatch    bool
}

// Load parses jsonBytes (under profiler sections "parse json" and "sum
// haversine distances"), recomputes distances, and compares the result
// against answer, if provided. prof may be nil, in which case sections
// are skipped; Section/Begin/End tolerate a nil-free no-op profiler
// through the usual active-flag check.
func Load(jsonBytes []byte, prof *profiler.Profiler, answer *corpus.Answer) (*Result, error) {
	if prof == nil {
		prof = profiler.New(1)
	}

	parseSection := prof.Section("parse json")
	parseResult := parser.Parse(view.New(jsonBytes))
	parseSection.End()
	if !parseResult.IsOk() {
		return nil, fmt.Errorf("failed to parse corpus: %w", parseResult.Err())
	}
	root, _ := parseResult.Unwrap()

	pairsElem := root.FindByLabel("pairs")
	if pairsElem == nil {
		return nil, fmt.Errorf("corpus document has no top-level 'pairs' array")
	}

	sumSection := prof.Section("sum haversine distances")
	defer sumSection.End()

	pairs := make([]corpus.Pair, 0, pairsElem.ChildCount())
	sum := 0.0
	for i, child := range pairsElem.Children {
		pair, err := decodePair(child)
		if err != nil {
			return nil, fmt.Errorf("corpus pair %d: %w", i, err)
		}
		pairs = append(pairs, pair)
		sum += corpus.Haversine(pair, corpus.EarthRadiusKM)
	}

	result := &Result{Pairs: pairs}
	if len(pairs) > 0 {
		result.ComputedAvg = sum / float64(len(pairs))
	}

	if countElem := root.FindByLabel("count"); countElem != nil && countElem.Kind == ast.Number {
		if int(countElem.NumberValue) != len(pairs) {
			return nil, fmt.Errorf("corpus 'count' is %d but 'pairs' has %d entries", int(countElem.NumberValue), len(pairs))
		}
	}

	if avgElem := root.FindByLabel("avg"); avgElem != nil && avgElem.Kind == ast.Number {
		result.JSONAvg = avgElem.NumberValue
		result.HasJSONAvg = true
	}

	if answer != nil {
		result.AnswerAvg = answer.Avg
		result.HasAnswer = true
		result.Mismatch = !withinTolerance(result.ComputedAvg, answer.Avg, relativeTolerance)
	}

	return result, nil
}

func decodePair(elem *ast.Element) (corpus.Pair, error) {
	x0, err := numberField(elem, "x0")
	if err != nil {
		return corpus.Pair{}, err
	}
	y0, err := numberField(elem, "y0")
	if err != nil {
		return corpus.Pair{}, err
	}
	x1, err := numberField(elem, "x1")
	if err != nil {
		return corpus.Pair{}, err
	}
	y1, err := numberField(elem, "y1")
	if err != nil {
		return corpus.Pair{}, err
	}
	return corpus.Pair{X0: x0, Y0: y0, X1: x1, Y1: y1}, nil
}

func numberField(elem *ast.Element, label string) (float64, error) {
	field := elem.FindByLabel(label)
	if field == nil {
		return 0, fmt.Errorf("missing field %q", label)
	}
	if field.Kind != ast.Number {
		return 0, fmt.Errorf("field %q is %s, not a number", label, field.Kind)
	}
	return field.NumberValue, nil
}

func withinTolerance(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	denom := math.Max(math.Abs(a), math.Abs(b))
	if denom == 0 {
		return true
	}
	return math.Abs(a-b)/denom <= relTol
}
