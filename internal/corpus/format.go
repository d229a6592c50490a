package corpus

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// WriteJSON writes the §6 corpus document: a top-level object with
// "pairs" (each a {x0,y0,x1,y1} object), "avg", and "count". Numbers are
// printed with 16 fractional digits, matching the generator's reference
// implementation so the parser's decimal-only decoder round-trips them
// at full f64 precision.
func WriteJSON(w io.Writer, pairs []Pair, avg float64) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprint(bw, `{"pairs":[`); err != nil {
		return err
	}
	for i, p := range pairs {
		if i > 0 {
			if err := bw.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, `{"x0":%.16f,"y0":%.16f,"x1":%.16f,"y1":%.16f}`, p.X0, p.Y0, p.X1, p.Y1); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, `],"avg":%.16f,"count":%d}`, avg, len(pairs)); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteAnswer writes the little-endian binary companion file: u64
// count, then {x0,y0,x1,y1,distance} f64 quintuples, then a trailing
// f64 avg.
func WriteAnswer(w io.Writer, pairs []Pair, distances []float64, avg float64) error {
	if len(pairs) != len(distances) {
		return fmt.Errorf("corpus: %d pairs but %d distances", len(pairs), len(distances))
	}
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, uint64(len(pairs))); err != nil {
		return err
	}
	for i, p := range pairs {
		values := [5]float64{p.X0, p.Y0, p.X1, p.Y1, distances[i]}
		if err := binary.Write(bw, binary.LittleEndian, values); err != nil {
			return err
		}
	}
	if err := binary.Write(bw, binary.LittleEndian, avg); err != nil {
		return err
	}
	return bw.Flush()
}

// Answer is a decoded companion answer file.
type Answer struct {
	Distances []float64
	Avg       float64
}

// ReadAnswer decodes the binary companion format. The core treats this
// format as opaque outside the corpus package; the loader only needs the
// distances and the trailing average to compare against its own
// recomputation.
func ReadAnswer(r io.Reader) (*Answer, error) {
	br := bufio.NewReader(r)

	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("reading answer count: %w", err)
	}

	// count comes from the input, so it only caps the initial allocation;
	// distances grow as pairs are actually read.
	distances := make([]float64, 0, min(count, 4096))
	for i := uint64(0); i < count; i++ {
		var values [5]float64
		if err := binary.Read(br, binary.LittleEndian, &values); err != nil {
			return nil, fmt.Errorf("reading answer pair %d: %w", i, err)
		}
		distances = append(distances, values[4])
	}

	var avg float64
	if err := binary.Read(br, binary.LittleEndian, &avg); err != nil {
		return nil, fmt.Errorf("reading answer trailing avg: %w", err)
	}
	if math.IsNaN(avg) {
		return nil, fmt.Errorf("answer file avg is NaN")
	}

	return &Answer{Distances: distances, Avg: avg}, nil
}

// legacyAnswer is the all-JSON answer format an older build of the
// generator once wrote instead of the binary companion file. DecodeAnswer
// still accepts it so answer files produced before the binary format
// was introduced keep working.
type legacyAnswer struct {
	Distances []float64 `json:"distances"`
	Avg       float64   `json:"avg"`
}

// DecodeAnswer decodes data as the binary answer format, falling back to
// the legacy all-JSON format if the binary decode fails. Both failing is
// reported as a joined error carrying both underlying causes.
func DecodeAnswer(data []byte) (*Answer, error) {
	answer, binErr := ReadAnswer(bytes.NewReader(data))
	if binErr == nil {
		return answer, nil
	}

	var legacy legacyAnswer
	if jsonErr := json.Unmarshal(data, &legacy); jsonErr != nil {
		return nil, errors.Join(
			fmt.Errorf("binary answer decode: %w", binErr),
			fmt.Errorf("legacy JSON answer decode: %w", jsonErr),
		)
	}
	if math.IsNaN(legacy.Avg) {
		return nil, fmt.Errorf("legacy answer file avg is NaN")
	}
	return &Answer{Distances: legacy.Distances, Avg: legacy.Avg}, nil
}
