package bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// csvHeader is the column layout written by WriteCSV.
var csvHeader = []string{"scenario", "vertices", "density", "arcs", "solver", "mean_ms", "rounds", "mismatches", "error"}

// WriteTable prints measurements as a tab-aligned table.
func WriteTable(w io.Writer, ms []Measurement) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "scenario\tvertices\tdensity\tarcs\tsolver\tmean ms\tok\t")
	for _, m := range ms {
		ok := "yes"
		if !m.OK() {
			ok = "NO"
		}
		fmt.Fprintf(tw, "%s\t%d\t%g\t%.0f\t%s\t%.3f\t%s\t\n",
			m.Scenario, m.Vertices, m.Density, m.Arcs, m.Solver, millis(m.Mean), ok)
	}

	return tw.Flush()
}

// WriteCSV writes measurements with a header row.
func WriteCSV(w io.Writer, ms []Measurement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, m := range ms {
		errText := ""
		if m.Err != nil {
			errText = m.Err.Error()
		}
		rec := []string{
			m.Scenario,
			strconv.Itoa(m.Vertices),
			strconv.FormatFloat(m.Density, 'g', -1, 64),
			strconv.FormatFloat(m.Arcs, 'f', 1, 64),
			m.Solver,
			strconv.FormatFloat(millis(m.Mean), 'f', 4, 64),
			strconv.Itoa(m.Rounds),
			strconv.Itoa(m.Mismatches),
			errText,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveCSV writes measurements to path. A ".zst" extension compresses with
// zstd and ".lz4" with lz4; anything else is plain CSV.
func SaveCSV(path string, ms []Measurement) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	var w io.WriteCloser
	switch filepath.Ext(path) {
	case ".zst":
		enc, err := zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("zstd writer: %w", err)
		}
		w = enc
	case ".lz4":
		w = lz4.NewWriter(f)
	default:
		return WriteCSV(f, ms)
	}
	if err := WriteCSV(w, ms); err != nil {
		w.Close()
		return err
	}

	return w.Close()
}

// LoadCSV reads back the records written by SaveCSV, header included.
func LoadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch filepath.Ext(path) {
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	case ".lz4":
		r = lz4.NewReader(f)
	}

	return csv.NewReader(r).ReadAll()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
