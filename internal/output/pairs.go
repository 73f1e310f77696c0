// internal/output/pairs.go
package output

import (
	"fmt"
	"io"

	"alnqc/internal/pipeline"
)

// writePairRows emits one row per scored pair of a single unit. A failed
// unit has no pairs; it surfaces as a comment line so the row stream stays
// machine-parseable.
func writePairRows(w io.Writer, r pipeline.Result) error {
	if r.Err != nil {
		_, err := fmt.Fprintf(w, "# %s: %s\n", r.File, statusCell(r.Err))
		return err
	}
	for _, p := range r.Report.Stats.Pairwise {
		if _, err := fmt.Fprintln(w, FormatPairRowTSV(r.File, p)); err != nil {
			return err
		}
	}
	return nil
}

// WritePairs prints the per-pair table for every unit of work.
func WritePairs(w io.Writer, list []pipeline.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, PairTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writePairRows(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamPairs is the channel-fed variant used when output order is free.
func StreamPairs(w io.Writer, in <-chan pipeline.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, PairTSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writePairRows(w, r); err != nil {
			return err
		}
	}
	return nil
}
