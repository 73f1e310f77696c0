// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"alnqc-core/msa"
	"alnqc/internal/pipeline"
)

// Score renders a raw score without trailing zeros (8, not 8.00; 1.5 stays 1.5).
func Score(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Pct renders a percentage metric with its two fixed decimals.
func Pct(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// statusCell flattens an error into a single TSV-safe cell.
func statusCell(err error) string {
	if err == nil {
		return "ok"
	}
	s := strings.ReplaceAll(err.Error(), "\t", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// FormatReportRowTSV returns the 11 report columns (no trailing newline).
// Failed units carry zeros, "-" for quality, and the error in status.
func FormatReportRowTSV(r pipeline.Result) string {
	if r.Err != nil {
		return fmt.Sprintf("%s\t0\t0\t0\t0.00\t0\t0.00\t0\t-\t-\t%s", r.File, statusCell(r.Err))
	}
	st := r.Report.Stats
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%s\t%s\t%s\t%d\t%s\t%s\tok",
		r.File, st.NumSequences, st.AlignmentLength, st.ConservedPositions,
		Pct(st.Conservation), Score(st.AverageScore), Pct(st.AverageIdentity),
		st.TotalPairs, r.Report.Quality.String(), r.Report.Quality.Color(),
	)
}

// FormatPairRowTSV returns the 11 pair columns (no trailing newline).
func FormatPairRowTSV(file string, p msa.PairScore) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\t%d",
		file, p.QueryID, p.SubjectID,
		Score(p.Score), p.Matches, p.Mismatches, p.Gaps, p.GapRuns,
		Pct(p.Identity), Pct(p.Similarity), p.Length,
	)
}
