// core/msa/msa.go
package msa

import (
	"errors"
	"fmt"

	"alnqc-core/align"
	"alnqc-core/fasta"
)

// ErrMinimumSequences reports an aggregate request with fewer than two records.
var ErrMinimumSequences = errors.New("multiple alignment needs at least two sequences")

// PairScore couples one pairwise result with the IDs of the records compared.
type PairScore struct {
	QueryID   string
	SubjectID string
	align.PairwiseScore
}

// Stats is the immutable aggregate over one multiple alignment.
// Pairwise holds every unordered record pair (i<j), ascending i then j,
// matching input order. Percentages are rounded to two decimal places.
type Stats struct {
	NumSequences       int
	AlignmentLength    int
	ConservedPositions int
	ConservedColumns   []int // 0-based column indices, ascending
	Conservation       float64
	AverageScore       float64
	AverageIdentity    float64
	Consensus          string
	Pairwise           []PairScore
	TotalPairs         int
}

// Aggregate computes column conservation, the consensus sequence, and every
// pairwise score for an already-aligned record set.
//
// Fewer than two records fail with ErrMinimumSequences; non-uniform lengths
// fail with align.ErrLengthMismatch (checked once up front); a zero-column
// alignment fails with align.ErrUndefinedMetric.
func Aggregate(records []fasta.Record, p align.Params) (Stats, error) {
	if len(records) < 2 {
		return Stats{}, fmt.Errorf("%w: got %d", ErrMinimumSequences, len(records))
	}
	length := len(records[0].Seq)
	for _, r := range records[1:] {
		if len(r.Seq) != length {
			return Stats{}, fmt.Errorf("%w: %q has %d columns, %q has %d",
				align.ErrLengthMismatch, records[0].ID, length, r.ID, len(r.Seq))
		}
	}
	if length == 0 {
		return Stats{}, fmt.Errorf("%w: alignment has no columns", align.ErrUndefinedMetric)
	}

	n := len(records)
	st := Stats{
		NumSequences:    n,
		AlignmentLength: length,
		TotalPairs:      n * (n - 1) / 2,
	}

	st.ConservedColumns, st.Consensus = scanColumns(records, length)
	st.ConservedPositions = len(st.ConservedColumns)
	st.Conservation = align.Round2(float64(st.ConservedPositions) / float64(length) * 100)

	st.Pairwise = make([]PairScore, 0, st.TotalPairs)
	var sumScore, sumIdentity float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ps, err := align.ScorePair(records[i].Seq, records[j].Seq, p)
			if err != nil {
				return Stats{}, err
			}
			st.Pairwise = append(st.Pairwise, PairScore{
				QueryID:       records[i].ID,
				SubjectID:     records[j].ID,
				PairwiseScore: ps,
			})
			sumScore += ps.Score
			sumIdentity += ps.Identity
		}
	}
	st.AverageScore = align.Round2(sumScore / float64(st.TotalPairs))
	st.AverageIdentity = align.Round2(sumIdentity / float64(st.TotalPairs))
	return st, nil
}

// scanColumns walks the alignment column by column, collecting conserved
// column indices and the majority-vote consensus.
//
// A column is conserved iff exactly one distinct non-gap character remains
// after case folding; gap characters are filtered before the uniqueness
// check, so a column of gaps plus one uniform residue still counts. An
// all-gap column is not conserved (filtered set is empty) and contributes
// GapChar to the consensus. Consensus ties break toward the smaller byte.
func scanColumns(records []fasta.Record, length int) (conserved []int, consensus string) {
	cons := make([]byte, length)
	for p := 0; p < length; p++ {
		var counts [256]int
		distinct := 0
		for _, r := range records {
			c := upper(r.Seq[p])
			if c == align.GapChar {
				continue
			}
			if counts[c] == 0 {
				distinct++
			}
			counts[c]++
		}
		if distinct == 1 {
			conserved = append(conserved, p)
		}
		best := byte(align.GapChar)
		bestN := 0
		for c := 0; c < 256; c++ {
			if counts[c] > bestN {
				best = byte(c)
				bestN = counts[c]
			}
		}
		cons[p] = best
	}
	return conserved, string(cons)
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
