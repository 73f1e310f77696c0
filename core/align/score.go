// core/align/score.go
package align

import (
	"fmt"
	"math"
	"strings"
)

// GapChar marks a gap column in an aligned sequence.
const GapChar = '-'

// PairwiseScore is the immutable result of scoring one aligned pair.
// Identity counts gap columns against the denominator; Similarity is
// computed over non-gap columns only. Both are percentages rounded to
// two decimal places.
type PairwiseScore struct {
	Score      float64
	Matches    int
	Mismatches int
	Gaps       int
	GapRuns    int
	Identity   float64
	Similarity float64
	Length     int
}

// columnState is the per-column state of the affine-gap scan. A column is a
// gap column if either sequence holds GapChar there, so gap-run state is
// shared across the two compared sequences.
type columnState int

const (
	stateMatch columnState = iota
	stateMismatch
	stateGapOpen
	stateGapExtend
)

func (s columnState) inGap() bool { return s == stateGapOpen || s == stateGapExtend }

// ScorePair scores two equal-length aligned sequences under p. Characters
// compare case-insensitively. Entering a gap run charges GapOpen; staying in
// one charges GapExtend.
//
// Unequal lengths fail with ErrLengthMismatch. A zero-column or all-gap
// alignment fails with ErrUndefinedMetric rather than producing NaN.
func ScorePair(a, b string, p Params) (PairwiseScore, error) {
	if len(a) != len(b) {
		return PairwiseScore{}, fmt.Errorf("%w: %d vs %d columns", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return PairwiseScore{}, fmt.Errorf("%w: alignment has no columns", ErrUndefinedMetric)
	}

	ua := strings.ToUpper(a)
	ub := strings.ToUpper(b)

	ps := PairwiseScore{Length: len(ua)}
	state := stateMatch
	for i := 0; i < len(ua); i++ {
		ca, cb := ua[i], ub[i]
		switch {
		case ca == GapChar || cb == GapChar:
			ps.Gaps++
			if state.inGap() {
				state = stateGapExtend
				ps.Score += p.GapExtend
			} else {
				state = stateGapOpen
				ps.GapRuns++
				ps.Score += p.GapOpen
			}
		case ca == cb:
			ps.Matches++
			ps.Score += p.Match
			state = stateMatch
		default:
			ps.Mismatches++
			ps.Score += p.Mismatch
			state = stateMismatch
		}
	}

	if ps.Gaps == ps.Length {
		return PairwiseScore{}, fmt.Errorf("%w: all %d columns are gaps", ErrUndefinedMetric, ps.Length)
	}
	ps.Identity = Round2(float64(ps.Matches) / float64(ps.Matches+ps.Mismatches+ps.Gaps) * 100)
	ps.Similarity = Round2(float64(ps.Matches) / float64(ps.Length-ps.Gaps) * 100)
	return ps, nil
}

// Round2 rounds to two decimal places. All percentage metrics use it.
func Round2(x float64) float64 { return math.Round(x*100) / 100 }
