// core/align/params.go
package align

// Params holds the affine gap scoring model for one scoring job. Values are
// copied into every call; a job never observes another job's mutations.
type Params struct {
	Match     float64
	Mismatch  float64
	GapOpen   float64
	GapExtend float64
}

// DefaultParams returns scoring parameters tuned for DNA alignments.
func DefaultParams() Params {
	return Params{Match: 2, Mismatch: -1, GapOpen: -2, GapExtend: -0.5}
}

// Overrides carries optional replacement values for Params fields.
// A nil field leaves the current value unchanged.
type Overrides struct {
	Match     *float64
	Mismatch  *float64
	GapOpen   *float64
	GapExtend *float64
}

// Merge returns a copy of p with the non-nil overrides applied.
func (p Params) Merge(o Overrides) Params {
	if o.Match != nil {
		p.Match = *o.Match
	}
	if o.Mismatch != nil {
		p.Mismatch = *o.Mismatch
	}
	if o.GapOpen != nil {
		p.GapOpen = *o.GapOpen
	}
	if o.GapExtend != nil {
		p.GapExtend = *o.GapExtend
	}
	return p
}
