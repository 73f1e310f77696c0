// core/quality/quality.go
package quality

// Tier is the qualitative grade assigned to an alignment from its average
// pairwise identity.
type Tier int

const (
	Poor Tier = iota
	Fair
	Good
	Excellent
)

func (t Tier) String() string {
	switch t {
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Fair:
		return "fair"
	default:
		return "poor"
	}
}

// Color returns the presentation color paired with the tier.
func (t Tier) Color() string {
	switch t {
	case Excellent:
		return "green"
	case Good:
		return "yellow"
	case Fair:
		return "orange"
	default:
		return "red"
	}
}

// Classify maps an average-identity percentage to a tier. Each threshold is
// inclusive of its lower bound: >=80 excellent, >=60 good, >=40 fair,
// otherwise poor. Total over all real inputs; no failure mode.
func Classify(avgIdentity float64) Tier {
	switch {
	case avgIdentity >= 80:
		return Excellent
	case avgIdentity >= 60:
		return Good
	case avgIdentity >= 40:
		return Fair
	default:
		return Poor
	}
}
