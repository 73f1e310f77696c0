// core/align/errors.go
package align

import "errors"

var (
	// ErrLengthMismatch reports aligned sequences whose column counts differ.
	ErrLengthMismatch = errors.New("aligned sequences differ in length")

	// ErrUndefinedMetric reports a degenerate alignment (zero columns, or
	// all columns gapped) whose identity/similarity denominators are zero.
	ErrUndefinedMetric = errors.New("alignment metric undefined")
)
