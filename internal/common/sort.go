// internal/common/sort.go
package common

import (
	"sort"

	"alnqc/internal/pipeline"
)

// LessResult defines a stable order for batch results (for -sort): input
// order first, then file path for safety.
func LessResult(a, b pipeline.Result) bool {
	if a.Index != b.Index {
		return a.Index < b.Index
	}
	return a.File < b.File
}

func SortResults(rs []pipeline.Result) {
	sort.Slice(rs, func(i, j int) bool { return LessResult(rs[i], rs[j]) })
}
