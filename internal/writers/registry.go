// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"alnqc/internal/pipeline"
)

// ReportWriters maps an output format to its buffered writer. Streaming
// variants are dispatched separately by StartReportWriter; this registry is
// the single list of valid formats.
var ReportWriters = map[string]func(w io.Writer, list []pipeline.Result, header bool) error{}

// Register installs a buffered writer for format (last registration wins).
func Register(format string, fn func(io.Writer, []pipeline.Result, bool) error) {
	ReportWriters[format] = fn
}

// Write dispatches one buffered payload to the writer registered for format.
func Write(format string, w io.Writer, list []pipeline.Result, header bool) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}

// Known reports whether format has a registered writer.
func Known(format string) bool {
	_, ok := ReportWriters[format]
	return ok
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(ReportWriters))
	for f := range ReportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
