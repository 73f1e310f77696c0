// internal/writers/report.go
package writers

import (
	"io"

	"alnqc/internal/common"
	"alnqc/internal/output"
	"alnqc/internal/pipeline"
)

func init() {
	Register("text", func(w io.Writer, list []pipeline.Result, header bool) error {
		return output.WriteText(w, list, header)
	})
	Register("pairs", func(w io.Writer, list []pipeline.Result, header bool) error {
		return output.WritePairs(w, list, header)
	})
	Register("json", func(w io.Writer, list []pipeline.Result, _ bool) error {
		return output.WriteJSON(w, list)
	})
}

// StartReportWriter spins up a writer goroutine consuming batch results.
// text and pairs stream row-by-row unless sorted output is requested; json
// always buffers (single array). The returned error channel yields exactly
// one value after the input channel is closed and drained.
func StartReportWriter(out io.Writer, format string, sortOut, header bool, bufSize int) (chan<- pipeline.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pipeline.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch {
		case format == "text" && !sortOut:
			err = output.StreamText(out, in, header)
		case format == "pairs" && !sortOut:
			err = output.StreamPairs(out, in, header)
		default:
			var buf []pipeline.Result
			for r := range in {
				buf = append(buf, r)
			}
			if sortOut {
				common.SortResults(buf)
			}
			err = Write(format, out, buf, header)
		}
		// Drain so producers never block after a write failure.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
