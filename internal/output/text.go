// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"alnqc/internal/pipeline"
)

// WriteText prints one report row per unit of work.
func WriteText(w io.Writer, list []pipeline.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ReportTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatReportRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is the channel-fed variant used when output order is free.
func StreamText(w io.Writer, in <-chan pipeline.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ReportTSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatReportRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
