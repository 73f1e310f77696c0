// core/fasta/fasta.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is one parsed FASTA sequence. ID is the trimmed remainder of the
// header line after '>'; Seq is the concatenation of the record's sequence
// lines with surrounding whitespace removed.
type Record struct {
	ID  string
	Seq string
}

// Parse reads every FASTA record from r, in input order.
//
// Lines are trimmed before inspection. A '>' line finalizes any in-progress
// record and starts a new one. Blank lines are skipped. Sequence-looking
// lines before the first header have no record to land in and are discarded;
// that is defined behavior, not a parse failure. Input with no headers at
// all yields an empty (nil) slice.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		out  []Record
		cur  Record
		open bool
		seq  strings.Builder
	)

	flush := func() {
		if !open {
			return
		}
		cur.Seq = seq.String()
		out = append(out, cur)
		seq.Reset()
		open = false
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			cur = Record{ID: strings.TrimSpace(line[1:])}
			open = true
			continue
		}
		if !open {
			continue // sequence data before any header
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return out, nil
}
