// core/seqstat/seqstat.go
package seqstat

import (
	"alnqc-core/align"
	"alnqc-core/fasta"
)

// Summary describes one aligned sequence with its gaps removed.
type Summary struct {
	ID     string
	Length int     // ungapped length
	GC     float64 // percent of ungapped length, 2 decimals; 0 for empty
}

// Summarize builds one Summary per record, in input order.
func Summarize(records []fasta.Record) []Summary {
	out := make([]Summary, len(records))
	for i, r := range records {
		out[i] = summarize(r)
	}
	return out
}

func summarize(r fasta.Record) Summary {
	bases, gc := 0, 0
	for i := 0; i < len(r.Seq); i++ {
		c := r.Seq[i]
		if c == align.GapChar {
			continue
		}
		bases++
		switch c {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	s := Summary{ID: r.ID, Length: bases}
	if bases > 0 {
		s.GC = align.Round2(float64(gc) / float64(bases) * 100)
	}
	return s
}
