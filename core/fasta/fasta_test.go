package fasta

import (
	"strings"
	"testing"
)

func TestParseMultiRecord(t *testing.T) {
	in := `>seq1 first
ACGT
acgt
>seq2
NN NN

TT
`
	recs, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "seq1 first" || recs[0].Seq != "ACGTacgt" {
		t.Errorf("record 0 = %+v", recs[0])
	}
	// Interior whitespace survives; only surrounding whitespace is trimmed.
	if recs[1].ID != "seq2" || recs[1].Seq != "NN NNTT" {
		t.Errorf("record 1 = %+v", recs[1])
	}
}

func TestParseRecordCountMatchesHeaders(t *testing.T) {
	in := ">a\nAC\n>b\n\n>c\nGG\nTT\n"
	recs, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records (one per header), got %d", len(recs))
	}
	if recs[1].Seq != "" {
		t.Errorf("header with no sequence lines should yield empty Seq, got %q", recs[1].Seq)
	}
	if recs[2].Seq != "GGTT" {
		t.Errorf("record c seq = %q", recs[2].Seq)
	}
}

func TestParseDiscardsPreHeaderLines(t *testing.T) {
	recs, err := Parse(strings.NewReader("ACGT\nTTTT\n>a\nGG\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 1 || recs[0].Seq != "GG" {
		t.Fatalf("pre-header lines must be dropped silently, got %+v", recs)
	}
}

func TestParseNoHeadersYieldsEmpty(t *testing.T) {
	recs, err := Parse(strings.NewReader("ACGT\nTTTT\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("headerless input should yield no records, got %+v", recs)
	}
}

func TestParseEmptyInput(t *testing.T) {
	recs, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}
}
