package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"alnqc-core/align"
	"alnqc-core/fasta"
	"alnqc-core/report"
	"alnqc/internal/pipeline"
	"alnqc/pkg/api"
)

func scored(t *testing.T, file string, seqs ...fasta.Record) pipeline.Result {
	t.Helper()
	rep, err := report.Build(seqs, align.DefaultParams())
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}
	return pipeline.Result{File: file, Report: rep}
}

func TestWriteTextRow(t *testing.T) {
	r := scored(t, "x.fa",
		fasta.Record{ID: "a", Seq: "ACGT"},
		fasta.Record{ID: "b", Seq: "AC-T"},
	)
	var buf bytes.Buffer
	if err := WriteText(&buf, []pipeline.Result{r}, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != ReportTSVHeader {
		t.Errorf("header = %q", lines[0])
	}
	want := "x.fa\t2\t4\t4\t100.00\t4\t75.00\t1\tgood\tyellow\tok"
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestWriteTextFailedUnit(t *testing.T) {
	var buf bytes.Buffer
	r := pipeline.Result{File: "bad.fa", Err: errors.New("no such\tfile")}
	if err := WriteText(&buf, []pipeline.Result{r}, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	row := strings.TrimRight(buf.String(), "\n")
	if !strings.HasPrefix(row, "bad.fa\t0\t") || !strings.HasSuffix(row, "no such file") {
		t.Errorf("failure row = %q", row)
	}
	if strings.Count(row, "\t") != 10 {
		t.Errorf("failure row must keep the 11-column shape: %q", row)
	}
}

func TestWritePairsRows(t *testing.T) {
	r := scored(t, "x.fa",
		fasta.Record{ID: "a", Seq: "ACGT"},
		fasta.Record{ID: "b", Seq: "AC-T"},
	)
	var buf bytes.Buffer
	if err := WritePairs(&buf, []pipeline.Result{r}, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != PairTSVHeader {
		t.Errorf("header = %q", lines[0])
	}
	want := "x.fa\ta\tb\t4\t3\t0\t1\t1\t75.00\t100.00\t4"
	if lines[1] != want {
		t.Errorf("pair row = %q, want %q", lines[1], want)
	}
}

func TestWritePairsFailedUnitBecomesComment(t *testing.T) {
	var buf bytes.Buffer
	r := pipeline.Result{File: "bad.fa", Err: errors.New("ragged alignment")}
	if err := WritePairs(&buf, []pipeline.Result{r}, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != "# bad.fa: ragged alignment\n" {
		t.Errorf("comment = %q", got)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	ok := scored(t, "x.fa",
		fasta.Record{ID: "a", Seq: "ACGT"},
		fasta.Record{ID: "b", Seq: "ACGT"},
	)
	bad := pipeline.Result{File: "bad.fa", Err: errors.New("boom")}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, []pipeline.Result{ok, bad}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got []api.ReportV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(got))
	}
	r0 := got[0]
	if r0.SourceFile != "x.fa" || r0.NumSequences != 2 || r0.TotalPairs != 1 {
		t.Errorf("report 0 = %+v", r0)
	}
	if r0.AverageIdentity != 100 || r0.Quality == nil || r0.Quality.Tier != "excellent" || r0.Quality.Color != "green" {
		t.Errorf("quality wrong: %+v", r0.Quality)
	}
	if r0.Consensus != "ACGT" || len(r0.Sequences) != 2 || len(r0.Pairwise) != 1 {
		t.Errorf("payload wrong: %+v", r0)
	}
	if got[1].Error != "boom" || got[1].Quality != nil {
		t.Errorf("failed unit wrong: %+v", got[1])
	}
}
