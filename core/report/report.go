// core/report/report.go
package report

import (
	"alnqc-core/align"
	"alnqc-core/fasta"
	"alnqc-core/msa"
	"alnqc-core/quality"
	"alnqc-core/seqstat"
)

// Report bundles aggregate statistics with their quality grade. It is the
// core's final product; turning it into display markup is the caller's job.
type Report struct {
	Stats     msa.Stats
	Sequences []seqstat.Summary
	Quality   quality.Tier
}

// Assemble bundles stats, per-sequence summaries, and the grade.
func Assemble(stats msa.Stats, seqs []seqstat.Summary, tier quality.Tier) Report {
	return Report{Stats: stats, Sequences: seqs, Quality: tier}
}

// Build scores one finished alignment end to end: aggregate, summarize,
// classify, assemble. Errors from the aggregator propagate unchanged.
func Build(records []fasta.Record, p align.Params) (Report, error) {
	stats, err := msa.Aggregate(records, p)
	if err != nil {
		return Report{}, err
	}
	tier := quality.Classify(stats.AverageIdentity)
	return Assemble(stats, seqstat.Summarize(records), tier), nil
}
