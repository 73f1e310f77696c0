// pkg/api/report_v1.go
package api

// PairScoreV1 is the stable JSON schema for one scored pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PairScoreV1 struct {
	QueryID    string  `json:"query_id"`
	SubjectID  string  `json:"subject_id"`
	Score      float64 `json:"score"`
	Matches    int     `json:"matches"`
	Mismatches int     `json:"mismatches"`
	Gaps       int     `json:"gaps"`
	GapRuns    int     `json:"gap_runs"`
	Identity   float64 `json:"identity_pct"`
	Similarity float64 `json:"similarity_pct"`
	Length     int     `json:"length"`
}

// SequenceV1 summarizes one aligned sequence with gaps removed.
type SequenceV1 struct {
	ID     string  `json:"id"`
	Length int     `json:"length"`
	GC     float64 `json:"gc_pct"`
}

// QualityV1 is the grade assigned from average identity.
type QualityV1 struct {
	Tier  string `json:"tier"`
	Color string `json:"color"`
}

// ReportV1 is the stable schema for one alignment file's quality report.
// A failed unit of work carries Error and omits Quality.
type ReportV1 struct {
	SourceFile         string        `json:"source_file"`
	NumSequences       int           `json:"num_sequences"`
	AlignmentLength    int           `json:"alignment_length"`
	ConservedPositions int           `json:"conserved_positions"`
	ConservedColumns   []int         `json:"conserved_columns,omitempty"`
	Conservation       float64       `json:"conservation_pct"`
	AverageScore       float64       `json:"average_score"`
	AverageIdentity    float64       `json:"average_identity_pct"`
	TotalPairs         int           `json:"total_pairs"`
	Consensus          string        `json:"consensus,omitempty"`
	Sequences          []SequenceV1  `json:"sequences,omitempty"`
	Pairwise           []PairScoreV1 `json:"pairwise,omitempty"`
	Quality            *QualityV1    `json:"quality,omitempty"`
	Error              string        `json:"error,omitempty"`
}
