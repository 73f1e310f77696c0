// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"alnqc-core/report"
	"alnqc/internal/pipeline"
	"alnqc/pkg/api"
)

// ToAPIReport converts one unit's outcome to the stable wire schema (v1).
func ToAPIReport(r pipeline.Result) api.ReportV1 {
	if r.Err != nil {
		return api.ReportV1{SourceFile: r.File, Error: r.Err.Error()}
	}
	return toAPISuccess(r.File, r.Report)
}

func toAPISuccess(file string, rep report.Report) api.ReportV1 {
	st := rep.Stats
	v := api.ReportV1{
		SourceFile:         file,
		NumSequences:       st.NumSequences,
		AlignmentLength:    st.AlignmentLength,
		ConservedPositions: st.ConservedPositions,
		ConservedColumns:   append([]int(nil), st.ConservedColumns...),
		Conservation:       st.Conservation,
		AverageScore:       st.AverageScore,
		AverageIdentity:    st.AverageIdentity,
		TotalPairs:         st.TotalPairs,
		Consensus:          st.Consensus,
		Quality:            &api.QualityV1{Tier: rep.Quality.String(), Color: rep.Quality.Color()},
	}
	for _, s := range rep.Sequences {
		v.Sequences = append(v.Sequences, api.SequenceV1{ID: s.ID, Length: s.Length, GC: s.GC})
	}
	for _, p := range st.Pairwise {
		v.Pairwise = append(v.Pairwise, api.PairScoreV1{
			QueryID:    p.QueryID,
			SubjectID:  p.SubjectID,
			Score:      p.Score,
			Matches:    p.Matches,
			Mismatches: p.Mismatches,
			Gaps:       p.Gaps,
			GapRuns:    p.GapRuns,
			Identity:   p.Identity,
			Similarity: p.Similarity,
			Length:     p.Length,
		})
	}
	return v
}

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, list []pipeline.Result) error {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
