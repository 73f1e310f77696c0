package output

// ReportTSVHeader is the canonical header row for per-file report rows.
// Keep this as the single source of truth; all writers should use it.
const ReportTSVHeader = "source_file\tnum_seqs\talignment_length\tconserved\tconservation_pct\tavg_score\tavg_identity_pct\ttotal_pairs\tquality\tcolor\tstatus"

// PairTSVHeader is the canonical header row for per-pair rows.
const PairTSVHeader = "source_file\tquery_id\tsubject_id\tscore\tmatches\tmismatches\tgaps\tgap_runs\tidentity_pct\tsimilarity_pct\tlength"
