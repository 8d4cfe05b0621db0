package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "id\tmode\tseq_a\tseq_b\tedits\tcigar\tcolumns\tdistance\tidentity\terror"

// Empty stands in for an empty field so columns stay aligned.
const Empty = "."
