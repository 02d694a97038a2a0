package models

// Metrics is the set of aggregates recomputed server-side over a (possibly
// filtered) record slice. All rates are percentages rounded to one decimal
// and fall back to 0 when their denominator is empty.
type Metrics struct {
	TotalPRs          int     `json:"total_prs"`
	MergedPRs         int     `json:"merged_prs"`
	MergeRate         float64 `json:"merge_rate"`
	AvgMergeTimeHours float64 `json:"avg_merge_time_hours"`
	FastMergeRate     float64 `json:"fast_merge_rate"`
	ActiveAuthors     int     `json:"active_authors"`
	ReviewCoverage    float64 `json:"review_coverage"`
	DataContractPRs   int     `json:"data_contract_prs"`
}

// MetricsSummary mirrors the precomputed metrics.json artifact produced by
// the external collection job. It backs the unfiltered headline cards only;
// filtered views always recompute from the raw records.
type MetricsSummary struct {
	TotalPRs          int     `json:"total_prs"`
	MergedPRs         int     `json:"merged_prs"`
	MergeRate         float64 `json:"merge_rate"`
	AvgMergeTimeHours float64 `json:"avg_merge_time_hours"`
	FastMergeRate     float64 `json:"fast_merge_rate"`
	ActiveAuthors     int     `json:"active_authors"`
	ReviewCoverage    float64 `json:"review_coverage"`
	DataContractPRs   int     `json:"data_contract_prs"`
	LastUpdated       string  `json:"last_updated"`
}
