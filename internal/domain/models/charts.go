package models

type TimelinePoint struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

type StatusDistribution struct {
	Merged int `json:"merged"`
	Open   int `json:"open"`
	Closed int `json:"closed"`
}

type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

type HistogramBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type ReviewTrendPoint struct {
	Month    string  `json:"month"`
	Coverage float64 `json:"coverage"` // percent of PRs in the month with review comments
	Volume   int     `json:"volume"`
}

// ChartData carries all five chart series in one payload so the page rebuilds
// every chart from a single consistent snapshot of the filtered records.
type ChartData struct {
	Timeline    []TimelinePoint    `json:"timeline"`
	Status      StatusDistribution `json:"status"`
	TopAuthors  []AuthorCount      `json:"top_authors"`
	MergeSpeed  []HistogramBucket  `json:"merge_speed"`
	ReviewTrend []ReviewTrendPoint `json:"review_trend"`
}

type TableRow struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Status    string   `json:"status"`
	MergeTime string   `json:"merge_time"`
	Created   string   `json:"created"`
	Labels    []string `json:"labels"`
}
