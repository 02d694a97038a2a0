package service

import (
	"sort"

	"pr-analytics-dashboard/internal/domain/models"
)

const (
	timelineMonths    = 6
	reviewTrendMonths = 12
)

// Merge-speed histogram bands, in hours. Each merge time falls in exactly
// one band; records without a merge time are not counted.
var mergeSpeedBands = []struct {
	label string
	upper float64 // exclusive, 0 = unbounded
}{
	{"<1h", 1},
	{"1-24h", 24},
	{"1-7d", 168},
	{"1-4w", 672},
	{">4w", 0},
}

// BuildCharts derives all five chart series from prs in one pass set. Months
// with no records are absent from the month-keyed series, not zero-filled.
func BuildCharts(prs []models.PullRequest, topAuthors int) models.ChartData {
	return models.ChartData{
		Timeline:    buildTimeline(prs),
		Status:      buildStatusDistribution(prs),
		TopAuthors:  buildTopAuthors(prs, topAuthors),
		MergeSpeed:  buildMergeSpeed(prs),
		ReviewTrend: buildReviewTrend(prs),
	}
}

func buildTimeline(prs []models.PullRequest) []models.TimelinePoint {
	counts := monthCounts(prs)
	months := lastMonths(counts, timelineMonths)

	points := make([]models.TimelinePoint, 0, len(months))
	for _, m := range months {
		points = append(points, models.TimelinePoint{Month: m, Count: counts[m]})
	}
	return points
}

func buildStatusDistribution(prs []models.PullRequest) models.StatusDistribution {
	var d models.StatusDistribution
	for _, pr := range prs {
		switch pr.Status {
		case models.StatusMerged:
			d.Merged++
		case models.StatusOpen:
			d.Open++
		default:
			d.Closed++
		}
	}
	return d
}

// buildTopAuthors ranks authors by PR count descending, keeping the first
// limit entries. Ties preserve first-encountered order.
func buildTopAuthors(prs []models.PullRequest, limit int) []models.AuthorCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, pr := range prs {
		if _, seen := counts[pr.Author]; !seen {
			order = append(order, pr.Author)
		}
		counts[pr.Author]++
	}

	ranked := make([]models.AuthorCount, 0, len(order))
	for _, author := range order {
		ranked = append(ranked, models.AuthorCount{Author: author, Count: counts[author]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func buildMergeSpeed(prs []models.PullRequest) []models.HistogramBucket {
	buckets := make([]models.HistogramBucket, len(mergeSpeedBands))
	for i, band := range mergeSpeedBands {
		buckets[i].Label = band.label
	}

	for _, pr := range prs {
		if pr.MergeTimeHours == nil {
			continue
		}
		buckets[bandIndex(*pr.MergeTimeHours)].Count++
	}
	return buckets
}

func bandIndex(hours float64) int {
	for i, band := range mergeSpeedBands {
		if band.upper > 0 && hours < band.upper {
			return i
		}
	}
	return len(mergeSpeedBands) - 1
}

func buildReviewTrend(prs []models.PullRequest) []models.ReviewTrendPoint {
	volume := monthCounts(prs)
	reviewed := make(map[string]int)
	for _, pr := range prs {
		if pr.CreatedAt.IsZero() || pr.ReviewComments == 0 {
			continue
		}
		reviewed[pr.CreatedAt.Format("2006-01")]++
	}

	months := lastMonths(volume, reviewTrendMonths)

	points := make([]models.ReviewTrendPoint, 0, len(months))
	for _, m := range months {
		p := models.ReviewTrendPoint{Month: m, Volume: volume[m]}
		if p.Volume > 0 {
			p.Coverage = round1(float64(reviewed[m]) / float64(p.Volume) * 100)
		}
		points = append(points, p)
	}
	return points
}

func monthCounts(prs []models.PullRequest) map[string]int {
	counts := make(map[string]int)
	for _, pr := range prs {
		if pr.CreatedAt.IsZero() {
			continue
		}
		counts[pr.CreatedAt.Format("2006-01")]++
	}
	return counts
}

// lastMonths returns the last n distinct months present in counts, in
// ascending chronological order. YYYY-MM keys sort lexicographically.
func lastMonths(counts map[string]int, n int) []string {
	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)

	if len(months) > n {
		months = months[len(months)-n:]
	}
	return months
}
