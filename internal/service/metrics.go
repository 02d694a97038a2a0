package service

import (
	"math"

	"pr-analytics-dashboard/internal/domain/models"
)

const fastMergeThresholdHours = 24

// ComputeMetrics derives the aggregate metrics over prs. Every rate guards
// the empty-denominator case by reporting 0.
func ComputeMetrics(prs []models.PullRequest, marker string) models.Metrics {
	m := models.Metrics{TotalPRs: len(prs)}

	var (
		mergeTimeSum  float64
		withMergeTime int
		fastMerges    int
		withReviews   int
	)
	authors := make(map[string]struct{})

	for _, pr := range prs {
		if pr.Status == models.StatusMerged {
			m.MergedPRs++
		}
		if pr.MergeTimeHours != nil {
			mergeTimeSum += *pr.MergeTimeHours
			withMergeTime++
			if *pr.MergeTimeHours < fastMergeThresholdHours {
				fastMerges++
			}
		}
		if pr.ReviewComments > 0 {
			withReviews++
		}
		if isDataContract(pr, marker) {
			m.DataContractPRs++
		}
		authors[pr.Author] = struct{}{}
	}

	m.ActiveAuthors = len(authors)
	if m.TotalPRs > 0 {
		m.MergeRate = round1(float64(m.MergedPRs) / float64(m.TotalPRs) * 100)
		m.ReviewCoverage = round1(float64(withReviews) / float64(m.TotalPRs) * 100)
	}
	if withMergeTime > 0 {
		m.AvgMergeTimeHours = round1(mergeTimeSum / float64(withMergeTime))
		m.FastMergeRate = round1(float64(fastMerges) / float64(withMergeTime) * 100)
	}

	return m
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
