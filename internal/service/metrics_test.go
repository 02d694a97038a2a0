package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pr-analytics-dashboard/internal/domain/models"
	"pr-analytics-dashboard/internal/service"
)

func hours(v float64) *float64 { return &v }

func TestComputeMetrics_Empty(t *testing.T) {
	m := service.ComputeMetrics(nil, marker)

	assert.Equal(t, 0, m.TotalPRs)
	assert.Zero(t, m.MergeRate)
	assert.Zero(t, m.AvgMergeTimeHours)
	assert.Zero(t, m.FastMergeRate)
	assert.Zero(t, m.ReviewCoverage)
	assert.Zero(t, m.ActiveAuthors)
}

func TestComputeMetrics_NoMergeTimes(t *testing.T) {
	prs := []models.PullRequest{
		{Author: "alice", Status: models.StatusOpen},
		{Author: "bob", Status: models.StatusClosed},
	}

	m := service.ComputeMetrics(prs, marker)

	assert.Zero(t, m.AvgMergeTimeHours)
	assert.Zero(t, m.FastMergeRate)
}

func TestComputeMetrics_Aggregates(t *testing.T) {
	prs := []models.PullRequest{
		{Author: "alice", Status: models.StatusMerged, MergeTimeHours: hours(2), ReviewComments: 3},
		{Author: "alice", Status: models.StatusMerged, MergeTimeHours: hours(50), ReviewComments: 0},
		{Author: "bob", Status: models.StatusOpen, ReviewComments: 1, HasDataContract: true},
	}

	m := service.ComputeMetrics(prs, marker)

	assert.Equal(t, 3, m.TotalPRs)
	assert.Equal(t, 2, m.MergedPRs)
	assert.InDelta(t, 66.7, m.MergeRate, 0.001)
	assert.InDelta(t, 26.0, m.AvgMergeTimeHours, 0.001)
	assert.InDelta(t, 50.0, m.FastMergeRate, 0.001) // one of two merge times is under 24h
	assert.Equal(t, 2, m.ActiveAuthors)
	assert.InDelta(t, 66.7, m.ReviewCoverage, 0.001)
	assert.Equal(t, 1, m.DataContractPRs)
}

func TestComputeMetrics_RatesStayInRange(t *testing.T) {
	sets := [][]models.PullRequest{
		nil,
		{{Author: "a", Status: models.StatusMerged, MergeTimeHours: hours(1)}},
		{{Author: "a", Status: models.StatusOpen}, {Author: "b", Status: models.StatusClosed}},
	}

	for _, prs := range sets {
		m := service.ComputeMetrics(prs, marker)
		assert.GreaterOrEqual(t, m.MergeRate, 0.0)
		assert.LessOrEqual(t, m.MergeRate, 100.0)
		assert.GreaterOrEqual(t, m.FastMergeRate, 0.0)
		assert.LessOrEqual(t, m.FastMergeRate, 100.0)
		assert.GreaterOrEqual(t, m.ReviewCoverage, 0.0)
		assert.LessOrEqual(t, m.ReviewCoverage, 100.0)
	}
}
