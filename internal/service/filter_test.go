package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pr-analytics-dashboard/internal/domain/models"
	"pr-analytics-dashboard/internal/service"
)

const marker = "data contract"

var now = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func mergedPR(author string, createdDaysAgo int, mergeHours float64) models.PullRequest {
	return models.PullRequest{
		Author:         author,
		Status:         models.StatusMerged,
		CreatedAt:      daysAgo(createdDaysAgo),
		MergeTimeHours: &mergeHours,
	}
}

func TestApply_FilterAxes(t *testing.T) {
	prs := []models.PullRequest{
		mergedPR("alice", 3, 5),
		{Author: "bob", Status: models.StatusOpen, CreatedAt: daysAgo(10)},
		{Author: "carol", Status: models.StatusClosed, CreatedAt: daysAgo(40), Labels: []string{"Data Contract"}},
		{Author: "alice", Status: models.StatusOpen, CreatedAt: daysAgo(100), HasDataContract: true},
	}

	tests := []struct {
		name        string
		filter      models.FilterState
		wantAuthors []string
	}{
		{
			name:        "no constraints keeps everything in order",
			filter:      models.FilterState{},
			wantAuthors: []string{"alice", "bob", "carol", "alice"},
		},
		{
			name:        "window keeps only recent records",
			filter:      models.FilterState{WindowDays: 7},
			wantAuthors: []string{"alice"},
		},
		{
			name:        "status merged",
			filter:      models.FilterState{Status: models.StatusFilterMerged},
			wantAuthors: []string{"alice"},
		},
		{
			name:        "status open excludes merged and closed",
			filter:      models.FilterState{Status: models.StatusFilterOpen},
			wantAuthors: []string{"bob", "alice"},
		},
		{
			name:        "type matches label substring case-insensitively and explicit flag",
			filter:      models.FilterState{Type: models.TypeFilterDataContract},
			wantAuthors: []string{"carol", "alice"},
		},
		{
			name:        "type other excludes tagged records",
			filter:      models.FilterState{Type: models.TypeFilterOther},
			wantAuthors: []string{"alice", "bob"},
		},
		{
			name:        "author exact match",
			filter:      models.FilterState{Author: "bob"},
			wantAuthors: []string{"bob"},
		},
		{
			name:        "axes combine with AND",
			filter:      models.FilterState{WindowDays: 30, Status: models.StatusFilterOpen, Author: "bob"},
			wantAuthors: []string{"bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Apply(prs, tt.filter, now, marker)

			authors := make([]string, 0, len(got))
			for _, pr := range got {
				authors = append(authors, pr.Author)
			}
			assert.Equal(t, tt.wantAuthors, authors)
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	prs := []models.PullRequest{
		mergedPR("alice", 3, 5),
		{Author: "bob", Status: models.StatusOpen, CreatedAt: daysAgo(10)},
		{Author: "carol", Status: models.StatusClosed, CreatedAt: daysAgo(400)},
	}
	f := models.FilterState{WindowDays: 30, Status: models.StatusFilterOpen}

	once := service.Apply(prs, f, now, marker)
	twice := service.Apply(once, f, now, marker)

	assert.Equal(t, once, twice)
}

func TestApply_EmptyInput(t *testing.T) {
	got := service.Apply(nil, models.FilterState{WindowDays: 7}, now, marker)
	assert.Empty(t, got)
}

func TestStatusPartition(t *testing.T) {
	// Every state/is_merged combination maps to exactly one status.
	cases := []struct {
		state    string
		isMerged bool
		want     models.Status
	}{
		{"open", true, models.StatusMerged},
		{"closed", true, models.StatusMerged},
		{"open", false, models.StatusOpen},
		{"closed", false, models.StatusClosed},
		{"", false, models.StatusClosed},
	}

	for _, tc := range cases {
		got := models.ResolveStatus(tc.state, tc.isMerged)
		assert.Equal(t, tc.want, got, "state=%q merged=%v", tc.state, tc.isMerged)

		matched := 0
		pr := models.PullRequest{Status: got}
		for _, sf := range []models.StatusFilter{models.StatusFilterMerged, models.StatusFilterOpen, models.StatusFilterClosed} {
			if len(service.Apply([]models.PullRequest{pr}, models.FilterState{Status: sf}, now, marker)) == 1 {
				matched++
			}
		}
		assert.Equal(t, 1, matched, "record must match exactly one status branch")
	}
}
