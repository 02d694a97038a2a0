package service

import (
	"strings"
	"time"

	"pr-analytics-dashboard/internal/domain/models"
)

// Apply returns the subsequence of prs satisfying every active predicate of
// f, preserving input order. An axis set to its "all" sentinel (or zero
// value) imposes no constraint. Applying the same state twice is a no-op.
func Apply(prs []models.PullRequest, f models.FilterState, now time.Time, marker string) []models.PullRequest {
	filtered := make([]models.PullRequest, 0, len(prs))

	var cutoff time.Time
	if f.WindowDays > 0 {
		cutoff = now.AddDate(0, 0, -f.WindowDays)
	}

	for _, pr := range prs {
		if f.WindowDays > 0 && pr.CreatedAt.Before(cutoff) {
			continue
		}
		if !matchesStatus(pr, f.Status) {
			continue
		}
		if !matchesType(pr, f.Type, marker) {
			continue
		}
		if f.Author != "" && pr.Author != f.Author {
			continue
		}
		filtered = append(filtered, pr)
	}

	return filtered
}

func matchesStatus(pr models.PullRequest, sf models.StatusFilter) bool {
	switch sf {
	case models.StatusFilterMerged:
		return pr.Status == models.StatusMerged
	case models.StatusFilterOpen:
		return pr.Status == models.StatusOpen
	case models.StatusFilterClosed:
		return pr.Status == models.StatusClosed
	default:
		return true
	}
}

func matchesType(pr models.PullRequest, tf models.TypeFilter, marker string) bool {
	switch tf {
	case models.TypeFilterDataContract:
		return isDataContract(pr, marker)
	case models.TypeFilterOther:
		return !isDataContract(pr, marker)
	default:
		return true
	}
}

// isDataContract checks the explicit flag from the source table, falling
// back to a case-insensitive marker substring match over the labels.
func isDataContract(pr models.PullRequest, marker string) bool {
	if pr.HasDataContract {
		return true
	}
	if marker == "" {
		return false
	}
	marker = strings.ToLower(marker)
	for _, label := range pr.Labels {
		if strings.Contains(strings.ToLower(label), marker) {
			return true
		}
	}
	return false
}
