package service

import (
	"fmt"

	"pr-analytics-dashboard/internal/domain/models"
)

const (
	titleBudget = 60
	placeholder = "—"
)

// BuildTable projects the first limit records, in input order, into display
// rows. Absent merge times and unparsed dates render as a placeholder.
func BuildTable(prs []models.PullRequest, limit int) []models.TableRow {
	if limit > 0 && len(prs) > limit {
		prs = prs[:limit]
	}

	rows := make([]models.TableRow, 0, len(prs))
	for _, pr := range prs {
		row := models.TableRow{
			Number:    pr.Number,
			Title:     truncateTitle(pr.Title),
			Author:    pr.Author,
			Status:    string(pr.Status),
			MergeTime: placeholder,
			Created:   placeholder,
			Labels:    pr.Labels,
		}
		if pr.MergeTimeHours != nil {
			row.MergeTime = fmt.Sprintf("%.1fh", *pr.MergeTimeHours)
		}
		if !pr.CreatedAt.IsZero() {
			row.Created = pr.CreatedAt.Format("Jan 2, 2006")
		}
		if row.Labels == nil {
			row.Labels = []string{}
		}
		rows = append(rows, row)
	}
	return rows
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= titleBudget {
		return title
	}
	return string(runes[:titleBudget]) + "…"
}
