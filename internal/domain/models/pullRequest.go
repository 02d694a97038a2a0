package models

import "time"

// Status is the resolved lifecycle state of a pull request. Every record maps
// to exactly one status: merged wins over the raw open/closed state.
type Status string

const (
	StatusMerged Status = "merged"
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type PullRequest struct {
	Number          int       `json:"number"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	MergeTimeHours  *float64  `json:"merge_time_hours,omitempty"`
	ReviewComments  int       `json:"review_comments"`
	Labels          []string  `json:"labels"`
	HasDataContract bool      `json:"has_data_contract_label"`
}

// ResolveStatus converts the raw state/is_merged pair from the source table
// into a Status once, at the parse boundary.
func ResolveStatus(state string, isMerged bool) Status {
	switch {
	case isMerged:
		return StatusMerged
	case state == "open":
		return StatusOpen
	default:
		return StatusClosed
	}
}
