package models

import "time"

// Snapshot is the immutable result of one load of the three data artifacts.
// Any subset may be missing after a partial load; LoadErrors records what
// failed so the UI can surface it without blocking the parts that loaded.
type Snapshot struct {
	PullRequests []PullRequest
	Summary      *MetricsSummary // nil when metrics.json failed to load
	LastUpdated  time.Time       // zero when last_update.txt failed to load
	LoadedAt     time.Time
	LoadErrors   []string
}

// LoadStatus is the wire form of the snapshot's health for the status banner.
type LoadStatus struct {
	RowsLoaded    int      `json:"rows_loaded"`
	SummaryLoaded bool     `json:"summary_loaded"`
	LastUpdated   string   `json:"last_updated,omitempty"`
	LoadedAt      string   `json:"loaded_at"`
	Errors        []string `json:"errors,omitempty"`
}
