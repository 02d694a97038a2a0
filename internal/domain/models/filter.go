package models

type StatusFilter string

const (
	StatusFilterAll    StatusFilter = "all"
	StatusFilterMerged StatusFilter = "merged"
	StatusFilterOpen   StatusFilter = "open"
	StatusFilterClosed StatusFilter = "closed"
)

type TypeFilter string

const (
	TypeFilterAll          TypeFilter = "all"
	TypeFilterDataContract TypeFilter = "data-contract"
	TypeFilterOther        TypeFilter = "other"
)

// FilterState is the conjunction of the four independent filter axes. The
// zero value means "no constraint" on every axis.
type FilterState struct {
	WindowDays int          // keep records created within the last N days, 0 = all
	Status     StatusFilter // "" treated as all
	Type       TypeFilter   // "" treated as all
	Author     string       // exact match, "" = all
}

// FilterOptions populates the dashboard selectors. Authors is derived from
// the loaded records, the rest are fixed sets.
type FilterOptions struct {
	Authors  []string `json:"authors"`
	Windows  []int    `json:"windows"`
	Statuses []string `json:"statuses"`
	Types    []string `json:"types"`
}
