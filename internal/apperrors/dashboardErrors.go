package apperrors

import "errors"

var (
	ErrSummaryNotLoaded    = errors.New("metrics summary is not loaded")
	ErrInvalidWindow       = errors.New("window must be a positive day count or 'all'")
	ErrInvalidStatusFilter = errors.New("status must be one of all, merged, open, closed")
	ErrInvalidTypeFilter   = errors.New("type must be one of all, data-contract, other")
)
