package handler

import (
	"net/http"
	"strconv"

	"pr-analytics-dashboard/internal/apperrors"
	"pr-analytics-dashboard/internal/domain/models"
)

// parseFilterState reads the four filter axes from query parameters. Absent
// parameters and the "all" sentinel mean no constraint on that axis.
func parseFilterState(r *http.Request) (models.FilterState, error) {
	q := r.URL.Query()

	f := models.FilterState{
		Status: models.StatusFilterAll,
		Type:   models.TypeFilterAll,
		Author: q.Get("author"),
	}

	switch w := q.Get("window"); w {
	case "", "all":
	default:
		n, err := strconv.Atoi(w)
		if err != nil || n <= 0 {
			return f, apperrors.ErrInvalidWindow
		}
		f.WindowDays = n
	}

	switch st := q.Get("status"); st {
	case "", "all":
	case "merged", "open", "closed":
		f.Status = models.StatusFilter(st)
	default:
		return f, apperrors.ErrInvalidStatusFilter
	}

	switch tp := q.Get("type"); tp {
	case "", "all":
	case "data-contract", "other":
		f.Type = models.TypeFilter(tp)
	default:
		return f, apperrors.ErrInvalidTypeFilter
	}

	return f, nil
}
