package handler

import (
	"log/slog"
	"net/http"

	"pr-analytics-dashboard/internal/service"
)

type FiltersHandler struct {
	dashboard *service.DashboardService
	log       *slog.Logger
}

func NewFiltersHandler(dashboard *service.DashboardService, log *slog.Logger) *FiltersHandler {
	return &FiltersHandler{
		dashboard: dashboard,
		log:       log,
	}
}

// GetFilterOptions serves the selector contents, including the dynamically
// observed author list.
func (h *FiltersHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	const op = "handler.filters.GetFilterOptions"

	log := h.log.With(slog.String("op", op))

	options := h.dashboard.FilterOptions(r.Context())
	writeJSON(log, w, http.StatusOK, options)
}
