package handler

import (
	"log/slog"
	"net/http"

	"pr-analytics-dashboard/internal/lib/logger/sl"
	"pr-analytics-dashboard/internal/service"
)

type ChartsHandler struct {
	dashboard *service.DashboardService
	log       *slog.Logger
}

func NewChartsHandler(dashboard *service.DashboardService, log *slog.Logger) *ChartsHandler {
	return &ChartsHandler{
		dashboard: dashboard,
		log:       log,
	}
}

// GetCharts returns all five chart series for the filtered records in one
// payload, so the page rebuilds every chart from one consistent view.
func (h *ChartsHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	const op = "handler.charts.GetCharts"

	log := h.log.With(slog.String("op", op))

	f, err := parseFilterState(r)
	if err != nil {
		log.Error("invalid filter parameters", sl.Err(err))
		writeErrorResponse(log, w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	charts := h.dashboard.Charts(r.Context(), f)
	writeJSON(log, w, http.StatusOK, charts)
}
