package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"pr-analytics-dashboard/internal/apperrors"
	"pr-analytics-dashboard/internal/lib/logger/sl"
	"pr-analytics-dashboard/internal/service"
)

type MetricsHandler struct {
	dashboard *service.DashboardService
	log       *slog.Logger
}

func NewMetricsHandler(dashboard *service.DashboardService, log *slog.Logger) *MetricsHandler {
	return &MetricsHandler{
		dashboard: dashboard,
		log:       log,
	}
}

// GetSummary serves the precomputed, unfiltered metrics.json content.
func (h *MetricsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	const op = "handler.metrics.GetSummary"

	log := h.log.With(slog.String("op", op))

	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		log.Error("failed to get summary", sl.Err(err))

		if errors.Is(err, apperrors.ErrSummaryNotLoaded) {
			writeErrorResponse(log, w, http.StatusServiceUnavailable, "SUMMARY_UNAVAILABLE", "metrics summary is not loaded")
			return
		}
		writeErrorResponse(log, w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to get summary")
		return
	}

	writeJSON(log, w, http.StatusOK, summary)
}

// GetMetrics recomputes the aggregates over the filtered records.
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	const op = "handler.metrics.GetMetrics"

	log := h.log.With(slog.String("op", op))

	f, err := parseFilterState(r)
	if err != nil {
		log.Error("invalid filter parameters", sl.Err(err))
		writeErrorResponse(log, w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	metrics := h.dashboard.Metrics(r.Context(), f)
	writeJSON(log, w, http.StatusOK, metrics)
}
