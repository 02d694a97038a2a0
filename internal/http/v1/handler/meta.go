package handler

import (
	"log/slog"
	"net/http"

	"pr-analytics-dashboard/internal/lib/logger/sl"
	"pr-analytics-dashboard/internal/service"
)

// DataReloader re-reads the data directory, replacing the snapshot.
type DataReloader interface {
	Load() error
}

type MetaHandler struct {
	dashboard *service.DashboardService
	reloader  DataReloader
	log       *slog.Logger
}

func NewMetaHandler(dashboard *service.DashboardService, reloader DataReloader, log *slog.Logger) *MetaHandler {
	return &MetaHandler{
		dashboard: dashboard,
		reloader:  reloader,
		log:       log,
	}
}

// GetStatus reports the health of the last data load; the page binds its
// error banner and "last updated" footer to this.
func (h *MetaHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	const op = "handler.meta.GetStatus"

	log := h.log.With(slog.String("op", op))

	status := h.dashboard.Status(r.Context())
	writeJSON(log, w, http.StatusOK, status)
}

// Reload re-reads the data directory to pick up files regenerated by the
// external collection job. Partial failure still swaps in what loaded.
func (h *MetaHandler) Reload(w http.ResponseWriter, r *http.Request) {
	const op = "handler.meta.Reload"

	log := h.log.With(slog.String("op", op))

	log.Info("reloading data directory")

	if err := h.reloader.Load(); err != nil {
		log.Warn("reload completed with errors", sl.Err(err))
	}

	writeJSON(log, w, http.StatusOK, h.dashboard.Status(r.Context()))
}
