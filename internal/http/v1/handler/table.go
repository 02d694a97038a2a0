package handler

import (
	"log/slog"
	"net/http"

	"pr-analytics-dashboard/internal/domain/models"
	"pr-analytics-dashboard/internal/lib/logger/sl"
	"pr-analytics-dashboard/internal/service"
)

type TableResponse struct {
	Rows []models.TableRow `json:"rows"`
}

type TableHandler struct {
	dashboard *service.DashboardService
	log       *slog.Logger
}

func NewTableHandler(dashboard *service.DashboardService, log *slog.Logger) *TableHandler {
	return &TableHandler{
		dashboard: dashboard,
		log:       log,
	}
}

func (h *TableHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	const op = "handler.table.GetTable"

	log := h.log.With(slog.String("op", op))

	f, err := parseFilterState(r)
	if err != nil {
		log.Error("invalid filter parameters", sl.Err(err))
		writeErrorResponse(log, w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	rows := h.dashboard.Table(r.Context(), f)
	if rows == nil {
		rows = []models.TableRow{}
	}

	writeJSON(log, w, http.StatusOK, TableResponse{Rows: rows})
}
