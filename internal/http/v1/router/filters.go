package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"pr-analytics-dashboard/internal/http/v1/handler"
	"pr-analytics-dashboard/internal/service"
)

type FiltersRouter struct {
	handler *handler.FiltersHandler
}

func NewFiltersRouter(dashboard *service.DashboardService, log *slog.Logger) *FiltersRouter {
	return &FiltersRouter{
		handler: handler.NewFiltersHandler(dashboard, log),
	}
}

func (fr *FiltersRouter) SetupRoutes(r chi.Router) {
	r.Get("/filters", fr.handler.GetFilterOptions)
}
