package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"pr-analytics-dashboard/internal/http/v1/handler"
	"pr-analytics-dashboard/internal/service"
)

type ChartsRouter struct {
	handler *handler.ChartsHandler
}

func NewChartsRouter(dashboard *service.DashboardService, log *slog.Logger) *ChartsRouter {
	return &ChartsRouter{
		handler: handler.NewChartsHandler(dashboard, log),
	}
}

func (cr *ChartsRouter) SetupRoutes(r chi.Router) {
	r.Get("/charts", cr.handler.GetCharts)
}
