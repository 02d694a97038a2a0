package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"pr-analytics-dashboard/internal/http/v1/handler"
	"pr-analytics-dashboard/internal/service"
)

type MetricsRouter struct {
	handler *handler.MetricsHandler
}

func NewMetricsRouter(dashboard *service.DashboardService, log *slog.Logger) *MetricsRouter {
	return &MetricsRouter{
		handler: handler.NewMetricsHandler(dashboard, log),
	}
}

func (mr *MetricsRouter) SetupRoutes(r chi.Router) {
	r.Get("/summary", mr.handler.GetSummary)
	r.Get("/metrics", mr.handler.GetMetrics)
}
