package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"pr-analytics-dashboard/internal/http/v1/handler"
	"pr-analytics-dashboard/internal/service"
)

type MetaRouter struct {
	handler *handler.MetaHandler
}

func NewMetaRouter(dashboard *service.DashboardService, reloader handler.DataReloader, log *slog.Logger) *MetaRouter {
	return &MetaRouter{
		handler: handler.NewMetaHandler(dashboard, reloader, log),
	}
}

func (mr *MetaRouter) SetupRoutes(r chi.Router) {
	r.Get("/status", mr.handler.GetStatus)
	r.Post("/reload", mr.handler.Reload)
}
