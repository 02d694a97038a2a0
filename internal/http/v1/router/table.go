package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"pr-analytics-dashboard/internal/http/v1/handler"
	"pr-analytics-dashboard/internal/service"
)

type TableRouter struct {
	handler *handler.TableHandler
}

func NewTableRouter(dashboard *service.DashboardService, log *slog.Logger) *TableRouter {
	return &TableRouter{
		handler: handler.NewTableHandler(dashboard, log),
	}
}

func (tr *TableRouter) SetupRoutes(r chi.Router) {
	r.Get("/table", tr.handler.GetTable)
}
