package v1

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"pr-analytics-dashboard/internal/http/v1/handler"
	"pr-analytics-dashboard/internal/http/v1/router"
	"pr-analytics-dashboard/internal/service"
)

type Router interface {
	SetupRoutes(r chi.Router)
}

type RouterDependencies struct {
	DashboardService *service.DashboardService
	Reloader         handler.DataReloader
}

func SetupRoutes(r chi.Router, deps *RouterDependencies, log *slog.Logger) {
	routers := []Router{
		router.NewMetricsRouter(deps.DashboardService, log),
		router.NewChartsRouter(deps.DashboardService, log),
		router.NewTableRouter(deps.DashboardService, log),
		router.NewFiltersRouter(deps.DashboardService, log),
		router.NewMetaRouter(deps.DashboardService, deps.Reloader, log),
	}

	for _, resourceRouter := range routers {
		resourceRouter.SetupRoutes(r)
	}
}
