package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"pr-analytics-dashboard/internal/app/rest"
	"pr-analytics-dashboard/internal/config"
	v1 "pr-analytics-dashboard/internal/http/v1"
	"pr-analytics-dashboard/internal/lib/logger/sl"
	"pr-analytics-dashboard/internal/service"
	"pr-analytics-dashboard/internal/storage/datastore"
)

type App struct {
	log     *slog.Logger
	restApp *rest.App
}

func MustNew(log *slog.Logger) *App {
	cfg := config.MustLoad()

	store := datastore.New(log, cfg.Data)

	// A failed or partial load is not fatal: the dashboard serves whatever
	// loaded and surfaces the rest through the status endpoint.
	if err := store.Load(); err != nil {
		log.Warn("initial data load incomplete", sl.Err(err))
	}

	dashboardService := service.NewDashboardService(log, store, cfg.Dashboard)

	routerDependencies := v1.RouterDependencies{
		DashboardService: dashboardService,
		Reloader:         store,
	}

	restApp := rest.New(
		log,
		&routerDependencies,
		cfg,
	)

	return &App{
		log:     log,
		restApp: restApp,
	}
}

func (a *App) MustRun() {
	const op = "app.MustRun"
	a.log.With(slog.String("op", op)).Info("starting application")

	if err := a.restApp.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (a *App) GracefulShutdown() {
	const op = "app.GracefulShutdown"
	a.log.With(slog.String("op", op)).Info("shutting down application")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.restApp.Stop(ctx); err != nil {
		a.log.Error("failed to stop HTTP server", sl.Err(err))
	}
}
