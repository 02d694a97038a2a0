package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"pr-analytics-dashboard/internal/apperrors"
	"pr-analytics-dashboard/internal/config"
	"pr-analytics-dashboard/internal/domain/models"
)

type DashboardService struct {
	log  *slog.Logger
	data SnapshotProvider
	cfg  config.DashboardConfig
	now  func() time.Time
}

// SnapshotProvider hands out the current immutable data snapshot.
type SnapshotProvider interface {
	Snapshot() *models.Snapshot
}

func NewDashboardService(
	log *slog.Logger,
	data SnapshotProvider,
	cfg config.DashboardConfig) *DashboardService {
	return &DashboardService{
		log:  log,
		data: data,
		cfg:  cfg,
		now:  time.Now,
	}
}

// Summary returns the externally precomputed metrics. Filtered views never
// use it; they go through Metrics instead.
func (s *DashboardService) Summary(ctx context.Context) (*models.MetricsSummary, error) {
	const op = "service.dashboard.Summary"

	snap := s.data.Snapshot()
	if snap.Summary == nil {
		s.log.With(slog.String("op", op)).Warn("summary requested but not loaded")
		return nil, apperrors.ErrSummaryNotLoaded
	}
	return snap.Summary, nil
}

// Metrics recomputes the aggregates over the records matching f.
func (s *DashboardService) Metrics(ctx context.Context, f models.FilterState) models.Metrics {
	const op = "service.dashboard.Metrics"

	filtered := s.filtered(f)
	metrics := ComputeMetrics(filtered, s.cfg.MarkerLabel)

	s.log.With(slog.String("op", op)).Info("metrics computed",
		slog.Int("matched", metrics.TotalPRs),
		slog.Int("window_days", f.WindowDays))

	return metrics
}

// Charts builds all five chart series over the records matching f.
func (s *DashboardService) Charts(ctx context.Context, f models.FilterState) models.ChartData {
	const op = "service.dashboard.Charts"

	filtered := s.filtered(f)
	charts := BuildCharts(filtered, s.cfg.TopAuthors)

	s.log.With(slog.String("op", op)).Info("chart series built",
		slog.Int("matched", len(filtered)))

	return charts
}

// Table projects the first rows matching f for the recent-PRs table.
func (s *DashboardService) Table(ctx context.Context, f models.FilterState) []models.TableRow {
	return BuildTable(s.filtered(f), s.cfg.TableLimit)
}

// FilterOptions lists the selector contents: distinct authors observed in
// the data plus the fixed window/status/type sets.
func (s *DashboardService) FilterOptions(ctx context.Context) models.FilterOptions {
	snap := s.data.Snapshot()

	seen := make(map[string]struct{})
	authors := make([]string, 0)
	for _, pr := range snap.PullRequests {
		if pr.Author == "" {
			continue
		}
		if _, ok := seen[pr.Author]; ok {
			continue
		}
		seen[pr.Author] = struct{}{}
		authors = append(authors, pr.Author)
	}
	sort.Strings(authors)

	return models.FilterOptions{
		Authors:  authors,
		Windows:  []int{7, 30, 90, 180, 365},
		Statuses: []string{"all", "merged", "open", "closed"},
		Types:    []string{"all", "data-contract", "other"},
	}
}

// Status reports the health of the last data load for the UI banner.
func (s *DashboardService) Status(ctx context.Context) models.LoadStatus {
	snap := s.data.Snapshot()

	status := models.LoadStatus{
		RowsLoaded:    len(snap.PullRequests),
		SummaryLoaded: snap.Summary != nil,
		LoadedAt:      snap.LoadedAt.Format(time.RFC3339),
		Errors:        snap.LoadErrors,
	}
	if !snap.LastUpdated.IsZero() {
		status.LastUpdated = snap.LastUpdated.Format(time.RFC3339)
	}
	return status
}

func (s *DashboardService) filtered(f models.FilterState) []models.PullRequest {
	snap := s.data.Snapshot()
	return Apply(snap.PullRequests, f, s.now(), s.cfg.MarkerLabel)
}
