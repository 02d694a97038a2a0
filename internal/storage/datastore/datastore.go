package datastore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"pr-analytics-dashboard/internal/config"
	"pr-analytics-dashboard/internal/domain/models"
	"pr-analytics-dashboard/internal/lib/logger/sl"
)

// Store owns the in-memory snapshot of the three data artifacts. Load and
// Reload swap the snapshot atomically; readers always see a consistent view.
type Store struct {
	log *slog.Logger
	cfg config.DataConfig

	mu   sync.RWMutex
	snap *models.Snapshot
}

func New(log *slog.Logger, cfg config.DataConfig) *Store {
	return &Store{
		log:  log,
		cfg:  cfg,
		snap: &models.Snapshot{LoadedAt: time.Now().UTC()},
	}
}

// Load reads pr_data.csv, metrics.json and last_update.txt from the data
// directory. Failures are collected per resource: whatever loaded is kept,
// whatever failed is recorded on the snapshot and returned as a combined
// error. A partial failure never blocks the parts that did load.
func (s *Store) Load() error {
	const op = "storage.datastore.Load"

	log := s.log.With(slog.String("op", op), slog.String("dir", s.cfg.Dir))

	var loadErr *multierror.Error
	snap := &models.Snapshot{LoadedAt: time.Now().UTC()}

	prs, err := s.loadPullRequests(log)
	if err != nil {
		loadErr = multierror.Append(loadErr, fmt.Errorf("%s: %w", op, err))
		snap.LoadErrors = append(snap.LoadErrors, err.Error())
	} else {
		snap.PullRequests = prs
	}

	summary, err := s.loadSummary()
	if err != nil {
		loadErr = multierror.Append(loadErr, fmt.Errorf("%s: %w", op, err))
		snap.LoadErrors = append(snap.LoadErrors, err.Error())
	} else {
		snap.Summary = summary
	}

	lastUpdated, err := s.loadLastUpdated()
	if err != nil {
		loadErr = multierror.Append(loadErr, fmt.Errorf("%s: %w", op, err))
		snap.LoadErrors = append(snap.LoadErrors, err.Error())
	} else {
		snap.LastUpdated = lastUpdated
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	if err := loadErr.ErrorOrNil(); err != nil {
		log.Warn("data load completed with errors",
			slog.Int("rows", len(snap.PullRequests)),
			sl.Err(err))
		return err
	}

	log.Info("data load completed",
		slog.Int("rows", len(snap.PullRequests)),
		slog.Time("last_updated", snap.LastUpdated))
	return nil
}

// Snapshot returns the current snapshot. The returned value is shared and
// must be treated as read-only.
func (s *Store) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Store) loadPullRequests(log *slog.Logger) ([]models.PullRequest, error) {
	path := filepath.Join(s.cfg.Dir, s.cfg.PRFile)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.cfg.PRFile, err)
	}

	prs, dropped := parsePullRequestTable(string(raw))
	if dropped > 0 {
		log.Warn("rows with malformed fields kept with defaults", slog.Int("rows", dropped))
	}

	return prs, nil
}

func (s *Store) loadSummary() (*models.MetricsSummary, error) {
	path := filepath.Join(s.cfg.Dir, s.cfg.MetricsFile)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.cfg.MetricsFile, err)
	}

	var summary models.MetricsSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.cfg.MetricsFile, err)
	}

	return &summary, nil
}

func (s *Store) loadLastUpdated() (time.Time, error) {
	path := filepath.Join(s.cfg.Dir, s.cfg.LastUpdateFile)

	raw, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("read %s: %w", s.cfg.LastUpdateFile, err)
	}

	ts, ok := parseTimestamp(strings.TrimSpace(string(raw)))
	if !ok {
		return time.Time{}, fmt.Errorf("parse %s: unrecognized timestamp %q", s.cfg.LastUpdateFile, strings.TrimSpace(string(raw)))
	}

	return ts, nil
}
