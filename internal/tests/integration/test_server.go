package integration

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"pr-analytics-dashboard/internal/config"
	v1 "pr-analytics-dashboard/internal/http/v1"
	"pr-analytics-dashboard/internal/service"
	"pr-analytics-dashboard/internal/storage/datastore"
)

type TestServer struct {
	DataDir string
	Store   *datastore.Store
	Server  *httptest.Server
}

// NewTestServer wires the real datastore, service and routers over a
// temporary data directory, the way the app does at startup.
func NewTestServer(dataDir string) (*TestServer, error) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	dataCfg := config.DataConfig{
		Dir:            dataDir,
		PRFile:         "pr_data.csv",
		MetricsFile:    "metrics.json",
		LastUpdateFile: "last_update.txt",
	}
	dashboardCfg := config.DashboardConfig{
		TableLimit:  15,
		TopAuthors:  10,
		MarkerLabel: "data contract",
	}

	store := datastore.New(log, dataCfg)
	dashboardService := service.NewDashboardService(log, store, dashboardCfg)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		v1.SetupRoutes(r, &v1.RouterDependencies{
			DashboardService: dashboardService,
			Reloader:         store,
		}, log)
	})

	return &TestServer{
		DataDir: dataDir,
		Store:   store,
		Server:  httptest.NewServer(r),
	}, nil
}

func (s *TestServer) Close() {
	s.Server.Close()
}

// LoadFixtures writes a small but representative data directory and loads it.
func (s *TestServer) LoadFixtures() error {
	table := `number,title,author,state,is_merged,created_at,merge_time_hours,review_comments,labels,has_data_contract_label
101,"Fix, the parser",alice,closed,True,2026-08-20T10:00:00,5.0,2,"['bug']",False
102,Add contract checks,bob,open,False,2026-08-01T10:00:00,,1,"['data contract']",True
103,Old cleanup,alice,closed,False,2025-01-10T10:00:00,,0,,False
104,Slow merge,carol,closed,True,2026-06-15T10:00:00,300.0,4,,False
`
	metrics := `{
  "total_prs": 4,
  "merged_prs": 2,
  "merge_rate": 50.0,
  "avg_merge_time_hours": 152.5,
  "fast_merge_rate": 50.0,
  "active_authors": 3,
  "review_coverage": 75.0,
  "data_contract_prs": 1,
  "last_updated": "2026-08-25T08:00:00+00:00"
}`

	files := map[string]string{
		"pr_data.csv":     table,
		"metrics.json":    metrics,
		"last_update.txt": "2026-08-25T08:00:00+00:00\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(s.DataDir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("write fixture %s: %w", name, err)
		}
	}

	return s.Store.Load()
}

func doGet(t *testing.T, ts *TestServer, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.Server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func doPost(t *testing.T, ts *TestServer, path string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.Server.URL+path, "application/json", nil)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}
