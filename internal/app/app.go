package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/nsepulse/nsepulse/config"
	"github.com/nsepulse/nsepulse/internal/api"
	"github.com/nsepulse/nsepulse/internal/service"
	"github.com/nsepulse/nsepulse/internal/storage"
)

// InitializeApp wires the API-mode dependency graph and returns the
// configured router plus a cleanup function for shutdown.
//
// Responsibilities:
//   - Connects to PostgreSQL when the scan log is enabled (and only then).
//   - Builds the scan service over the configured data directory.
//   - Configures the Gin router with all scan routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured HTTP router.
//   - service.ScanService: the wired scan service (shared with the watcher).
//   - func(): cleanup to be executed on shutdown.
//   - error: any initialization error.
func InitializeApp() (*gin.Engine, service.ScanService, func(), error) {
	cfg := config.AppConfig

	var (
		repo    storage.ScanRunRepository
		dbPing  func() error
		cleanup = func() {}
	)

	if cfg.ScanLog.Enabled {
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		repo = storage.NewScanRunRepository(db)
		dbPing = db.Ping
		cleanup = func() { _ = db.Close() }
	}

	svc := service.NewScanService(cfg.Scanner.DataDir, cfg.Scanner.File, repo)

	handler := api.NewHandler(svc, repo)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(dbPing)
	healthHandler.Register(router)

	return router, svc, cleanup, nil
}
