package main

//
//  @title           nsepulse API
//  @version         1.0
//  @description     NSE pre-breakout accumulation screening service.
//  @termsOfService  https://github.com/nsepulse/nsepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/nsepulse/nsepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        scan
//  @tag.description Endpoints for running and exporting the accumulation screen
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nsepulse/nsepulse/config"
	_ "github.com/nsepulse/nsepulse/docs" // swagger docs
	"github.com/nsepulse/nsepulse/internal/app"
	"github.com/nsepulse/nsepulse/internal/domain/models"
	"github.com/nsepulse/nsepulse/internal/export"
	"github.com/nsepulse/nsepulse/internal/logger"
	"github.com/nsepulse/nsepulse/internal/service"
	"github.com/nsepulse/nsepulse/internal/watch"
)

// runScan executes one screen and writes the results CSV.
//
// Parameters:
//   - dir/file: input location (explicit file wins over directory scan).
//   - out:     output path for the full-fidelity CSV.
//   - params:  the three screening thresholds.
func runScan(ctx context.Context, dir, file, out string, params models.Params) error {
	svc := service.NewScanService(dir, file, nil)

	result, err := svc.Scan(ctx, params)
	if err != nil {
		return err
	}

	logger.L().Info().
		Str("file", result.File).
		Int("loaded", result.StageCounts.Loaded).
		Int("dropped", len(result.Dropped)).
		Int("candidates", len(result.Candidates)).
		Msg("scan complete")

	payload, err := export.Render(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, payload, 0o644); err != nil {
		return err
	}

	logger.L().Info().Str("output", out).Msg("results written")
	return nil
}

// runAPI starts the HTTP server and the data-directory watcher, and keeps
// both running until an OS interrupt (SIGINT, SIGTERM) or a fatal error in
// either.
func runAPI(port string) error {
	router, svc, cleanup, err := app.InitializeApp()
	if err != nil {
		return err
	}
	defer cleanup()

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return watch.New(config.AppConfig.Scanner.DataDir, svc).Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.L().Info().Msg("server exited gracefully")
	return nil
}

// main is the entry point of the nsepulse application.
//
// Modes (selected via --mode flag):
//   - scan: Screens the input CSV once and writes accumulation_results.csv.
//   - api:  Starts the REST API exposing the screen over HTTP.
//
// Flags:
//   - --mode:         Execution mode ("scan" or "api"). Default: "scan".
//   - --dir:          Directory scanned for the first .csv file.
//   - --file:         Explicit input CSV path (overrides --dir).
//   - --out:          Output path for the results CSV in scan mode.
//   - --min-volume:   Volume floor in lakhs (1-500).
//   - --max-distance: Accumulation-zone width in percent (2-15).
//   - --min-trades:   Trade-count floor (1000-500000).
//   - --port:         Port for API mode. Defaults to SERVER_PORT.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	defaults := models.DefaultParams()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "scan", "Mode: scan or api")
	dir := flag.String("dir", config.AppConfig.Scanner.DataDir, "Directory scanned for the first .csv file")
	file := flag.String("file", config.AppConfig.Scanner.File, "Explicit input CSV path (overrides --dir)")
	out := flag.String("out", config.AppConfig.Scanner.OutputFile, "Output path for the results CSV")
	minVolume := flag.Int("min-volume", defaults.MinVolumeLakhs, "Minimum volume in lakhs (1-500)")
	maxDistance := flag.Int("max-distance", defaults.MaxDistancePct, "Max % below 52-week high (2-15)")
	minTrades := flag.Int("min-trades", defaults.MinTrades, "Minimum trade count (1000-500000)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "scan":
		params := models.Params{
			MinVolumeLakhs: *minVolume,
			MaxDistancePct: *maxDistance,
			MinTrades:      *minTrades,
		}
		if err := runScan(ctx, *dir, *file, *out, params); err != nil {
			logger.L().Fatal().Err(err).Msg("scan failed")
		}

	case "api":
		logger.L().Info().Msg("starting API server")
		if err := runAPI(*port); err != nil {
			logger.L().Fatal().Err(err).Msg("server failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
