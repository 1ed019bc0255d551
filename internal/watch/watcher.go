// Package watch re-runs the screen whenever the input CSV changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/nsepulse/nsepulse/internal/domain/models"
	"github.com/nsepulse/nsepulse/internal/logger"
	"github.com/nsepulse/nsepulse/internal/service"
)

// debounceDelay coalesces the burst of events a single file save produces.
const debounceDelay = 500 * time.Millisecond

// Watcher monitors a data directory and triggers a default-parameter scan
// whenever a CSV file in it is written or created. Each trigger re-reads
// the file from scratch; the watcher holds no dataset state.
type Watcher struct {
	dir string
	svc service.ScanService

	// onResult is called after each triggered scan; tests hook it.
	// Defaults to a log line with the candidate count.
	onResult func(*models.ScanResult, error)
}

// New constructs a Watcher over dir.
func New(dir string, svc service.ScanService) *Watcher {
	return &Watcher{dir: dir, svc: svc}
}

// Run watches the directory until ctx is cancelled. A scan failure is
// logged and watching continues; only watcher-level failures (e.g. the
// directory disappearing at startup) end the loop with an error.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	log := logger.With("watcher")
	log.Info().Str("dir", w.dir).Msg("watching for csv changes")

	// A nil channel blocks forever; the timer channel only becomes live
	// after a relevant event, debouncing save bursts.
	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			// Editors often save via rename (atomic replace), so catch
			// Create as well as Write.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".csv") {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
			} else {
				debounce.Reset(debounceDelay)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			w.rescan(ctx, log)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}

// rescan runs one default-parameter scan and reports the outcome.
func (w *Watcher) rescan(ctx context.Context, log zerolog.Logger) {
	result, err := w.svc.Scan(ctx, models.DefaultParams())
	if w.onResult != nil {
		w.onResult(result, err)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("rescan failed")
		return
	}
	log.Info().
		Str("file", result.File).
		Int("candidates", len(result.Candidates)).
		Int("dropped", len(result.Dropped)).
		Msg("input changed, rescan complete")
}
