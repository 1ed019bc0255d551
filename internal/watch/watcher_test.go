package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nsepulse/nsepulse/internal/domain/models"
)

type stubScanService struct {
	calls  atomic.Int64
	result *models.ScanResult
	err    error
}

func (s *stubScanService) Scan(ctx context.Context, params models.Params) (*models.ScanResult, error) {
	s.calls.Add(1)
	return s.result, s.err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestWatcher_RescanOnCSVWrite(t *testing.T) {
	dir := t.TempDir()
	svc := &stubScanService{result: &models.ScanResult{File: "x.csv", Params: models.DefaultParams()}}

	got := make(chan *models.ScanResult, 1)
	w := New(dir, svc)
	w.onResult = func(r *models.ScanResult, err error) {
		if err != nil {
			t.Errorf("unexpected scan error: %v", err)
		}
		select {
		case got <- r:
		default:
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before producing events.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "bhav.csv"), "SECURITY\nFOO\n")

	select {
	case r := <-got:
		if r.File != "x.csv" {
			t.Fatalf("unexpected result %+v", r)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("rescan never fired")
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v after cancel", err)
	}
}

func TestWatcher_IgnoresNonCSV(t *testing.T) {
	dir := t.TempDir()
	svc := &stubScanService{result: &models.ScanResult{Params: models.DefaultParams()}}

	w := New(dir, svc)
	w.onResult = func(*models.ScanResult, error) {}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	// Longer than the debounce window; no scan should have run.
	time.Sleep(debounceDelay + 500*time.Millisecond)
	if n := svc.calls.Load(); n != 0 {
		t.Fatalf("expected no scans for non-csv writes, got %d", n)
	}

	cancel()
	<-done
}

func TestWatcher_DebouncesSaveBurst(t *testing.T) {
	dir := t.TempDir()
	svc := &stubScanService{result: &models.ScanResult{Params: models.DefaultParams()}}

	fired := make(chan struct{}, 8)
	w := New(dir, svc)
	w.onResult = func(*models.ScanResult, error) { fired <- struct{}{} }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	path := filepath.Join(dir, "bhav.csv")
	for i := 0; i < 5; i++ {
		writeFile(t, path, "SECURITY\nFOO\n")
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatalf("debounced rescan never fired")
	}
	// The burst must collapse into a single scan.
	time.Sleep(debounceDelay + 200*time.Millisecond)
	if n := svc.calls.Load(); n != 1 {
		t.Fatalf("expected 1 scan for the burst, got %d", n)
	}

	cancel()
	<-done
}

func TestWatcher_ScanErrorKeepsWatching(t *testing.T) {
	dir := t.TempDir()
	svc := &stubScanService{err: errors.New("boom")}

	errs := make(chan error, 2)
	w := New(dir, svc)
	w.onResult = func(_ *models.ScanResult, err error) { errs <- err }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "bhav.csv"), "x")

	select {
	case err := <-errs:
		if err == nil {
			t.Fatalf("expected scan error to reach the hook")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("rescan never fired")
	}

	// The loop must survive the failure and pick up the next write.
	writeFile(t, filepath.Join(dir, "bhav.csv"), "y")
	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher stopped after a scan failure")
	}

	cancel()
	<-done
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope"), &stubScanService{})
	if err := w.Run(context.Background()); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
