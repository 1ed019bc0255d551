package service

import (
	"context"

	"github.com/nsepulse/nsepulse/internal/domain/models"
	"github.com/nsepulse/nsepulse/internal/ingestion"
	"github.com/nsepulse/nsepulse/internal/logger"
	"github.com/nsepulse/nsepulse/internal/screener"
	"github.com/nsepulse/nsepulse/internal/storage"
)

// ScanService runs the accumulation screen end to end: locate the input
// CSV, load it, run the pipeline, optionally record the run.
type ScanService interface {
	Scan(ctx context.Context, params models.Params) (*models.ScanResult, error)
}

type scanService struct {
	dir  string                    // directory scanned for the first *.csv
	file string                    // explicit file path; overrides dir when set
	repo storage.ScanRunRepository // nil when the scan log is disabled
}

// NewScanService builds a ScanService.
//
// Parameters:
//   - dir:  data directory to discover the input CSV in.
//   - file: explicit CSV path; when non-empty, discovery is skipped.
//   - repo: scan-log repository, or nil to disable run auditing.
func NewScanService(dir, file string, repo storage.ScanRunRepository) ScanService {
	return &scanService{dir: dir, file: file, repo: repo}
}

// Scan reads the input file fresh and screens it with params. Every call
// recomputes the full result; nothing is cached between calls.
//
// Errors: ingestion.ErrNoInputFile (wrapped), file read errors, threshold
// validation errors, or *screener.MissingColumnError. A scan-log write
// failure is logged and swallowed; auditing never fails a scan.
func (s *scanService) Scan(ctx context.Context, params models.Params) (*models.ScanResult, error) {
	pipe, err := screener.New(params)
	if err != nil {
		return nil, err
	}

	var ds *ingestion.Dataset
	if s.file != "" {
		ds, err = ingestion.LoadFile(ctx, s.file)
	} else {
		ds, err = ingestion.Load(ctx, s.dir)
	}
	if err != nil {
		return nil, err
	}

	result, err := pipe.Run(ds)
	if err != nil {
		return nil, err
	}

	if s.repo != nil {
		run := models.ScanRun{
			Filename:    result.File,
			Params:      result.Params,
			RowsLoaded:  result.StageCounts.Loaded,
			RowsDropped: len(result.Dropped),
			Candidates:  len(result.Candidates),
		}
		if err := s.repo.InsertScanRun(run); err != nil {
			logger.L().Warn().Err(err).Str("file", result.File).Msg("scan log write failed")
		}
	}

	return result, nil
}
