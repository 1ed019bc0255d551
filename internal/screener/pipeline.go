// Package screener implements the accumulation screen: column validation,
// numeric coercion, the four-stage filter chain, and composite scoring.
//
// The pipeline is a pure, single-pass transformation of one Dataset. Every
// run recomputes everything from the raw rows; nothing is cached or
// mutated across runs.
package screener

import (
	"sort"
	"time"

	"github.com/nsepulse/nsepulse/internal/domain/models"
	"github.com/nsepulse/nsepulse/internal/ingestion"
	"github.com/nsepulse/nsepulse/internal/logger"
)

// Pipeline screens one dataset with a fixed set of thresholds.
// Construct with New, which validates the thresholds up front.
type Pipeline struct {
	params models.Params
}

// New returns a Pipeline for the given thresholds, or the validation error
// if any threshold is out of its documented range.
func New(params models.Params) (*Pipeline, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{params: params}, nil
}

// Run executes the full screen against ds:
//
//	validate columns → coerce rows → volume → proximity → participation →
//	range compression → score → stable sort by score descending
//
// The returned ScanResult carries the surviving candidates, the
// identifiers of rows silently dropped during coercion, and per-stage
// surviving counts. The only error is a *MissingColumnError from header
// validation; everything after that is total.
func (p *Pipeline) Run(ds *ingestion.Dataset) (*models.ScanResult, error) {
	start := time.Now()

	pos, err := columnIndex(ds)
	if err != nil {
		return nil, err
	}

	rows, dropped := coerceRows(ds, pos)

	counts := models.StageCounts{
		Loaded:  len(ds.Rows),
		Coerced: len(rows),
	}

	maxDistance := float64(p.params.MaxDistancePct)

	byVolume := volumeStage(rows, p.params.VolumeFloor())
	counts.Volume = len(byVolume)

	inZone := proximityStage(byVolume, maxDistance)
	counts.Proximity = len(inZone)

	active := participationStage(inZone, float64(p.params.MinTrades))
	counts.Participation = len(active)

	compressed := rangeStage(active)
	counts.Range = len(compressed)

	scoreCandidates(compressed, maxDistance)

	// Stable: ties keep the order rows survived the chain, which is
	// source-file order.
	sort.SliceStable(compressed, func(i, j int) bool {
		return compressed[i].AccumulationPct > compressed[j].AccumulationPct
	})

	logger.L().Debug().
		Str("file", ds.Path).
		Int("loaded", counts.Loaded).
		Int("dropped", len(dropped)).
		Int("candidates", counts.Range).
		Dur("elapsed", time.Since(start)).
		Msg("screen complete")

	return &models.ScanResult{
		File:        ds.Path,
		Params:      p.params,
		Columns:     append([]string(nil), ds.Columns...),
		Candidates:  compressed,
		Dropped:     dropped,
		StageCounts: counts,
	}, nil
}
