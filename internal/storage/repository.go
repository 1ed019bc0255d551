package storage

import (
	"database/sql"

	"github.com/nsepulse/nsepulse/internal/domain/models"
)

// ScanRunRepository defines the contract for the scan_log audit table.
//
// The screen itself never depends on the database; persistence here is an
// audit trail of runs, recorded best-effort after the result is computed.
type ScanRunRepository interface {
	InsertScanRun(run models.ScanRun) error
	RecentScanRuns(limit int) ([]models.ScanRun, error)
}

type scanRunRepository struct {
	db *sql.DB
}

func NewScanRunRepository(db *sql.DB) ScanRunRepository {
	return &scanRunRepository{db: db}
}

// InsertScanRun records one completed screening run.
func (r *scanRunRepository) InsertScanRun(run models.ScanRun) error {
	_, err := r.db.Exec(`
		INSERT INTO scan_log (
			filename,
			min_volume_lakhs, max_distance_pct, min_trades,
			rows_loaded, rows_dropped, candidates
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		run.Filename,
		run.Params.MinVolumeLakhs,
		run.Params.MaxDistancePct,
		run.Params.MinTrades,
		run.RowsLoaded,
		run.RowsDropped,
		run.Candidates,
	)
	return err
}

// RecentScanRuns returns up to limit runs, most recent first.
func (r *scanRunRepository) RecentScanRuns(limit int) ([]models.ScanRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT id, filename,
		       min_volume_lakhs, max_distance_pct, min_trades,
		       rows_loaded, rows_dropped, candidates, scanned_at
		FROM scan_log
		ORDER BY scanned_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.ScanRun
	for rows.Next() {
		var run models.ScanRun
		if err := rows.Scan(
			&run.ID,
			&run.Filename,
			&run.Params.MinVolumeLakhs,
			&run.Params.MaxDistancePct,
			&run.Params.MinTrades,
			&run.RowsLoaded,
			&run.RowsDropped,
			&run.Candidates,
			&run.ScannedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}
