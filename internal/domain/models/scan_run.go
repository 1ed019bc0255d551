package models

import "time"

// ScanRun is one audit entry in the scan_log table: which file was
// screened, with which thresholds, and how the row counts came out.
type ScanRun struct {
	ID          int64     `json:"id"`
	Filename    string    `json:"filename"`
	Params      Params    `json:"params"`
	RowsLoaded  int       `json:"rows_loaded"`
	RowsDropped int       `json:"rows_dropped"`
	Candidates  int       `json:"candidates"`
	ScannedAt   time.Time `json:"scanned_at"`
}
