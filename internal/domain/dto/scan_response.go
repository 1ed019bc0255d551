package dto

import "github.com/nsepulse/nsepulse/internal/domain/models"

// CandidateRow is the projected table view of one accumulation candidate:
// the fixed column subset the interactive table displays, in its fixed
// order. The full-fidelity row set (all source columns) is only available
// through the CSV export.
type CandidateRow struct {
	Security        string  `json:"security" example:"RELIANCE"`
	ClosePrice      float64 `json:"close_price" example:"95"`
	High52Week      float64 `json:"hi_52_wk" example:"100"`
	Dist52WeekPct   float64 `json:"dist_52w_pct" example:"5"`
	NetTradedQty    float64 `json:"net_trdqty" example:"3000000"`
	Trades          float64 `json:"trades" example:"15000"`
	AccumulationPct float64 `json:"accumulation_pct" example:"21.5"`
}

// ScanResponse is the JSON structure returned by GET /api/v1/scan.
type ScanResponse struct {
	File        string             `json:"file" example:"data/sec_bhavdata_full.csv"`
	Params      models.Params      `json:"params"`
	Total       int                `json:"total" example:"12"`
	DroppedRows int                `json:"dropped_rows" example:"3"`
	StageCounts models.StageCounts `json:"stage_counts"`
	Candidates  []CandidateRow     `json:"candidates"`
}

// NewScanResponse projects a ScanResult into the API shape.
func NewScanResponse(result *models.ScanResult) ScanResponse {
	rows := make([]CandidateRow, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		rows = append(rows, CandidateRow{
			Security:        c.Security,
			ClosePrice:      c.ClosePrice,
			High52Week:      c.High52Week,
			Dist52WeekPct:   c.Dist52WeekPct,
			NetTradedQty:    c.NetTradedQty,
			Trades:          c.Trades,
			AccumulationPct: c.AccumulationPct,
		})
	}
	return ScanResponse{
		File:        result.File,
		Params:      result.Params,
		Total:       len(result.Candidates),
		DroppedRows: len(result.Dropped),
		StageCounts: result.StageCounts,
		Candidates:  rows,
	}
}
