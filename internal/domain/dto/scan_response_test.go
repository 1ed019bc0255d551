package dto

import (
	"testing"

	"github.com/nsepulse/nsepulse/internal/domain/models"
)

func TestNewScanResponse_Projection(t *testing.T) {
	result := &models.ScanResult{
		File:   "data/sec_bhavdata_full.csv",
		Params: models.DefaultParams(),
		Candidates: []models.Candidate{
			{
				Snapshot: models.Snapshot{
					Security:     "RELIANCE",
					ClosePrice:   95,
					High52Week:   100,
					NetTradedQty: 3_000_000,
					Trades:       15_000,
					Extra:        map[string]string{"SERIES": "EQ"},
				},
				Dist52WeekPct:   5,
				DayRangePct:     2.1,
				AccumulationPct: 21.5,
			},
		},
		Dropped:     []string{"BADROW", "row 7"},
		StageCounts: models.StageCounts{Loaded: 10, Coerced: 8, Volume: 4, Proximity: 3, Participation: 2, Range: 1},
	}

	resp := NewScanResponse(result)

	if resp.File != result.File {
		t.Fatalf("file=%q", resp.File)
	}
	if resp.Total != 1 || resp.DroppedRows != 2 {
		t.Fatalf("total=%d dropped=%d", resp.Total, resp.DroppedRows)
	}
	if resp.StageCounts != result.StageCounts {
		t.Fatalf("stage counts not carried over: %+v", resp.StageCounts)
	}
	row := resp.Candidates[0]
	if row.Security != "RELIANCE" || row.AccumulationPct != 21.5 || row.Dist52WeekPct != 5 {
		t.Fatalf("unexpected row %+v", row)
	}
}

func TestNewScanResponse_Empty(t *testing.T) {
	resp := NewScanResponse(&models.ScanResult{Params: models.DefaultParams()})
	if resp.Total != 0 || resp.DroppedRows != 0 {
		t.Fatalf("expected empty response, got %+v", resp)
	}
	if resp.Candidates == nil {
		t.Fatalf("candidates should marshal as [] not null")
	}
}
