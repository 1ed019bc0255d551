package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/nsepulse/nsepulse/internal/domain/models"
)

func sampleResult() *models.ScanResult {
	return &models.ScanResult{
		File:    "data/test.csv",
		Params:  models.DefaultParams(),
		Columns: []string{"SECURITY", "SERIES", "NET_TRDQTY", "CLOSE_PRICE", "HI_52_WK", "LOW_PRICE", "HIGH_PRICE", "TRADES"},
		Candidates: []models.Candidate{
			{
				Snapshot: models.Snapshot{
					Security:     "FOO",
					NetTradedQty: 3000000,
					ClosePrice:   95,
					High52Week:   100,
					LowPrice:     93,
					HighPrice:    96,
					Trades:       15000,
					Extra:        map[string]string{"SERIES": "EQ"},
				},
				Dist52WeekPct:   5,
				DayRangePct:     3.16,
				AccumulationPct: 21.5,
			},
			{
				Snapshot: models.Snapshot{
					Security:     "BAR",
					NetTradedQty: 2500000,
					ClosePrice:   94,
					High52Week:   100,
					LowPrice:     93.5,
					HighPrice:    94.5,
					Trades:       12000,
					Extra:        map[string]string{"SERIES": "BE"},
				},
				Dist52WeekPct:   6,
				DayRangePct:     1.06,
				AccumulationPct: 13.6,
			},
		},
	}
}

func TestRender_Layout(t *testing.T) {
	payload, err := Render(sampleResult())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("want header + 2 rows, got %d records", len(records))
	}

	header := records[0]
	if len(header) != 11 {
		t.Fatalf("want 11 columns, got %d: %v", len(header), header)
	}
	// source columns first, derived columns appended in order
	if header[0] != "SECURITY" || header[1] != "SERIES" {
		t.Fatalf("source columns reordered: %v", header)
	}
	if header[8] != models.ColDist52Week || header[9] != models.ColDayRange || header[10] != models.ColAccumulation {
		t.Fatalf("derived columns wrong: %v", header)
	}

	foo := records[1]
	if foo[0] != "FOO" || foo[1] != "EQ" {
		t.Fatalf("passthrough lost: %v", foo)
	}
	if foo[2] != "3000000" || foo[10] != "21.5" {
		t.Fatalf("numeric formatting: %v", foo)
	}
}

// The exported CSV, re-parsed, reproduces the same row count and the same
// ACCUMULATION_% values as the in-memory result.
func TestRender_RoundTrip(t *testing.T) {
	result := sampleResult()

	payload, err := Render(result)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	rows := records[1:]
	if len(rows) != len(result.Candidates) {
		t.Fatalf("row count: want %d got %d", len(result.Candidates), len(rows))
	}

	scoreCol := len(records[0]) - 1
	for i, rec := range rows {
		got, err := strconv.ParseFloat(rec[scoreCol], 64)
		if err != nil {
			t.Fatalf("row %d: parse score: %v", i, err)
		}
		if got != result.Candidates[i].AccumulationPct {
			t.Fatalf("row %d: score want %v got %v", i, result.Candidates[i].AccumulationPct, got)
		}
	}
}

func TestRender_EmptyResult(t *testing.T) {
	result := &models.ScanResult{
		Columns: []string{"SECURITY", "NET_TRDQTY", "CLOSE_PRICE", "HI_52_WK", "LOW_PRICE", "HIGH_PRICE", "TRADES"},
	}

	payload, err := Render(result)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("want header only, got %d records", len(records))
	}
}
