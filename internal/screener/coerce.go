package screener

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nsepulse/nsepulse/internal/domain/models"
	"github.com/nsepulse/nsepulse/internal/ingestion"
)

// parseCell attempts to read one raw cell as a finite number.
//
// Tolerated: surrounding whitespace and Indian/Western thousands separators
// ("3,000,000"). Rejected (→ missing): empty cells, non-numeric text, and
// values that parse to NaN or ±Inf.
func parseCell(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// coerceRows converts raw dataset rows into typed Snapshots.
//
// A row is dropped silently, never fatally, when:
//   - any cell in the row is blank (the blanket missing-value drop covers
//     every column, not just the numeric ones), or
//   - a required numeric cell fails to parse, or
//   - HI_52_WK or CLOSE_PRICE is not strictly positive. A degenerate price
//     fails the row exactly like an unparseable cell, so every later
//     percentage is total.
//
// Dropped rows are identified by their SECURITY value (or "row N" when
// that cell itself is blank) so callers and tests can observe the loss
// even though it is never fatal.
func coerceRows(ds *ingestion.Dataset, pos map[string]int) (rows []models.Snapshot, dropped []string) {
	required := make(map[int]bool, len(RequiredColumns))
	for _, c := range RequiredColumns {
		required[pos[c]] = true
	}

	for n, rec := range ds.Rows {
		id := strings.TrimSpace(rec[pos["SECURITY"]])
		if id == "" {
			id = fmt.Sprintf("row %d", n+1)
		}

		if rowHasBlank(rec) {
			dropped = append(dropped, id)
			continue
		}

		snap := models.Snapshot{Security: id}
		ok := true
		for _, c := range numericColumns {
			v, parsed := parseCell(rec[pos[c]])
			if !parsed {
				ok = false
				break
			}
			switch c {
			case "NET_TRDQTY":
				snap.NetTradedQty = v
			case "CLOSE_PRICE":
				snap.ClosePrice = v
			case "HI_52_WK":
				snap.High52Week = v
			case "LOW_PRICE":
				snap.LowPrice = v
			case "HIGH_PRICE":
				snap.HighPrice = v
			case "TRADES":
				snap.Trades = v
			}
		}
		if !ok || snap.High52Week <= 0 || snap.ClosePrice <= 0 {
			dropped = append(dropped, id)
			continue
		}

		// Carry every non-required column through untouched.
		for i, c := range ds.Columns {
			if required[i] {
				continue
			}
			if snap.Extra == nil {
				snap.Extra = make(map[string]string)
			}
			snap.Extra[c] = rec[i]
		}

		rows = append(rows, snap)
	}
	return rows, dropped
}

func rowHasBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) == "" {
			return true
		}
	}
	return false
}
