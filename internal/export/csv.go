// Package export renders a ScanResult as the downloadable results CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/nsepulse/nsepulse/internal/domain/models"
)

// FileName is the canonical name of the exported results file.
const FileName = "accumulation_results.csv"

// Render serializes the filtered, scored rows as UTF-8 CSV with a header
// row: every source column in its original order, followed by the three
// derived columns. This is the full-fidelity export; extra source columns
// survive untouched, unlike the projected table view.
func Render(result *models.ScanResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append(append([]string(nil), result.Columns...),
		models.ColDist52Week, models.ColDayRange, models.ColAccumulation)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, c := range result.Candidates {
		rec := make([]string, 0, len(header))
		for _, col := range result.Columns {
			rec = append(rec, cellFor(c, col))
		}
		rec = append(rec,
			formatFloat(c.Dist52WeekPct),
			formatFloat(c.DayRangePct),
			formatFloat(c.AccumulationPct),
		)
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write row %s: %w", c.Security, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	return buf.Bytes(), nil
}

// cellFor maps one output column to its value: required columns come from
// the typed fields (post-coercion), everything else from the passthrough
// map.
func cellFor(c models.Candidate, col string) string {
	switch col {
	case "SECURITY":
		return c.Security
	case "NET_TRDQTY":
		return formatFloat(c.NetTradedQty)
	case "CLOSE_PRICE":
		return formatFloat(c.ClosePrice)
	case "HI_52_WK":
		return formatFloat(c.High52Week)
	case "LOW_PRICE":
		return formatFloat(c.LowPrice)
	case "HIGH_PRICE":
		return formatFloat(c.HighPrice)
	case "TRADES":
		return formatFloat(c.Trades)
	default:
		return c.Extra[col]
	}
}

// formatFloat prints the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
