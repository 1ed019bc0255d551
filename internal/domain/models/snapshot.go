package models

// Snapshot represents one security's daily trading statistics: a single
// row of the NSE bhavcopy-style input file after numeric coercion.
//
// The seven required columns map onto the typed fields; every other column
// of the source file is carried through untouched in Extra, keyed by its
// normalized (trimmed, upper-cased) header name.
type Snapshot struct {
	Security     string            // SECURITY
	NetTradedQty float64           // NET_TRDQTY, shares traded in the session
	ClosePrice   float64           // CLOSE_PRICE
	High52Week   float64           // HI_52_WK
	LowPrice     float64           // LOW_PRICE
	HighPrice    float64           // HIGH_PRICE
	Trades       float64           // TRADES, count of trade events
	Extra        map[string]string // passthrough columns, raw cell text
}

// Candidate is a Snapshot that survived the full filter chain, enriched
// with the derived percentage fields and the composite score.
type Candidate struct {
	Snapshot
	Dist52WeekPct   float64 // DIST_52W_%: percent below the 52-week high
	DayRangePct     float64 // DAY_RANGE_%: intraday range as percent of close
	AccumulationPct float64 // ACCUMULATION_%: weighted composite in [0,100]
}

// Derived column names, as they appear in the exported CSV.
const (
	ColDist52Week   = "DIST_52W_%"
	ColDayRange     = "DAY_RANGE_%"
	ColAccumulation = "ACCUMULATION_%"
)

// StageCounts records how many rows survived each step of the pipeline.
// Counts are monotonically non-increasing from Loaded through Range.
type StageCounts struct {
	Loaded        int `json:"loaded"`        // raw rows read from the file
	Coerced       int `json:"coerced"`       // rows left after the missing-value drop
	Volume        int `json:"volume"`        // after the volume floor
	Proximity     int `json:"proximity"`     // after the 52-week-high proximity band
	Participation int `json:"participation"` // after the minimum-trades floor
	Range         int `json:"range"`         // after the day-range compression cut
}

// ScanResult is the complete outcome of one screening run.
//
// Candidates are sorted by AccumulationPct descending; ties keep the order
// in which rows survived the filter chain (i.e., source-file order).
type ScanResult struct {
	File        string      // path of the CSV that was screened
	Params      Params      // thresholds this run used
	Columns     []string    // normalized source columns, original order
	Candidates  []Candidate
	Dropped     []string    // identifiers of rows dropped during coercion
	StageCounts StageCounts
}
