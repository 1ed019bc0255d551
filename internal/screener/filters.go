package screener

import "github.com/nsepulse/nsepulse/internal/domain/models"

// Fixed filter constants. Neither is user-adjustable.
const (
	// breakoutFloorPct excludes names at or above their 52-week high:
	// those have already broken out and are no longer accumulating.
	breakoutFloorPct = 0.5

	// maxDayRangePct is the range-compression ceiling; a wider intraday
	// range signals a volatile move rather than controlled accumulation.
	maxDayRangePct = 5.0
)

// volumeStage keeps rows trading strictly more than the volume floor.
func volumeStage(in []models.Snapshot, floor float64) []models.Snapshot {
	out := in[:0:0]
	for _, s := range in {
		if s.NetTradedQty > floor {
			out = append(out, s)
		}
	}
	return out
}

// proximityStage derives DIST_52W_% and keeps rows sitting in the
// accumulation band (breakoutFloorPct, maxDistance] below their 52-week
// high. The coercer guarantees High52Week > 0.
func proximityStage(in []models.Snapshot, maxDistance float64) []models.Candidate {
	var out []models.Candidate
	for _, s := range in {
		dist := (s.High52Week - s.ClosePrice) / s.High52Week * 100
		if dist > breakoutFloorPct && dist <= maxDistance {
			out = append(out, models.Candidate{Snapshot: s, Dist52WeekPct: dist})
		}
	}
	return out
}

// participationStage keeps rows with strictly more than minTrades trade
// events.
func participationStage(in []models.Candidate, minTrades float64) []models.Candidate {
	out := in[:0:0]
	for _, c := range in {
		if c.Trades > minTrades {
			out = append(out, c)
		}
	}
	return out
}

// rangeStage derives DAY_RANGE_% and keeps rows whose intraday range stays
// under the compression ceiling. The coercer guarantees ClosePrice > 0.
func rangeStage(in []models.Candidate) []models.Candidate {
	out := in[:0:0]
	for i := range in {
		c := in[i]
		c.DayRangePct = (c.HighPrice - c.LowPrice) / c.ClosePrice * 100
		if c.DayRangePct < maxDayRangePct {
			out = append(out, c)
		}
	}
	return out
}
