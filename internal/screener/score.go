package screener

import (
	"math"

	"github.com/nsepulse/nsepulse/internal/domain/models"
)

// Sub-score caps and weights. The caps normalize absolute volume and trade
// counts into [0,1]; the weights sum to 1.0 so the composite stays within
// [0,100].
const (
	volumeCap = 10_000_000
	tradeCap  = 100_000

	weightVolume    = 0.4
	weightTrades    = 0.3
	weightProximity = 0.3
)

// scoreCandidates fills in AccumulationPct for every candidate.
//
// The proximity sub-score divides by the run's max_distance threshold, so
// the same row scores differently under a different accumulation-zone
// width. That is deliberate: the score ranks rows within one run, it is
// not an absolute scale.
func scoreCandidates(rows []models.Candidate, maxDistance float64) {
	for i := range rows {
		c := &rows[i]

		volumeScore := math.Min(c.NetTradedQty/volumeCap, 1)
		tradeScore := math.Min(c.Trades/tradeCap, 1)
		proximityScore := 1 - math.Min(c.Dist52WeekPct/maxDistance, 1)

		c.AccumulationPct = round2((volumeScore*weightVolume +
			tradeScore*weightTrades +
			proximityScore*weightProximity) * 100)
	}
}

// round2 rounds half away from zero to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
