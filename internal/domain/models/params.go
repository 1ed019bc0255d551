package models

import "fmt"

// Threshold bounds and defaults for the three user-adjustable controls.
const (
	MinVolumeLower   = 1
	MinVolumeUpper   = 500
	MinVolumeDefault = 20

	MaxDistanceLower   = 2
	MaxDistanceUpper   = 15
	MaxDistanceDefault = 6

	MinTradesLower   = 1000
	MinTradesUpper   = 500000
	MinTradesDefault = 10000
)

// lakh is the volume threshold unit (100,000 shares).
const lakh = 100000

// Params holds the three screening thresholds.
//
// Fields:
//   - MinVolumeLakhs: volume floor in lakhs; a row must trade more than
//     MinVolumeLakhs×100,000 shares to pass the volume stage.
//   - MaxDistancePct: width of the accumulation zone below the 52-week
//     high, in percent. Also the denominator of the proximity sub-score.
//   - MinTrades: minimum number of trade events (exclusive floor).
type Params struct {
	MinVolumeLakhs int `json:"min_volume" example:"20"`
	MaxDistancePct int `json:"max_distance" example:"6"`
	MinTrades      int `json:"min_trades" example:"10000"`
}

// DefaultParams returns the screening defaults (20 lakhs, 6%, 10000 trades).
func DefaultParams() Params {
	return Params{
		MinVolumeLakhs: MinVolumeDefault,
		MaxDistancePct: MaxDistanceDefault,
		MinTrades:      MinTradesDefault,
	}
}

// ValidationError reports a threshold outside its documented range.
type ValidationError struct {
	Param string // query/flag name of the offending control
	msg   string
}

func (e *ValidationError) Error() string { return e.msg }

func rangeError(param string, lower, upper, got int) *ValidationError {
	return &ValidationError{
		Param: param,
		msg:   fmt.Sprintf("%s must be between %d and %d, got %d", param, lower, upper, got),
	}
}

// Validate checks every threshold against its documented range and returns
// a *ValidationError naming the first out-of-range control.
func (p Params) Validate() error {
	if p.MinVolumeLakhs < MinVolumeLower || p.MinVolumeLakhs > MinVolumeUpper {
		return rangeError("min_volume", MinVolumeLower, MinVolumeUpper, p.MinVolumeLakhs)
	}
	if p.MaxDistancePct < MaxDistanceLower || p.MaxDistancePct > MaxDistanceUpper {
		return rangeError("max_distance", MaxDistanceLower, MaxDistanceUpper, p.MaxDistancePct)
	}
	if p.MinTrades < MinTradesLower || p.MinTrades > MinTradesUpper {
		return rangeError("min_trades", MinTradesLower, MinTradesUpper, p.MinTrades)
	}
	return nil
}

// VolumeFloor converts the lakh-denominated threshold to a share count.
func (p Params) VolumeFloor() float64 {
	return float64(p.MinVolumeLakhs) * lakh
}
