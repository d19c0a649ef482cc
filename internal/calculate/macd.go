package calculate

import "github.com/finsight/ta-engine/internal/model"

// MACD is the EMA12-EMA26 difference. The histogram is reported equal to the
// value because no separate signal-line EMA is computed — a simplification
// preserved for output parity.
func MACD(ema12, ema26 float64) model.MACDResult {
	value := ema12 - ema26
	res := model.MACDResult{
		Value:          value,
		Histogram:      value,
		SignalStrength: model.Neutral(),
	}
	switch {
	case value > 0:
		res.Signal = model.SignalUp
		res.Strength = 65
	case value < 0:
		res.Signal = model.SignalDown
		res.Strength = 65
	}
	return res
}
