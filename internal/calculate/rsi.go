package calculate

import "github.com/finsight/ta-engine/internal/model"

// RSI computes the Relative Strength Index over the last period close-to-close
// changes, scanning backward from the newest candle. An average loss of zero
// is treated as 1 to keep the ratio finite on one-way series.
func RSI(closes []float64, period int, variant model.Variant) model.RSIResult {
	if len(closes) < period+1 {
		return model.RSIResult{Value: 50, SignalStrength: model.Neutral()}
	}

	var gains, losses float64
	for i := len(closes) - 1; i > len(closes)-1-period; i-- {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)
	if avgLoss == 0 {
		avgLoss = 1
	}

	rs := avgGain / avgLoss
	value := 100 - 100/(1+rs)

	res := model.RSIResult{Value: value, SignalStrength: model.Neutral()}
	switch {
	case value < 30:
		res.Signal = model.SignalUp
		res.Strength = oversoldStrength(30-value, variant)
	case value > 70:
		res.Signal = model.SignalDown
		res.Strength = oversoldStrength(value-70, variant)
	case value >= 55:
		res.Signal = model.SignalUp
		res.Strength = 60
	case value <= 45:
		res.Signal = model.SignalDown
		res.Strength = 60
	}
	return res
}

// oversoldStrength scales the extreme-zone strength by how far past the band
// the value sits in the extended engine; the simple engine pins it at 85.
func oversoldStrength(distance float64, variant model.Variant) int {
	if variant == model.EngineV2 {
		return clampStrength(85 + distance)
	}
	return 85
}
