package calculate

import "github.com/finsight/ta-engine/internal/model"

// Stochastic computes %K over the trailing period window. %D is reported
// equal to %K: this engine never applied the textbook 3-period smoothing and
// the output contract preserves that.
func Stochastic(closes, highs, lows []float64, period int, variant model.Variant) model.StochasticResult {
	if len(closes) < period || len(highs) < period || len(lows) < period {
		return model.StochasticResult{K: 50, D: 50, SignalStrength: model.Neutral()}
	}

	highest := highs[len(highs)-period]
	lowest := lows[len(lows)-period]
	for i := len(highs) - period + 1; i < len(highs); i++ {
		if highs[i] > highest {
			highest = highs[i]
		}
		if lows[i] < lowest {
			lowest = lows[i]
		}
	}

	// Flat window: no range to position the close in, report midpoint.
	k := 50.0
	if highest > lowest {
		k = (closes[len(closes)-1] - lowest) / (highest - lowest) * 100
	}

	strength := 80
	if variant == model.EngineV2 {
		strength = 90
	}

	res := model.StochasticResult{K: k, D: k, SignalStrength: model.Neutral()}
	switch {
	case k < 20:
		res.Signal = model.SignalUp
		res.Strength = strength
	case k > 80:
		res.Signal = model.SignalDown
		res.Strength = strength
	}
	return res
}
