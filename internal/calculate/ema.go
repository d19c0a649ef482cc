package calculate

import "github.com/finsight/ta-engine/internal/model"

// EMABundle computes the 12/26/50 exponential averages. The trend compares
// EMA12 against EMA50 in the simple engine and against EMA26 in the extended
// one; the comparison choice is part of the variant contract.
func EMABundle(closes []float64, variant model.Variant) model.EMAResult {
	ema12 := EMA(closes, 12)
	ema26 := EMA(closes, 26)
	ema50 := EMA(closes, 50)

	reference := ema50
	if variant == model.EngineV2 {
		reference = ema26
	}

	trend := model.SignalDown
	if ema12 > reference {
		trend = model.SignalUp
	}

	return model.EMAResult{
		EMA12:          ema12,
		EMA26:          ema26,
		EMA50:          ema50,
		Trend:          trend,
		SignalStrength: model.SignalStrength{Signal: trend, Strength: 70},
	}
}
