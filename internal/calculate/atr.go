package calculate

import (
	"math"

	"github.com/finsight/ta-engine/internal/model"
)

// ATR computes the Average True Range as an SMA of the true ranges.
// Below the warmup floor it reports 0.
func ATR(highs, lows, closes []float64, period int) model.ATRResult {
	if len(closes) < period+1 {
		return model.ATRResult{SignalStrength: model.Neutral()}
	}

	tr := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		highLow := highs[i] - lows[i]
		highClose := math.Abs(highs[i] - closes[i-1])
		lowClose := math.Abs(lows[i] - closes[i-1])
		tr = append(tr, math.Max(highLow, math.Max(highClose, lowClose)))
	}

	return model.ATRResult{Value: SMA(tr, period), SignalStrength: model.Neutral()}
}
