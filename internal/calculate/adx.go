package calculate

import (
	"math"

	"github.com/finsight/ta-engine/internal/model"
)

// adxFloor is the neutral placeholder reported below the warmup floor.
const adxFloor = 15

// ADX computes the Average Directional Index from per-bar directional
// movement. TR, +DM and -DM are smoothed with an EMA of the period; the
// reported value is the raw DX without the textbook second-order smoothing —
// an intentional simplification preserved for output parity.
func ADX(highs, lows, closes []float64, period int) model.ADXResult {
	if len(closes) < 2*period {
		return model.ADXResult{Value: adxFloor, SignalStrength: model.Neutral()}
	}

	n := len(closes)
	tr := make([]float64, 0, n-1)
	plusDM := make([]float64, 0, n-1)
	minusDM := make([]float64, 0, n-1)

	for i := 1; i < n; i++ {
		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]

		pDM := 0.0
		if upMove > downMove && upMove > 0 {
			pDM = upMove
		}
		mDM := 0.0
		if downMove > upMove && downMove > 0 {
			mDM = downMove
		}
		plusDM = append(plusDM, pDM)
		minusDM = append(minusDM, mDM)

		highLow := highs[i] - lows[i]
		highClose := math.Abs(highs[i] - closes[i-1])
		lowClose := math.Abs(lows[i] - closes[i-1])
		tr = append(tr, math.Max(highLow, math.Max(highClose, lowClose)))
	}

	smoothedTR := EMA(tr, period)
	smoothedPlus := EMA(plusDM, period)
	smoothedMinus := EMA(minusDM, period)

	var plusDI, minusDI float64
	if smoothedTR > 0 {
		plusDI = smoothedPlus / smoothedTR * 100
		minusDI = smoothedMinus / smoothedTR * 100
	}

	var dx float64
	if plusDI+minusDI > 0 {
		dx = math.Abs(plusDI-minusDI) / (plusDI + minusDI) * 100
	}

	res := model.ADXResult{
		Value:          dx,
		PlusDI:         plusDI,
		MinusDI:        minusDI,
		SignalStrength: model.SignalStrength{Signal: model.SignalNeutral, Strength: clampStrength(dx * 2)},
	}
	if dx > 25 {
		if plusDI > minusDI {
			res.Signal = model.SignalUp
		} else {
			res.Signal = model.SignalDown
		}
	}
	return res
}
