package calculate

import "github.com/finsight/ta-engine/internal/model"

// Bollinger computes the 20-period band around the SMA and reports the band
// width as a percentage of the middle band. A flat window collapses the bands
// onto the SMA (width 0) instead of dividing by a zero deviation.
func Bollinger(closes []float64, period int, numStdDev float64) model.BollingerResult {
	middle := SMA(closes, period)
	if len(closes) < period {
		return model.BollingerResult{
			Upper:          middle,
			Middle:         middle,
			Lower:          middle,
			SignalStrength: model.Neutral(),
		}
	}

	sd := stdDev(closes, period)
	upper := middle + numStdDev*sd
	lower := middle - numStdDev*sd

	var width float64
	if middle != 0 {
		width = (upper - lower) / middle * 100
	}

	price := closes[len(closes)-1]
	res := model.BollingerResult{
		Width:          width,
		Upper:          upper,
		Middle:         middle,
		Lower:          lower,
		SignalStrength: model.Neutral(),
	}
	switch {
	case price < lower:
		res.Signal = model.SignalUp
		res.Strength = 75
	case price > upper:
		res.Signal = model.SignalDown
		res.Strength = 75
	}
	return res
}
