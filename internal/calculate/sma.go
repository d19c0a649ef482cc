package calculate

import "github.com/finsight/ta-engine/internal/model"

// SMABundle computes the 20/50/200 simple averages. The trend is the current
// close against SMA50; agreement between SMA50 and SMA200 boosts the
// strength from 60 to 80.
func SMABundle(closes []float64) model.SMAResult {
	sma20 := SMA(closes, 20)
	sma50 := SMA(closes, 50)
	sma200 := SMA(closes, 200)
	price := closes[len(closes)-1]

	trend := model.SignalDown
	if price > sma50 {
		trend = model.SignalUp
	}

	strength := 60
	if (trend == model.SignalUp && sma50 > sma200) ||
		(trend == model.SignalDown && sma50 < sma200) {
		strength = 80
	}

	return model.SMAResult{
		SMA20:          sma20,
		SMA50:          sma50,
		SMA200:         sma200,
		Trend:          trend,
		SignalStrength: model.SignalStrength{Signal: trend, Strength: strength},
	}
}
