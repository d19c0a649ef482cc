package calculate

import "github.com/finsight/ta-engine/internal/model"

// Volume compares the latest volume against its moving average. A ratio
// above 1.2 signals elevated participation; the extended engine additionally
// gates the direction by whether price moved up or down on the latest candle.
func Volume(volumes, closes []float64, period int, variant model.Variant) model.VolumeResult {
	vma := SMA(volumes, period)
	if vma == 0 || len(volumes) == 0 {
		return model.VolumeResult{Trend: model.SignalNeutral, SignalStrength: model.Neutral()}
	}

	ratio := volumes[len(volumes)-1] / vma
	res := model.VolumeResult{
		Ratio:          ratio,
		VMA20:          vma,
		Trend:          model.SignalNeutral,
		SignalStrength: model.Neutral(),
	}
	if ratio <= 1.2 {
		return res
	}

	trend := model.SignalUp
	if variant == model.EngineV2 && len(closes) >= 2 &&
		closes[len(closes)-1] < closes[len(closes)-2] {
		trend = model.SignalDown
	}

	res.Trend = trend
	res.Signal = trend
	res.Strength = 70
	return res
}
