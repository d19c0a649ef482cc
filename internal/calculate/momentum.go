package calculate

import "github.com/finsight/ta-engine/internal/model"

// Momentum is the raw close-to-close difference over the period.
func Momentum(closes []float64, period int) model.MomentumResult {
	if len(closes) < period+1 {
		return model.MomentumResult{SignalStrength: model.Neutral()}
	}

	value := closes[len(closes)-1] - closes[len(closes)-1-period]
	res := model.MomentumResult{Value: value, SignalStrength: model.Neutral()}
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

// ROC is the percentage change over the period with a ±0.5% deadband so tiny
// drifts do not flip the signal.
func ROC(closes []float64, period int) model.ROCResult {
	if len(closes) < period+1 {
		return model.ROCResult{SignalStrength: model.Neutral()}
	}

	reference := closes[len(closes)-1-period]
	if reference == 0 {
		return model.ROCResult{SignalStrength: model.Neutral()}
	}

	value := (closes[len(closes)-1] - reference) / reference * 100
	res := model.ROCResult{Value: value, SignalStrength: model.Neutral()}
	switch {
	case value > 0.5:
		res.Signal = model.SignalUp
		res.Strength = 65
	case value < -0.5:
		res.Signal = model.SignalDown
		res.Strength = 65
	}
	return res
}
