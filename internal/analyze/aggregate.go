package analyze

import "github.com/finsight/ta-engine/internal/model"

// signalWeight is the constant each aligned vote contributes on top of the
// indicator's own strength.
const signalWeight = 10

// Regime cascade thresholds.
const (
	adxTrendThreshold = 25
	lowVolumeRatio    = 0.8
	lowBollingerWidth = 3.0
)

// Aggregate collects the directional calls of the sampled indicators into
// counts, weighted scores, an alignment percentage and the market regime.
// The simple engine samples RSI, Stochastic and ADX; the extended engine
// samples all eight directional indicators.
func Aggregate(ta *model.TechnicalAnalysis, variant model.Variant) model.Summary {
	members := []model.SignalStrength{
		ta.RSI.SignalStrength,
		ta.Stochastic.SignalStrength,
		ta.ADX.SignalStrength,
	}
	if variant == model.EngineV2 {
		members = append(members,
			ta.MACD.SignalStrength,
			ta.EMA.SignalStrength,
			ta.Bollinger.SignalStrength,
			ta.Momentum.SignalStrength,
			ta.ROC.SignalStrength,
		)
	}

	var s model.Summary
	for _, m := range members {
		switch m.Signal {
		case model.SignalUp:
			s.UpSignals++
			s.UpScore += float64(m.Strength)
		case model.SignalDown:
			s.DownSignals++
			s.DownScore += float64(m.Strength)
		default:
			s.NeutralSignals++
		}
	}
	s.UpScore += float64(s.UpSignals) * signalWeight
	s.DownScore += float64(s.DownSignals) * signalWeight

	// Unanimous votes must report exactly 100, so the denominator is only
	// padded when there is nothing to divide by.
	denom := s.UpScore + s.DownScore
	if denom == 0 {
		denom = 1
	}
	if s.UpScore > s.DownScore {
		s.Alignment = s.UpScore / denom * 100
	} else {
		s.Alignment = s.DownScore / denom * 100
	}

	s.Regime = classifyRegime(ta, variant)
	return s
}

// classifyRegime is a strict priority cascade, not independent voting:
// a confirmed ADX trend wins over low participation, which wins over the
// extended engine's tight-band check. Reordering the checks changes the
// classification of ambiguous inputs, so the order is part of the contract.
func classifyRegime(ta *model.TechnicalAnalysis, variant model.Variant) model.MarketRegime {
	if ta.ADX.Signal != model.SignalNeutral && ta.ADX.Value > adxTrendThreshold {
		if ta.EMA.Trend == model.SignalUp {
			return model.RegimeTrendingUp
		}
		return model.RegimeTrendingDown
	}

	if ta.Volume.Ratio < lowVolumeRatio {
		return model.RegimeConsolidation
	}

	if variant == model.EngineV2 && ta.Bollinger.Width < lowBollingerWidth {
		return model.RegimeConsolidation
	}

	return model.RegimeRanging
}
