package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finsight/ta-engine/internal/model"
)

func up(strength int) model.SignalStrength {
	return model.SignalStrength{Signal: model.SignalUp, Strength: strength}
}

func down(strength int) model.SignalStrength {
	return model.SignalStrength{Signal: model.SignalDown, Strength: strength}
}

func TestAggregateUnanimousUp(t *testing.T) {
	ta := &model.TechnicalAnalysis{
		RSI:        model.RSIResult{Value: 25, SignalStrength: up(85)},
		Stochastic: model.StochasticResult{K: 10, D: 10, SignalStrength: up(80)},
		ADX:        model.ADXResult{Value: 30, PlusDI: 40, MinusDI: 10, SignalStrength: up(60)},
		EMA:        model.EMAResult{Trend: model.SignalUp, SignalStrength: up(70)},
		Volume:     model.VolumeResult{Ratio: 1.0, Trend: model.SignalNeutral, SignalStrength: model.Neutral()},
	}

	s := Aggregate(ta, model.EngineV1)

	assert.Equal(t, 3, s.UpSignals)
	assert.Equal(t, 0, s.DownSignals)
	assert.Equal(t, 0, s.NeutralSignals)
	// 3 votes x 10 + strengths 85+80+60
	assert.InDelta(t, 255.0, s.UpScore, 1e-9)
	assert.Equal(t, 0.0, s.DownScore)
	assert.InDelta(t, 100.0, s.Alignment, 1e-9, "unanimous votes report exactly 100")
	assert.Equal(t, model.RegimeTrendingUp, s.Regime)
}

func TestAggregateAllNeutral(t *testing.T) {
	ta := &model.TechnicalAnalysis{
		RSI:        model.RSIResult{Value: 50, SignalStrength: model.Neutral()},
		Stochastic: model.StochasticResult{K: 50, D: 50, SignalStrength: model.Neutral()},
		ADX:        model.ADXResult{Value: 15, SignalStrength: model.Neutral()},
		Volume:     model.VolumeResult{Ratio: 1.0, SignalStrength: model.Neutral()},
		Bollinger:  model.BollingerResult{Width: 5, SignalStrength: model.Neutral()},
	}

	s := Aggregate(ta, model.EngineV1)

	assert.Equal(t, 3, s.NeutralSignals)
	assert.Equal(t, 0.0, s.UpScore)
	assert.Equal(t, 0.0, s.DownScore)
	assert.Equal(t, 0.0, s.Alignment, "no directional votes, no alignment")
	assert.Equal(t, model.RegimeRanging, s.Regime)
}

func TestAggregateMembershipByVariant(t *testing.T) {
	// Only MACD/EMA/Bollinger/Momentum/ROC vote: invisible to the simple
	// engine, five extra votes for the extended one.
	ta := &model.TechnicalAnalysis{
		RSI:        model.RSIResult{SignalStrength: model.Neutral()},
		Stochastic: model.StochasticResult{SignalStrength: model.Neutral()},
		ADX:        model.ADXResult{Value: 15, SignalStrength: model.Neutral()},
		MACD:       model.MACDResult{SignalStrength: up(65)},
		EMA:        model.EMAResult{Trend: model.SignalUp, SignalStrength: up(70)},
		Bollinger:  model.BollingerResult{Width: 5, SignalStrength: up(75)},
		Momentum:   model.MomentumResult{SignalStrength: up(65)},
		ROC:        model.ROCResult{SignalStrength: up(65)},
		Volume:     model.VolumeResult{Ratio: 1.0, SignalStrength: model.Neutral()},
	}

	v1 := Aggregate(ta, model.EngineV1)
	assert.Equal(t, 0, v1.UpSignals)
	assert.Equal(t, 3, v1.NeutralSignals)

	v2 := Aggregate(ta, model.EngineV2)
	assert.Equal(t, 5, v2.UpSignals)
	assert.Equal(t, 3, v2.NeutralSignals)
	assert.InDelta(t, 5*10+65+70+75+65+65, v2.UpScore, 1e-9)
}

func TestAggregateMixedVotes(t *testing.T) {
	ta := &model.TechnicalAnalysis{
		RSI:        model.RSIResult{SignalStrength: up(60)},
		Stochastic: model.StochasticResult{SignalStrength: down(80)},
		ADX:        model.ADXResult{Value: 15, SignalStrength: model.Neutral()},
		Volume:     model.VolumeResult{Ratio: 1.0, SignalStrength: model.Neutral()},
		Bollinger:  model.BollingerResult{Width: 5},
	}

	s := Aggregate(ta, model.EngineV1)
	assert.Equal(t, 1, s.UpSignals)
	assert.Equal(t, 1, s.DownSignals)
	assert.Equal(t, 1, s.NeutralSignals)
	assert.InDelta(t, 70.0, s.UpScore, 1e-9)
	assert.InDelta(t, 90.0, s.DownScore, 1e-9)
	assert.InDelta(t, 90.0/160.0*100, s.Alignment, 1e-9)
}

func TestClassifyRegimePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		ta       *model.TechnicalAnalysis
		variant  model.Variant
		expected model.MarketRegime
	}{
		{
			name: "ADX trend beats low volume",
			ta: &model.TechnicalAnalysis{
				ADX:    model.ADXResult{Value: 40, SignalStrength: up(80)},
				EMA:    model.EMAResult{Trend: model.SignalUp},
				Volume: model.VolumeResult{Ratio: 0.5},
			},
			variant:  model.EngineV1,
			expected: model.RegimeTrendingUp,
		},
		{
			name: "ADX trend down",
			ta: &model.TechnicalAnalysis{
				ADX:    model.ADXResult{Value: 40, SignalStrength: down(80)},
				EMA:    model.EMAResult{Trend: model.SignalDown},
				Volume: model.VolumeResult{Ratio: 1.5},
			},
			variant:  model.EngineV1,
			expected: model.RegimeTrendingDown,
		},
		{
			name: "high ADX value without a directional call does not trend",
			ta: &model.TechnicalAnalysis{
				ADX:    model.ADXResult{Value: 40, SignalStrength: model.Neutral()},
				Volume: model.VolumeResult{Ratio: 0.5},
			},
			variant:  model.EngineV1,
			expected: model.RegimeConsolidation,
		},
		{
			name: "low volume consolidates when the ADX gate fails",
			ta: &model.TechnicalAnalysis{
				ADX:    model.ADXResult{Value: 15, SignalStrength: model.Neutral()},
				Volume: model.VolumeResult{Ratio: 0.7},
			},
			variant:  model.EngineV1,
			expected: model.RegimeConsolidation,
		},
		{
			name: "tight bands consolidate only in the extended engine",
			ta: &model.TechnicalAnalysis{
				ADX:       model.ADXResult{Value: 15, SignalStrength: model.Neutral()},
				Volume:    model.VolumeResult{Ratio: 1.0},
				Bollinger: model.BollingerResult{Width: 2.0},
			},
			variant:  model.EngineV2,
			expected: model.RegimeConsolidation,
		},
		{
			name: "same tight bands range in the simple engine",
			ta: &model.TechnicalAnalysis{
				ADX:       model.ADXResult{Value: 15, SignalStrength: model.Neutral()},
				Volume:    model.VolumeResult{Ratio: 1.0},
				Bollinger: model.BollingerResult{Width: 2.0},
			},
			variant:  model.EngineV1,
			expected: model.RegimeRanging,
		},
		{
			name: "default is ranging",
			ta: &model.TechnicalAnalysis{
				ADX:       model.ADXResult{Value: 20, SignalStrength: model.Neutral()},
				Volume:    model.VolumeResult{Ratio: 1.0},
				Bollinger: model.BollingerResult{Width: 6.0},
			},
			variant:  model.EngineV2,
			expected: model.RegimeRanging,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyRegime(tt.ta, tt.variant))
		})
	}
}
