package model

// MarketRegime is the coarse market-behavior classification.
type MarketRegime string

const (
	RegimeTrendingUp    MarketRegime = "TRENDING_UP"
	RegimeTrendingDown  MarketRegime = "TRENDING_DOWN"
	RegimeRanging       MarketRegime = "RANGING"
	RegimeConsolidation MarketRegime = "CONSOLIDATION"
	// RegimeVolatile stays in the wire vocabulary even though the current
	// classification cascade never emits it.
	RegimeVolatile MarketRegime = "VOLATILE"
)

// Summary aggregates the directional calls of the sampled indicators.
type Summary struct {
	UpSignals      int          `json:"upSignals"`
	DownSignals    int          `json:"downSignals"`
	NeutralSignals int          `json:"neutralSignals"`
	UpScore        float64      `json:"upScore"`
	DownScore      float64      `json:"downScore"`
	Alignment      float64      `json:"alignment"`
	Regime         MarketRegime `json:"regime"`
}

// TechnicalAnalysis is the full result of one analysis pass over a candle
// sequence. Field names are part of the output contract: downstream prompt
// templates interpolate them directly.
type TechnicalAnalysis struct {
	RSI        RSIResult        `json:"rsi"`
	Stochastic StochasticResult `json:"stoch"`
	MACD       MACDResult       `json:"macd"`
	ADX        ADXResult        `json:"adx"`
	ATR        ATRResult        `json:"atr"`
	EMA        EMAResult        `json:"ema"`
	Momentum   MomentumResult   `json:"momentum"`
	ROC        ROCResult        `json:"roc"`
	Bollinger  BollingerResult  `json:"bollinger"`
	SMA        SMAResult        `json:"sma"`
	Volume     VolumeResult     `json:"volume"`
	Patterns   []string         `json:"patterns"`
	Summary    Summary          `json:"summary"`
}

// NarrativeContext is the structured subset of the analysis handed to the
// narrative-generation collaborator as prompt context.
type NarrativeContext struct {
	RSI         float64      `json:"rsi"`
	ADX         float64      `json:"adx"`
	EMATrend    Signal       `json:"emaTrend"`
	VolumeRatio float64      `json:"volumeRatio"`
	Regime      MarketRegime `json:"regime"`
	Patterns    []string     `json:"patterns"`
	DataPoints  int          `json:"dataPoints"`
}

// Narrative extracts the prompt context for a narrative collaborator.
// dataPoints is the candle count the analysis was computed from, so the
// consumer can judge how much warmup the indicators had.
func (t *TechnicalAnalysis) Narrative(dataPoints int) NarrativeContext {
	return NarrativeContext{
		RSI:         t.RSI.Value,
		ADX:         t.ADX.Value,
		EMATrend:    t.EMA.Trend,
		VolumeRatio: t.Volume.Ratio,
		Regime:      t.Summary.Regime,
		Patterns:    t.Patterns,
		DataPoints:  dataPoints,
	}
}
