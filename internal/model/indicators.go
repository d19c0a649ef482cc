package model

// Signal is the directional call an indicator makes.
type Signal string

const (
	SignalUp      Signal = "UP"
	SignalDown    Signal = "DOWN"
	SignalNeutral Signal = "NEUTRAL"
)

// SignalStrength is the common {signal, strength} pair every indicator result carries.
// Strength is a 0-100 confidence heuristic, not a calibrated probability.
type SignalStrength struct {
	Signal   Signal `json:"signal"`
	Strength int    `json:"strength"`
}

// Neutral is the shared fallback for indicators without enough data.
func Neutral() SignalStrength {
	return SignalStrength{Signal: SignalNeutral, Strength: 50}
}

// RSIResult holds the Relative Strength Index output.
type RSIResult struct {
	Value float64 `json:"value"`
	SignalStrength
}

// StochasticResult holds the stochastic oscillator output.
// D mirrors K: this engine does not apply the usual 3-period smoothing to %D.
type StochasticResult struct {
	K float64 `json:"k"`
	D float64 `json:"d"`
	SignalStrength
}

// MACDResult holds the simplified MACD output. Histogram equals Value because
// no separate signal-line EMA is computed.
type MACDResult struct {
	Value     float64 `json:"value"`
	Histogram float64 `json:"histogram"`
	SignalStrength
}

// ADXResult holds the Average Directional Index output. Value is the raw DX
// (no second-order smoothing).
type ADXResult struct {
	Value   float64 `json:"value"`
	PlusDI  float64 `json:"plus_di"`
	MinusDI float64 `json:"minus_di"`
	SignalStrength
}

// ATRResult holds the Average True Range output. ATR carries no directional
// call, so its signal is always NEUTRAL.
type ATRResult struct {
	Value float64 `json:"value"`
	SignalStrength
}

// EMAResult holds the exponential moving average bundle.
type EMAResult struct {
	EMA12 float64 `json:"ema12"`
	EMA26 float64 `json:"ema26"`
	EMA50 float64 `json:"ema50"`
	Trend Signal  `json:"trend"`
	SignalStrength
}

// SMAResult holds the simple moving average bundle.
type SMAResult struct {
	SMA20  float64 `json:"sma20"`
	SMA50  float64 `json:"sma50"`
	SMA200 float64 `json:"sma200"`
	Trend  Signal  `json:"trend"`
	SignalStrength
}

// VolumeResult holds the volume participation output.
type VolumeResult struct {
	Ratio float64 `json:"ratio"`
	VMA20 float64 `json:"vma20"`
	Trend Signal  `json:"trend"`
	SignalStrength
}

// BollingerResult holds the Bollinger band output. Width is the band spread as
// a percentage of the middle band.
type BollingerResult struct {
	Width  float64 `json:"width"`
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
	SignalStrength
}

// MomentumResult holds the raw price momentum output.
type MomentumResult struct {
	Value float64 `json:"value"`
	SignalStrength
}

// ROCResult holds the rate-of-change output (percentage over the period).
type ROCResult struct {
	Value float64 `json:"value"`
	SignalStrength
}
