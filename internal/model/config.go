package model

// Variant selects which of the two historical indicator-engine behaviors runs.
// The differences are intentional and confined to signal scaling, the EMA
// trend comparison, volume gating and aggregator membership; see the
// individual indicators.
type Variant string

const (
	// EngineV1 is the simple engine: fixed signal strengths, EMA12 vs EMA50
	// trend, aggregation over RSI/Stochastic/ADX only.
	EngineV1 Variant = "v1"
	// EngineV2 is the extended engine: distance-scaled RSI strength, EMA12 vs
	// EMA26 trend, price-gated volume signal, aggregation over all eight
	// directional indicators and a Bollinger-width consolidation check.
	EngineV2 Variant = "v2"
)

// EngineConfig holds the indicator periods and the variant selector.
type EngineConfig struct {
	Variant        Variant `json:"variant"`
	RSIPeriod      int     `json:"rsi_period"`
	StochPeriod    int     `json:"stoch_period"`
	ADXPeriod      int     `json:"adx_period"`
	ATRPeriod      int     `json:"atr_period"`
	MomentumPeriod int     `json:"momentum_period"`
	ROCPeriod      int     `json:"roc_period"`
	BBPeriod       int     `json:"bb_period"`
	BBStdDev       float64 `json:"bb_std_dev"`
	VolumePeriod   int     `json:"volume_period"`
}

// DefaultEngineConfig returns the standard periods with the simple variant.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Variant:        EngineV1,
		RSIPeriod:      14,
		StochPeriod:    14,
		ADXPeriod:      14,
		ATRPeriod:      14,
		MomentumPeriod: 10,
		ROCPeriod:      14,
		BBPeriod:       20,
		BBStdDev:       2.0,
		VolumePeriod:   20,
	}
}
