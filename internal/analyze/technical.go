package analyze

import (
	"fmt"
	"math"

	"github.com/finsight/ta-engine/internal/calculate"
	"github.com/finsight/ta-engine/internal/model"
	"github.com/finsight/ta-engine/internal/patterns"
)

// Technical runs one full analysis pass: validation, the indicator library,
// pattern detection and signal aggregation. It is a pure function of its
// input — no clock, no state between calls — so identical candles always
// produce identical output.
//
// Series shorter than an indicator's lookback degrade to that indicator's
// documented fallback; only structurally invalid input is an error.
func Technical(candles []model.Candle, cfg *model.EngineConfig) (*model.TechnicalAnalysis, error) {
	if err := validate(candles); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = model.DefaultEngineConfig()
	}

	ta := calculate.AllIndicators(candles, cfg)
	ta.Patterns = patterns.Detect(candles)
	ta.Summary = Aggregate(ta, cfg.Variant)
	return ta, nil
}

// validate fails fast on input that would otherwise poison the whole
// pipeline with NaN. Short series are not an error; broken numbers are.
func validate(candles []model.Candle) error {
	if len(candles) == 0 {
		return model.ErrNoCandles
	}
	for i, c := range candles {
		for _, v := range [...]float64{c.Open, c.High, c.Low, c.Close, c.Volume} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("candle %d (time %d): %w", i, c.Time, model.ErrMalformedCandle)
			}
		}
	}
	return nil
}
