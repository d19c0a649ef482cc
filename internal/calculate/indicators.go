package calculate

import "github.com/finsight/ta-engine/internal/model"

// AllIndicators evaluates the full indicator library over one candle
// sequence. Every indicator is independent; they share only the derived
// series, extracted once here. Candles must already be validated.
func AllIndicators(candles []model.Candle, cfg *model.EngineConfig) *model.TechnicalAnalysis {
	closes := model.Closes(candles)
	highs := model.Highs(candles)
	lows := model.Lows(candles)
	volumes := model.Volumes(candles)

	ema := EMABundle(closes, cfg.Variant)

	return &model.TechnicalAnalysis{
		RSI:        RSI(closes, cfg.RSIPeriod, cfg.Variant),
		Stochastic: Stochastic(closes, highs, lows, cfg.StochPeriod, cfg.Variant),
		MACD:       MACD(ema.EMA12, ema.EMA26),
		ADX:        ADX(highs, lows, closes, cfg.ADXPeriod),
		ATR:        ATR(highs, lows, closes, cfg.ATRPeriod),
		EMA:        ema,
		Momentum:   Momentum(closes, cfg.MomentumPeriod),
		ROC:        ROC(closes, cfg.ROCPeriod),
		Bollinger:  Bollinger(closes, cfg.BBPeriod, cfg.BBStdDev),
		SMA:        SMABundle(closes),
		Volume:     Volume(volumes, closes, cfg.VolumePeriod, cfg.Variant),
	}
}
