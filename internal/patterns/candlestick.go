package patterns

import "github.com/finsight/ta-engine/internal/model"

// Pattern names as they appear in the output (prompt templates interpolate
// them verbatim).
const (
	BullishEngulfing = "Bullish Engulfing"
	BearishEngulfing = "Bearish Engulfing"
	BullishHammer    = "Bullish Hammer"
	ShootingStar     = "Shooting Star"
)

const (
	engulfingBodyRatio = 1.5
	wickBodyRatio      = 2.5
)

// Detect inspects the newest candles for two-candle engulfing shapes and
// single-candle pin bars. Patterns may co-occur; the result is the set of
// matched names in a fixed order, with no ranking.
func Detect(candles []model.Candle) []string {
	if len(candles) == 0 {
		return nil
	}

	var found []string
	last := candles[len(candles)-1]

	if len(candles) >= 2 {
		prev := candles[len(candles)-2]
		// The current body must strictly exceed 1.5x the previous one and
		// the open/close direction must flip.
		engulfs := last.Body() > prev.Body()*engulfingBodyRatio
		if engulfs && last.Bullish() && !prev.Bullish() {
			found = append(found, BullishEngulfing)
		}
		if engulfs && !last.Bullish() && prev.Bullish() {
			found = append(found, BearishEngulfing)
		}
	}

	if last.LowerWick() > last.Body()*wickBodyRatio {
		found = append(found, BullishHammer)
	}
	if last.UpperWick() > last.Body()*wickBodyRatio {
		found = append(found, ShootingStar)
	}

	return found
}
