package calculate

import "math"

// SMA returns the simple moving average of the last period elements.
// A series shorter than the period degrades to the last element (0 when
// empty) instead of erroring; callers rely on that fallback for warmup.
func SMA(series []float64, period int) float64 {
	if len(series) == 0 {
		return 0
	}
	if len(series) < period {
		return series[len(series)-1]
	}

	var sum float64
	for _, v := range series[len(series)-period:] {
		sum += v
	}
	return sum / float64(period)
}

// EMA returns the exponential moving average over the whole series with
// smoothing constant k = 2/(period+1). The recursion is seeded from the
// first element rather than an SMA of the first period elements; that biases
// the early series but is the arithmetic this engine has always produced,
// so it stays. Short series fall back the same way SMA does.
func EMA(series []float64, period int) float64 {
	if len(series) == 0 {
		return 0
	}
	if len(series) < period {
		return series[len(series)-1]
	}

	k := 2.0 / float64(period+1)
	ema := series[0]
	for _, v := range series[1:] {
		ema = v*k + ema*(1-k)
	}
	return ema
}

// stdDev returns the population standard deviation of the last period
// elements around their SMA. Series shorter than the period yield 0.
func stdDev(series []float64, period int) float64 {
	if len(series) < period || period == 0 {
		return 0
	}

	mean := SMA(series, period)
	var sum float64
	for _, v := range series[len(series)-period:] {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(period))
}

// clampStrength keeps a strength score inside the 0-100 contract.
func clampStrength(s float64) int {
	if s > 100 {
		return 100
	}
	if s < 0 {
		return 0
	}
	return int(s)
}
