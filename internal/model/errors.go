package model

import "errors"

var (
	// ErrNoCandles is returned when an analysis is requested over an empty
	// or nil candle sequence.
	ErrNoCandles = errors.New("no candles supplied")

	// ErrMalformedCandle is returned when a candle carries a NaN or infinite
	// OHLCV field. Such input would otherwise poison every downstream value,
	// so it fails fast instead of propagating.
	ErrMalformedCandle = errors.New("malformed candle")
)
