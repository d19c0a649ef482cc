package model

import "context"

// CandleProvider is the data-fetch collaborator: it delivers one ordered
// candle sequence per symbol/interval. Implementations own retries, rate
// limits and deduplication; the engine only sees the finished slice.
type CandleProvider interface {
	GetCandles(ctx context.Context, symbol, interval string, count int) ([]Candle, error)
}
