package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/finsight/ta-engine/config"
	"github.com/finsight/ta-engine/internal/analyze"
	"github.com/finsight/ta-engine/internal/api/twelvedata"
	"github.com/finsight/ta-engine/internal/model"
)

func main() {
	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg.LogLevel)
	log.Info().
		Str("symbol", cfg.Symbol).
		Str("interval", cfg.Interval).
		Str("variant", string(cfg.Engine.Variant)).
		Msg("Starting technical analyzer")

	client := twelvedata.NewClient(twelvedata.ClientOptions{
		APIKey:         cfg.TwelveAPIKey,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: 5,
	})

	// Primary timeframe plus the anchor timeframe for the multi-timeframe
	// cross-check; the engine itself is resolution-agnostic.
	results := map[string]*model.TechnicalAnalysis{}
	for _, interval := range []string{cfg.Interval, cfg.AnchorInterval} {
		ta, err := analyzeInterval(ctx, client, cfg, interval)
		if err != nil {
			log.Fatal().Err(err).Str("interval", interval).Msg("Analysis failed")
		}
		results[interval] = ta
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode results")
	}
	fmt.Println(string(out))
}

func analyzeInterval(ctx context.Context, client model.CandleProvider, cfg *config.Config, interval string) (*model.TechnicalAnalysis, error) {
	candles, err := client.GetCandles(ctx, cfg.Symbol, interval, cfg.CandleCount)
	if err != nil {
		return nil, fmt.Errorf("fetching candles: %w", err)
	}

	ta, err := analyze.Technical(candles, cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("analyzing candles: %w", err)
	}

	narrative := ta.Narrative(len(candles))
	log.Info().
		Str("interval", interval).
		Str("regime", string(narrative.Regime)).
		Float64("rsi", narrative.RSI).
		Float64("adx", narrative.ADX).
		Float64("volume_ratio", narrative.VolumeRatio).
		Strs("patterns", narrative.Patterns).
		Int("data_points", narrative.DataPoints).
		Msg("Analysis complete")

	return ta, nil
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func setupSignalHandling(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("Shutting down")
		cancel()
	}()
}
