package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/finsight/ta-engine/internal/model"
)

// Config holds all application configuration.
type Config struct {
	TwelveAPIKey   string
	Symbol         string
	Interval       string
	AnchorInterval string
	CandleCount    int
	LogLevel       string
	RequestTimeout int // seconds
	Engine         *model.EngineConfig
}

// Load initializes configuration from environment variables.
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	engine := model.DefaultEngineConfig()
	engine.Variant = model.Variant(getEnvWithDefault("ENGINE_VARIANT", string(model.EngineV1)))
	engine.RSIPeriod = getEnvIntWithDefault("RSI_PERIOD", engine.RSIPeriod)
	engine.StochPeriod = getEnvIntWithDefault("STOCH_PERIOD", engine.StochPeriod)
	engine.ADXPeriod = getEnvIntWithDefault("ADX_PERIOD", engine.ADXPeriod)
	engine.ATRPeriod = getEnvIntWithDefault("ATR_PERIOD", engine.ATRPeriod)
	engine.MomentumPeriod = getEnvIntWithDefault("MOMENTUM_PERIOD", engine.MomentumPeriod)
	engine.ROCPeriod = getEnvIntWithDefault("ROC_PERIOD", engine.ROCPeriod)
	engine.BBPeriod = getEnvIntWithDefault("BB_PERIOD", engine.BBPeriod)
	engine.BBStdDev = getEnvFloatWithDefault("BB_STD_DEV", engine.BBStdDev)
	engine.VolumePeriod = getEnvIntWithDefault("VOLUME_PERIOD", engine.VolumePeriod)

	cfg := Config{
		TwelveAPIKey:   os.Getenv("TWELVE_API_KEY"),
		Symbol:         getEnvWithDefault("SYMBOL", "EUR/USD"),
		Interval:       getEnvWithDefault("INTERVAL", "1h"),
		AnchorInterval: getEnvWithDefault("ANCHOR_INTERVAL", "1day"),
		CandleCount:    getEnvIntWithDefault("CANDLE_COUNT", 300),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		RequestTimeout: getEnvIntWithDefault("REQUEST_TIMEOUT", 30),
		Engine:         engine,
	}
	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
