package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	GRPCAddr    string
	MetricsAddr string

	// SeedCount is the number of synthetic iterations written on startup; 0 disables seeding.
	SeedCount int
	// SeedValue fixes the generator seed; 0 picks a time based one.
	SeedValue int64

	LogLevel  slog.Level
	LogFormat string
}

// LoadEnvFile loads variables from path into the environment without
// overriding values that are already set. A missing file is not an error.
func LoadEnvFile(path string) (bool, error) {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}

func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		GRPCAddr:    getEnv("GRPC_ADDR", ":50051"),
		MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		SeedCount:   getEnvInt("SEED_COUNT", 0),
		SeedValue:   getEnvInt64("SEED_VALUE", 0),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if cfg.SeedCount < 0 {
		return nil, fmt.Errorf("invalid SEED_COUNT: must not be negative")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}
