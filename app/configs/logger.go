package configs

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger from the loaded environment.
// Production encoding unless APP_ENV is "development".
func NewLogger(env ENV) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if env.APP_ENV == "development" {
		cfg = zap.NewDevelopmentConfig()
	}

	if env.LogLevel != "" {
		level, err := zapcore.ParseLevel(env.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", env.LogLevel, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
