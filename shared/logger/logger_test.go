package logger_test

import (
	"testing"

	"github.com/rs/zerolog"

	"manege/config"
	"manege/shared/logger"
)

func TestInitLogger(t *testing.T) {
	logger.InitLogger()

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected trace level after init, got %s", zerolog.GlobalLevel())
	}
}

func TestSetLogLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.LogLevel = "warn"

	logger.SetLogLevel(cfg)

	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("expected warn level, got %s", zerolog.GlobalLevel())
	}
}

func TestSetLogLevelInvalidFallsBack(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.LogLevel = "not-a-level"

	logger.SetLogLevel(cfg)

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected trace fallback, got %s", zerolog.GlobalLevel())
	}
}
