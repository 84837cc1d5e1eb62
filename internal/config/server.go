package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/m-lima/connect4/internal/validator"
)

// Server holds the HTTP server settings, read from the environment.
type Server struct {
	Addr         string `validate:"required"`
	LogLevel     string `validate:"oneof=debug info warn error"`
	OTLPEndpoint string
	MaxDepth     int           `validate:"gte=0,lte=12"`
	SessionTTL   time.Duration `validate:"gt=0"`
}

const defaultSessionTTL = 30 * time.Minute

// LoadServer reads CONNECT4_ADDR, CONNECT4_LOG_LEVEL, CONNECT4_MAX_DEPTH,
// CONNECT4_SESSION_TTL and OTEL_EXPORTER_OTLP_ENDPOINT. An empty endpoint
// disables telemetry export.
func LoadServer() (Server, error) {
	cfg := Server{
		Addr:         env("CONNECT4_ADDR", ":8080"),
		LogLevel:     env("CONNECT4_LOG_LEVEL", "info"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		MaxDepth:     DefaultLevel,
		SessionTTL:   defaultSessionTTL,
	}

	if raw := os.Getenv("CONNECT4_MAX_DEPTH"); raw != "" {
		depth, err := strconv.Atoi(raw)
		if err != nil {
			return Server{}, fmt.Errorf("invalid CONNECT4_MAX_DEPTH %q: %w", raw, err)
		}
		cfg.MaxDepth = depth
	}

	if raw := os.Getenv("CONNECT4_SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Server{}, fmt.Errorf("invalid CONNECT4_SESSION_TTL %q: %w", raw, err)
		}
		cfg.SessionTTL = ttl
	}

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return Server{}, fmt.Errorf("invalid server configuration: %w", err)
	}
	return cfg, nil
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
