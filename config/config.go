package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brunolapastina/rinha-de-backend-2025/health"
	"github.com/joho/godotenv"
)

var (
	ErrMissingSetting = errors.New("missing required setting")
	ErrInvalidSetting = errors.New("invalid setting")
)

type ProcessorConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

type Config struct {
	ServerPort string
	StoreURL   string
	HealthRole health.Role
	LogLevel   string

	Default  ProcessorConfig
	Fallback ProcessorConfig

	HealthInterval time.Duration
	HealthTimeout  time.Duration
	StatsInterval  time.Duration

	BatchSize         int
	WorkerConcurrency int
	StartFresh        bool
	// StoreFireAndForget skips waiting for the Redis reply on appends.
	StoreFireAndForget bool
}

func readEnv(envName string, defaultValue string) string {
	envValue, exists := os.LookupEnv(envName)
	if exists {
		return envValue
	}
	return defaultValue
}

// Load reads the configuration from the environment, after loading a .env
// file if one is present. Every missing or malformed setting is reported in
// the returned error.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var errs []error
	required := func(name string) string {
		v := strings.TrimSpace(os.Getenv(name))
		if v == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingSetting, name))
		}
		return v
	}
	integer := func(name, def string) int {
		v, err := strconv.Atoi(readEnv(name, def))
		if err != nil || v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidSetting, name))
		}
		return v
	}
	millis := func(name, def string) time.Duration {
		return time.Duration(integer(name, def)) * time.Millisecond
	}

	storeURL := strings.TrimSpace(os.Getenv("STORE_URL"))
	if storeURL == "" {
		storeURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	}
	if storeURL == "" {
		errs = append(errs, fmt.Errorf("%w: STORE_URL", ErrMissingSetting))
	}

	paymentTimeout := millis("PAYMENT_TIMEOUT_MS", "5000")
	cfg := &Config{
		ServerPort: readEnv("SERVER_PORT", "9999"),
		StoreURL:   storeURL,
		LogLevel:   readEnv("LOG_LEVEL", "info"),
		Default: ProcessorConfig{
			URL:     strings.TrimRight(required("DEFAULT_URL"), "/"),
			Token:   readEnv("DEFAULT_TOKEN", "123"),
			Timeout: paymentTimeout,
		},
		Fallback: ProcessorConfig{
			URL:     strings.TrimRight(required("FALLBACK_URL"), "/"),
			Token:   readEnv("FALLBACK_TOKEN", "123"),
			Timeout: paymentTimeout,
		},
		HealthInterval:    millis("HEALTH_INTERVAL_MS", "5000"),
		HealthTimeout:     millis("HEALTH_TIMEOUT_MS", "2000"),
		StatsInterval:     millis("STATS_INTERVAL_MS", "10000"),
		BatchSize:         integer("BATCH_SIZE", "100"),
		WorkerConcurrency: integer("WORKER_CONCURRENCY", "0"),
	}

	if mode := required("HEALTH_CHECK_MODE"); mode != "" {
		role, err := health.ParseRole(mode)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: HEALTH_CHECK_MODE: %w", ErrInvalidSetting, err))
		}
		cfg.HealthRole = role
	}

	startFresh, err := strconv.ParseBool(readEnv("START_FRESH", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: START_FRESH must be a boolean", ErrInvalidSetting))
	}
	cfg.StartFresh = startFresh

	fireAndForget, err := strconv.ParseBool(readEnv("STORE_FIRE_AND_FORGET", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: STORE_FIRE_AND_FORGET must be a boolean", ErrInvalidSetting))
	}
	cfg.StoreFireAndForget = fireAndForget

	if cfg.BatchSize == 0 {
		errs = append(errs, fmt.Errorf("%w: BATCH_SIZE must be positive", ErrInvalidSetting))
	}
	if cfg.HealthInterval == 0 {
		errs = append(errs, fmt.Errorf("%w: HEALTH_INTERVAL_MS must be positive", ErrInvalidSetting))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}
