package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration read from the environment. Scoring
// thresholds are business rules and stay configurable.
type Config struct {
	DBType string
	DBPath string
	DBDSN  string

	HttpHostPort string
	GrpcHostPort string

	DefaultRate  float64
	DefaultBurst int

	JWTSecret string
	TokenTTL  time.Duration

	ModelPath        string
	ModelWatch       bool
	InferenceTimeout time.Duration

	WindowSize         int
	Features           []string
	AlertThreshold     float64
	RULMidpoint        float64
	RULHorizon         float64
	AttentionThreshold float64
	CriticalThreshold  float64
}

const (
	DefaultHttpHostPort       = ":1080"
	DefaultModelPath          = "ml_models/rnn_fwd.yaml"
	DefaultInferenceTimeout   = 2 * time.Second
	DefaultTokenTTL           = 24 * time.Hour
	DefaultWindowSize         = 50
	DefaultFeature            = "s2"
	DefaultAlertThreshold     = 0.7
	DefaultRULMidpoint        = 0.5
	DefaultRULHorizon         = 30.0
	DefaultAttentionThreshold = 0.5
	DefaultCriticalThreshold  = 0.8
)

func DefaultConfig() *Config {
	return &Config{
		DBType:             "file",
		HttpHostPort:       DefaultHttpHostPort,
		DefaultRate:        10,
		DefaultBurst:       20,
		TokenTTL:           DefaultTokenTTL,
		ModelPath:          DefaultModelPath,
		InferenceTimeout:   DefaultInferenceTimeout,
		WindowSize:         DefaultWindowSize,
		Features:           []string{DefaultFeature},
		AlertThreshold:     DefaultAlertThreshold,
		RULMidpoint:        DefaultRULMidpoint,
		RULHorizon:         DefaultRULHorizon,
		AttentionThreshold: DefaultAttentionThreshold,
		CriticalThreshold:  DefaultCriticalThreshold,
	}
}

// LoadConfig reads the environment on top of DefaultConfig. Call
// godotenv.Load before it to pick up a .env file.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	var err error

	if v, ok := lookup(EnvKeyDBType); ok {
		cfg.DBType = v
	}
	if v, ok := lookup(EnvKeyDBPath); ok {
		cfg.DBPath = v
	}
	if v, ok := lookup(EnvKeyDBDSN); ok {
		cfg.DBDSN = v
	}
	if v, ok := lookup(EnvKeyHttpHostPort); ok {
		cfg.HttpHostPort = v
	}
	if v, ok := lookup(EnvKeyGrpcHostPort); ok {
		cfg.GrpcHostPort = v
	}
	if v, ok := lookup(EnvKeyJWTSecret); ok {
		cfg.JWTSecret = v
	}
	if v, ok := lookup(EnvKeyModelPath); ok {
		cfg.ModelPath = v
	}
	if v, ok := lookup(EnvKeyFeatures); ok {
		cfg.Features = splitList(v)
	}

	if cfg.DefaultRate, err = floatEnv(EnvKeyDefaultRate, cfg.DefaultRate); err != nil {
		return nil, err
	}
	if cfg.DefaultBurst, err = intEnv(EnvKeyDefaultBurst, cfg.DefaultBurst); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = durationEnv(EnvKeyTokenTTL, cfg.TokenTTL); err != nil {
		return nil, err
	}
	if cfg.ModelWatch, err = boolEnv(EnvKeyModelWatch, cfg.ModelWatch); err != nil {
		return nil, err
	}
	if cfg.InferenceTimeout, err = durationEnv(EnvKeyInferenceTimeout, cfg.InferenceTimeout); err != nil {
		return nil, err
	}
	if cfg.WindowSize, err = intEnv(EnvKeyWindowSize, cfg.WindowSize); err != nil {
		return nil, err
	}
	if cfg.AlertThreshold, err = floatEnv(EnvKeyAlertThreshold, cfg.AlertThreshold); err != nil {
		return nil, err
	}
	if cfg.RULMidpoint, err = floatEnv(EnvKeyRULMidpoint, cfg.RULMidpoint); err != nil {
		return nil, err
	}
	if cfg.RULHorizon, err = floatEnv(EnvKeyRULHorizon, cfg.RULHorizon); err != nil {
		return nil, err
	}
	if cfg.AttentionThreshold, err = floatEnv(EnvKeyAttentionThreshold, cfg.AttentionThreshold); err != nil {
		return nil, err
	}
	if cfg.CriticalThreshold, err = floatEnv(EnvKeyCriticalThreshold, cfg.CriticalThreshold); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("invalid %s: window size must be positive, got %d", EnvKeyWindowSize, c.WindowSize)
	}
	if len(c.Features) == 0 {
		return fmt.Errorf("invalid %s: at least one feature is required", EnvKeyFeatures)
	}
	if c.RULMidpoint < 0 || c.RULMidpoint >= 1 {
		return fmt.Errorf("invalid %s: midpoint must be in [0, 1), got %v", EnvKeyRULMidpoint, c.RULMidpoint)
	}
	if c.RULHorizon < 0 {
		return fmt.Errorf("invalid %s: horizon can not be negative, got %v", EnvKeyRULHorizon, c.RULHorizon)
	}
	if c.DefaultBurst < 0 {
		return fmt.Errorf("invalid %s: burst can not be negative, got %d", EnvKeyDefaultBurst, c.DefaultBurst)
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, found := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, found && v != ""
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func floatEnv(key string, fallback float64) (float64, error) {
	v, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s, should be a float64 value: %w", key, err)
	}
	return f, nil
}

func intEnv(key string, fallback int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s, should be an int value: %w", key, err)
	}
	return i, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s, should be a bool value: %w", key, err)
	}
	return b, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s, should be a duration like 2s: %w", key, err)
	}
	return d, nil
}
