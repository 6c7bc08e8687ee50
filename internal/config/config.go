// Package config loads runtime settings from the environment with
// defaults that work out of the box for local use. Every knob maps to one
// BRANDBOOST_* variable.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brandboost/brandboost/internal/analytics"
	"github.com/brandboost/brandboost/internal/content"
)

// ErrInvalid marks configuration that cannot drive the pipeline.
var ErrInvalid = errors.New("invalid configuration")

// Config carries every runtime setting of the application.
type Config struct {
	// Remote generation endpoint.
	APIKey  string
	BaseURL string
	Model   string

	// Retry behavior of the generation client.
	MaxRetries     int
	Timeout        time.Duration
	BackoffBase    time.Duration
	BackoffCap     time.Duration
	MinResponseLen int

	// Savings credited per generated piece.
	MinutesSaved float64
	CostSaved    float64

	// ROI projection rates.
	WriterRate float64
	AICost     float64

	// Paths and serving address.
	CSVPath    string
	ReportsDir string
	Addr       string
}

// Default returns the built-in settings.
func Default() Config {
	llm := content.DefaultLLMConfig()
	policy := content.DefaultRetryPolicy()

	return Config{
		BaseURL:        llm.BaseURL,
		Model:          llm.Model,
		MaxRetries:     policy.MaxRetries,
		Timeout:        policy.Timeout,
		BackoffBase:    policy.BackoffBase,
		BackoffCap:     policy.BackoffCap,
		MinResponseLen: policy.MinResponseLen,
		MinutesSaved:   analytics.DefaultMinutesPerPiece,
		CostSaved:      analytics.DefaultCostPerPiece,
		WriterRate:     45.0,
		AICost:         0.08,
		CSVPath:        "sample_data/products.csv",
		ReportsDir:     "reports",
		Addr:           ":8080",
	}
}

// Load reads the environment over the defaults. BRANDBOOST_API_KEY wins
// over HF_API_KEY when both are set.
func Load() Config {
	cfg := Default()

	cfg.APIKey = stringEnv("BRANDBOOST_API_KEY", "")
	if cfg.APIKey == "" {
		cfg.APIKey = stringEnv("HF_API_KEY", "")
	}
	cfg.BaseURL = stringEnv("BRANDBOOST_BASE_URL", cfg.BaseURL)
	cfg.Model = stringEnv("BRANDBOOST_MODEL", cfg.Model)

	cfg.MaxRetries = intEnv("BRANDBOOST_MAX_RETRIES", cfg.MaxRetries)
	cfg.Timeout = millisEnv("BRANDBOOST_TIMEOUT_MS", cfg.Timeout)
	cfg.BackoffBase = millisEnv("BRANDBOOST_BACKOFF_BASE_MS", cfg.BackoffBase)
	cfg.BackoffCap = millisEnv("BRANDBOOST_BACKOFF_CAP_MS", cfg.BackoffCap)
	cfg.MinResponseLen = intEnv("BRANDBOOST_MIN_RESPONSE_LEN", cfg.MinResponseLen)

	cfg.MinutesSaved = floatEnv("BRANDBOOST_MINUTES_SAVED", cfg.MinutesSaved)
	cfg.CostSaved = floatEnv("BRANDBOOST_COST_SAVED", cfg.CostSaved)
	cfg.WriterRate = floatEnv("BRANDBOOST_WRITER_RATE", cfg.WriterRate)
	cfg.AICost = floatEnv("BRANDBOOST_AI_COST", cfg.AICost)

	cfg.CSVPath = stringEnv("BRANDBOOST_CSV", cfg.CSVPath)
	cfg.ReportsDir = stringEnv("BRANDBOOST_REPORTS_DIR", cfg.ReportsDir)
	cfg.Addr = stringEnv("BRANDBOOST_ADDR", cfg.Addr)

	return cfg
}

// Validate checks that the settings can drive the pipeline. The API key is
// not required here: without one the generator runs fallback-only.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: model is required", ErrInvalid)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("%w: max retries must be at least 1", ErrInvalid)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalid)
	}
	if c.BackoffBase < 0 || c.BackoffCap < 0 {
		return fmt.Errorf("%w: backoff durations must not be negative", ErrInvalid)
	}
	if c.MinResponseLen < 0 {
		return fmt.Errorf("%w: min response length must not be negative", ErrInvalid)
	}
	if strings.TrimSpace(c.CSVPath) == "" {
		return fmt.Errorf("%w: catalog path is required", ErrInvalid)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: serve address is required", ErrInvalid)
	}
	return nil
}

// LLMConfig maps the settings onto the generation client configuration.
func (c Config) LLMConfig() content.LLMConfig {
	llm := content.DefaultLLMConfig()
	llm.Model = c.Model
	llm.APIKey = c.APIKey
	llm.BaseURL = c.BaseURL
	return llm
}

// RetryPolicy maps the settings onto the generator retry policy.
func (c Config) RetryPolicy() content.RetryPolicy {
	return content.RetryPolicy{
		MaxRetries:     c.MaxRetries,
		Timeout:        c.Timeout,
		BackoffBase:    c.BackoffBase,
		BackoffCap:     c.BackoffCap,
		MinResponseLen: c.MinResponseLen,
	}
}

func stringEnv(key, def string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	return val
}

func intEnv(key string, def int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		slog.Warn("intEnv: invalid integer value, using default", "key", key, "value", val, "default", def)
		return def
	}
	return n
}

func floatEnv(key string, def float64) float64 {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		slog.Warn("floatEnv: invalid float value, using default", "key", key, "value", val, "default", def)
		return def
	}
	return f
}

func millisEnv(key string, def time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	ms, err := strconv.Atoi(val)
	if err != nil || ms < 0 {
		slog.Warn("millisEnv: invalid millisecond value, using default", "key", key, "value", val, "default", def)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
