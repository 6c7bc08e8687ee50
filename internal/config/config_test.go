package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Model != "mistralai/Mistral-7B-Instruct-v0.1" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.BaseURL != "https://router.huggingface.co/v1" {
		t.Errorf("base url = %q", cfg.BaseURL)
	}
	if cfg.MaxRetries != 2 {
		t.Errorf("max retries = %d, want 2", cfg.MaxRetries)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("timeout = %s, want 15s", cfg.Timeout)
	}
	if cfg.BackoffBase != time.Second || cfg.BackoffCap != 8*time.Second {
		t.Errorf("backoff = %s/%s", cfg.BackoffBase, cfg.BackoffCap)
	}
	if cfg.MinutesSaved != 30 || cfg.CostSaved != 12 {
		t.Errorf("savings = %v min / %v EUR", cfg.MinutesSaved, cfg.CostSaved)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BRANDBOOST_MODEL", "meta-llama/Llama-3.1-8B-Instruct")
	t.Setenv("BRANDBOOST_MAX_RETRIES", "5")
	t.Setenv("BRANDBOOST_TIMEOUT_MS", "2000")
	t.Setenv("BRANDBOOST_BACKOFF_BASE_MS", "500")
	t.Setenv("BRANDBOOST_WRITER_RATE", "60.5")
	t.Setenv("BRANDBOOST_CSV", "data/catalog.csv")
	t.Setenv("BRANDBOOST_ADDR", ":9090")

	cfg := Load()

	if cfg.Model != "meta-llama/Llama-3.1-8B-Instruct" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("max retries = %d, want 5", cfg.MaxRetries)
	}
	if cfg.Timeout != 2*time.Second {
		t.Errorf("timeout = %s, want 2s", cfg.Timeout)
	}
	if cfg.BackoffBase != 500*time.Millisecond {
		t.Errorf("backoff base = %s, want 500ms", cfg.BackoffBase)
	}
	if cfg.WriterRate != 60.5 {
		t.Errorf("writer rate = %v, want 60.5", cfg.WriterRate)
	}
	if cfg.CSVPath != "data/catalog.csv" {
		t.Errorf("csv path = %q", cfg.CSVPath)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.Addr)
	}
}

func TestLoad_APIKeyFallback(t *testing.T) {
	t.Setenv("BRANDBOOST_API_KEY", "")
	t.Setenv("HF_API_KEY", "hf_secondary")

	if cfg := Load(); cfg.APIKey != "hf_secondary" {
		t.Errorf("api key = %q, want hf_secondary", cfg.APIKey)
	}

	t.Setenv("BRANDBOOST_API_KEY", "bb_primary")
	if cfg := Load(); cfg.APIKey != "bb_primary" {
		t.Errorf("api key = %q, want bb_primary", cfg.APIKey)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("BRANDBOOST_MAX_RETRIES", "often")
	t.Setenv("BRANDBOOST_TIMEOUT_MS", "-100")
	t.Setenv("BRANDBOOST_WRITER_RATE", "plenty")

	cfg := Load()

	if cfg.MaxRetries != 2 {
		t.Errorf("max retries = %d, want default 2", cfg.MaxRetries)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("timeout = %s, want default 15s", cfg.Timeout)
	}
	if cfg.WriterRate != 45 {
		t.Errorf("writer rate = %v, want default 45", cfg.WriterRate)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty model", func(c *Config) { c.Model = " " }},
		{"zero retries", func(c *Config) { c.MaxRetries = 0 }},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"negative backoff", func(c *Config) { c.BackoffBase = -time.Second }},
		{"negative response length", func(c *Config) { c.MinResponseLen = -1 }},
		{"empty catalog path", func(c *Config) { c.CSVPath = "" }},
		{"empty address", func(c *Config) { c.Addr = "" }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: got %v, want ErrInvalid", tc.name, err)
		}
	}
}

func TestMappers(t *testing.T) {
	cfg := Default()
	cfg.APIKey = "bb_test"
	cfg.Model = "meta-llama/Llama-3.1-8B-Instruct"
	cfg.MaxRetries = 4

	llm := cfg.LLMConfig()
	if llm.APIKey != "bb_test" || llm.Model != "meta-llama/Llama-3.1-8B-Instruct" {
		t.Errorf("llm config = %+v", llm)
	}
	if llm.Temperature != 0.7 || llm.MaxTokens != 300 {
		t.Errorf("llm config lost generation defaults: %+v", llm)
	}

	policy := cfg.RetryPolicy()
	if policy.MaxRetries != 4 {
		t.Errorf("policy retries = %d, want 4", policy.MaxRetries)
	}
	if policy.Timeout != cfg.Timeout || policy.BackoffBase != cfg.BackoffBase {
		t.Errorf("policy = %+v", policy)
	}
}
