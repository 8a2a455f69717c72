// ABOUTME: Tests for centralized configuration system
// ABOUTME: Verifies environment variable parsing and validation
package config

import (
	"testing"
	"time"
)

var configEnvKeys = []string{
	"RESEARCH_LLM_PROVIDER", "GOOGLE_API_KEY", "GEMINI_API_KEY", "RESEARCH_GEMINI_MODEL",
	"OPENAI_API_KEY", "OPENAI_BASE_URL", "RESEARCH_OPENAI_MODEL", "RESEARCH_TEMPERATURE",
	"LLM_TIMEOUT", "LLM_MAX_RETRIES", "LLM_RETRY_DELAY", "SEARCH_TIMEOUT", "SEARCH_CACHE_TTL",
	"WIKIPEDIA_LANGUAGE", "WIKIPEDIA_TOP_K", "WIKIPEDIA_MAX_CHARS", "DUCKDUCKGO_MAX_RESULTS",
	"RESEARCH_OUTPUT_FILE", "RESEARCH_LOG_LEVEL",
}

// clearEnv blanks every variable Load reads; empty values fall back to defaults
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Provider != ProviderGemini {
		t.Errorf("Provider = %s, want %s", cfg.Provider, ProviderGemini)
	}
	if cfg.GeminiModel != "gemini-2.5-flash-lite" {
		t.Errorf("GeminiModel = %s, want gemini-2.5-flash-lite", cfg.GeminiModel)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %s, want gpt-4o-mini", cfg.OpenAIModel)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %f, want 0.7", cfg.Temperature)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.RetryDelay != 2*time.Second {
		t.Errorf("RetryDelay = %v, want 2s", cfg.RetryDelay)
	}
	if cfg.SearchTimeout != 15*time.Second {
		t.Errorf("SearchTimeout = %v, want 15s", cfg.SearchTimeout)
	}
	if cfg.SearchCacheTTL != 10*time.Minute {
		t.Errorf("SearchCacheTTL = %v, want 10m", cfg.SearchCacheTTL)
	}
	if cfg.WikiLanguage != "en" {
		t.Errorf("WikiLanguage = %s, want en", cfg.WikiLanguage)
	}
	if cfg.WikiTopK != 1 {
		t.Errorf("WikiTopK = %d, want 1", cfg.WikiTopK)
	}
	if cfg.WikiMaxChars != 100 {
		t.Errorf("WikiMaxChars = %d, want 100", cfg.WikiMaxChars)
	}
	if cfg.DuckDuckGoResults != 5 {
		t.Errorf("DuckDuckGoResults = %d, want 5", cfg.DuckDuckGoResults)
	}
	if cfg.OutputFile != "research_output.txt" {
		t.Errorf("OutputFile = %s, want research_output.txt", cfg.OutputFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", cfg.LogLevel)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("RESEARCH_LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("RESEARCH_OPENAI_MODEL", "gpt-4")
	t.Setenv("RESEARCH_TEMPERATURE", "0.2")
	t.Setenv("LLM_TIMEOUT", "60s")
	t.Setenv("LLM_MAX_RETRIES", "5")
	t.Setenv("LLM_RETRY_DELAY", "3s")
	t.Setenv("SEARCH_CACHE_TTL", "0s")
	t.Setenv("WIKIPEDIA_LANGUAGE", "de")
	t.Setenv("WIKIPEDIA_TOP_K", "3")
	t.Setenv("WIKIPEDIA_MAX_CHARS", "4000")
	t.Setenv("DUCKDUCKGO_MAX_RESULTS", "10")
	t.Setenv("RESEARCH_OUTPUT_FILE", "notes.txt")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider = %s, want openai", cfg.Provider)
	}
	if cfg.APIKey() != "test-key" {
		t.Errorf("APIKey() = %s, want test-key", cfg.APIKey())
	}
	if cfg.Model() != "gpt-4" {
		t.Errorf("Model() = %s, want gpt-4", cfg.Model())
	}
	if cfg.OpenAIURL != "http://localhost:11434/v1" {
		t.Errorf("OpenAIURL = %s, want http://localhost:11434/v1", cfg.OpenAIURL)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("Temperature = %f, want 0.2", cfg.Temperature)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v, want 60s", cfg.Timeout)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
	if cfg.RetryDelay != 3*time.Second {
		t.Errorf("RetryDelay = %v, want 3s", cfg.RetryDelay)
	}
	if cfg.SearchCacheTTL != 0 {
		t.Errorf("SearchCacheTTL = %v, want 0", cfg.SearchCacheTTL)
	}
	if cfg.WikiLanguage != "de" {
		t.Errorf("WikiLanguage = %s, want de", cfg.WikiLanguage)
	}
	if cfg.WikiTopK != 3 {
		t.Errorf("WikiTopK = %d, want 3", cfg.WikiTopK)
	}
	if cfg.WikiMaxChars != 4000 {
		t.Errorf("WikiMaxChars = %d, want 4000", cfg.WikiMaxChars)
	}
	if cfg.DuckDuckGoResults != 10 {
		t.Errorf("DuckDuckGoResults = %d, want 10", cfg.DuckDuckGoResults)
	}
	if cfg.OutputFile != "notes.txt" {
		t.Errorf("OutputFile = %s, want notes.txt", cfg.OutputFile)
	}
}

func TestLoad_GeminiKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.APIKey() != "gemini-key" {
		t.Errorf("APIKey() = %s, want gemini-key", cfg.APIKey())
	}

	t.Setenv("GOOGLE_API_KEY", "google-key")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.APIKey() != "google-key" {
		t.Errorf("APIKey() = %s, want google-key (GOOGLE_API_KEY wins)", cfg.APIKey())
	}
}

func TestLoad_InvalidNumbersUseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_MAX_RETRIES", "many")
	t.Setenv("LLM_TIMEOUT", "soon")
	t.Setenv("RESEARCH_TEMPERATURE", "warm")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want default 3", cfg.MaxRetries)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want default 30s", cfg.Timeout)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %f, want default 0.7", cfg.Temperature)
	}
}

func validConfig() *Config {
	return &Config{
		Provider:          ProviderGemini,
		Temperature:       0.7,
		MaxRetries:        3,
		WikiTopK:          1,
		WikiMaxChars:      100,
		DuckDuckGoResults: 5,
		OutputFile:        "research_output.txt",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown provider", func(c *Config) { c.Provider = "anthropic" }, true},
		{"temperature too high", func(c *Config) { c.Temperature = 2.5 }, true},
		{"temperature negative", func(c *Config) { c.Temperature = -0.1 }, true},
		{"max retries too high", func(c *Config) { c.MaxRetries = 15 }, true},
		{"max retries negative", func(c *Config) { c.MaxRetries = -1 }, true},
		{"wiki top k zero", func(c *Config) { c.WikiTopK = 0 }, true},
		{"wiki max chars zero", func(c *Config) { c.WikiMaxChars = 0 }, true},
		{"ddg results too high", func(c *Config) { c.DuckDuckGoResults = 50 }, true},
		{"negative cache ttl", func(c *Config) { c.SearchCacheTTL = -time.Second }, true},
		{"empty output file", func(c *Config) { c.OutputFile = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
