// ABOUTME: Centralized configuration for the research assistant
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Supported LLM providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds all configuration for the research assistant
type Config struct {
	// LLM settings
	Provider    string
	GeminiKey   string
	GeminiModel string
	OpenAIKey   string
	OpenAIURL   string
	OpenAIModel string
	Temperature float64
	Timeout     time.Duration
	MaxRetries  int
	RetryDelay  time.Duration

	// Search settings
	SearchTimeout     time.Duration
	SearchCacheTTL    time.Duration
	WikiLanguage      string
	WikiTopK          int
	WikiMaxChars      int
	DuckDuckGoResults int

	// Output settings
	OutputFile string
	LogLevel   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		Provider:          getEnv("RESEARCH_LLM_PROVIDER", ProviderGemini),
		GeminiKey:         getEnv("GOOGLE_API_KEY", os.Getenv("GEMINI_API_KEY")),
		GeminiModel:       getEnv("RESEARCH_GEMINI_MODEL", "gemini-2.5-flash-lite"),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIURL:         os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:       getEnv("RESEARCH_OPENAI_MODEL", "gpt-4o-mini"),
		Temperature:       getEnvFloat("RESEARCH_TEMPERATURE", 0.7),
		Timeout:           getEnvDuration("LLM_TIMEOUT", 30*time.Second),
		MaxRetries:        getEnvInt("LLM_MAX_RETRIES", 3),
		RetryDelay:        getEnvDuration("LLM_RETRY_DELAY", 2*time.Second),
		SearchTimeout:     getEnvDuration("SEARCH_TIMEOUT", 15*time.Second),
		SearchCacheTTL:    getEnvDuration("SEARCH_CACHE_TTL", 10*time.Minute),
		WikiLanguage:      getEnv("WIKIPEDIA_LANGUAGE", "en"),
		WikiTopK:          getEnvInt("WIKIPEDIA_TOP_K", 1),
		WikiMaxChars:      getEnvInt("WIKIPEDIA_MAX_CHARS", 100),
		DuckDuckGoResults: getEnvInt("DUCKDUCKGO_MAX_RESULTS", 5),
		OutputFile:        getEnv("RESEARCH_OUTPUT_FILE", "research_output.txt"),
		LogLevel:          getEnv("RESEARCH_LOG_LEVEL", "warn"),
	}

	return cfg, cfg.Validate()
}

// Validate checks that every setting is in range
func (c *Config) Validate() error {
	if c.Provider != ProviderGemini && c.Provider != ProviderOpenAI {
		return fmt.Errorf("RESEARCH_LLM_PROVIDER must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, c.Provider)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("RESEARCH_TEMPERATURE must be 0-2, got %f", c.Temperature)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("LLM_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.WikiTopK < 1 || c.WikiTopK > 10 {
		return fmt.Errorf("WIKIPEDIA_TOP_K must be 1-10, got %d", c.WikiTopK)
	}
	if c.WikiMaxChars < 1 {
		return fmt.Errorf("WIKIPEDIA_MAX_CHARS must be positive, got %d", c.WikiMaxChars)
	}
	if c.DuckDuckGoResults < 1 || c.DuckDuckGoResults > 20 {
		return fmt.Errorf("DUCKDUCKGO_MAX_RESULTS must be 1-20, got %d", c.DuckDuckGoResults)
	}
	if c.SearchCacheTTL < 0 {
		return fmt.Errorf("SEARCH_CACHE_TTL must not be negative, got %v", c.SearchCacheTTL)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("RESEARCH_OUTPUT_FILE must not be empty")
	}
	return nil
}

// APIKey returns the credential for the selected provider
func (c *Config) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIKey
	}
	return c.GeminiKey
}

// Model returns the chat model for the selected provider
func (c *Config) Model() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
