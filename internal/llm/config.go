package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the LLM provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // set for OpenRouter or other compatible endpoints
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the exponential backoff in WithRetry.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheapest reasonable model per vendor and a
// conservative retry policy.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConfigFromEnv overlays PLANISTA_* environment variables on the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.Provider = envOr("PLANISTA_LLM_PROVIDER", cfg.Provider)

	cfg.Anthropic.APIKey = os.Getenv("PLANISTA_ANTHROPIC_API_KEY")
	cfg.Anthropic.Model = envOr("PLANISTA_ANTHROPIC_MODEL", cfg.Anthropic.Model)

	cfg.OpenAI.APIKey = os.Getenv("PLANISTA_OPENAI_API_KEY")
	cfg.OpenAI.Model = envOr("PLANISTA_OPENAI_MODEL", cfg.OpenAI.Model)
	cfg.OpenAI.BaseURL = os.Getenv("PLANISTA_OPENAI_BASE_URL")

	cfg.Gemini.APIKey = os.Getenv("PLANISTA_GEMINI_API_KEY")
	cfg.Gemini.Model = envOr("PLANISTA_GEMINI_MODEL", cfg.Gemini.Model)

	cfg.OpenRouter.APIKey = os.Getenv("PLANISTA_OPENROUTER_API_KEY")
	cfg.OpenRouter.Model = envOr("PLANISTA_OPENROUTER_MODEL", cfg.OpenRouter.Model)

	return cfg
}

// DiscoverConfig probes the vendors' conventional API key variables and
// returns a Config for the first one set. The order favors the cheaper
// hosted models.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate confirms the selected provider has its API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("PLANISTA_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("PLANISTA_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("PLANISTA_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("PLANISTA_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
