package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
)

// Provider names
const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds configuration for the translation services
type Config struct {
	Provider string // "google", "openai" or "gemini"

	// Google Cloud Translation settings
	GoogleOptions []option.ClientOption

	// OpenAI settings
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	// Gemini settings
	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGoogle,
		OpenAIModel: DefaultOpenAIModel,
		GeminiModel: DefaultGeminiModel,
	}
}

// NewService creates the translation service selected by the configuration
func NewService(ctx context.Context, config *Config) (Service, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch strings.ToLower(config.Provider) {
	case ProviderGoogle:
		return NewGoogleService(config.GoogleOptions...), nil

	case ProviderOpenAI:
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIService(config.OpenAIKey, config.OpenAIModel, config.OpenAIBaseURL), nil

	case ProviderGemini:
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiService(ctx, config.GeminiKey, config.GeminiModel, config.GeminiBaseURL)

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}
