package ocr

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
)

// Provider names
const (
	ProviderVision    = "vision"
	ProviderGemini    = "gemini"
	ProviderTesseract = "tesseract"
)

// Response is what an OCR service reports for one image
type Response struct {
	// Annotations are the detected text annotations; the first entry holds
	// the full detected text
	Annotations []string

	// Error is set when the service reports a failure for the image
	Error string
}

// Service defines the interface for OCR backends
type Service interface {
	// DetectText submits the raw image bytes and returns the service response
	DetectText(ctx context.Context, content []byte) (*Response, error)

	// Name returns the service name
	Name() string
}

// ServiceError is returned when the OCR service reports an error for an image
type ServiceError struct {
	Service string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

// Config holds configuration for the OCR services
type Config struct {
	Provider string // "vision", "gemini" or "tesseract"

	// Google Cloud Vision settings
	GoogleOptions []option.ClientOption

	// Gemini settings
	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string

	// Tesseract settings
	TesseractLanguages []string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:           ProviderVision,
		GeminiModel:        DefaultGeminiModel,
		TesseractLanguages: []string{"eng"},
	}
}

// NewService creates the OCR service selected by the configuration
func NewService(ctx context.Context, config *Config) (Service, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch strings.ToLower(config.Provider) {
	case ProviderVision:
		return NewVisionService(config.GoogleOptions...), nil

	case ProviderGemini:
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiService(ctx, config.GeminiKey, config.GeminiModel, config.GeminiBaseURL)

	case ProviderTesseract:
		return NewTesseractService(config.TesseractLanguages...)

	default:
		return nil, fmt.Errorf("unknown OCR provider: %s", config.Provider)
	}
}

// ParseLanguages splits a tesseract style language list such as "eng+fra"
func ParseLanguages(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == '+' || r == ',' || r == ' '
	})
}
