package translation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Service defines the interface for language detection and translation backends
type Service interface {
	// DetectLanguage returns the language code of text
	DetectLanguage(ctx context.Context, text string) (string, error)

	// Translate translates text from source into target
	Translate(ctx context.Context, text, source, target string) (string, error)

	// Name returns the service name
	Name() string
}

// Translator detects the source language of a text and translates it
type Translator struct {
	service Service
}

// NewTranslator creates a new translator backed by service
func NewTranslator(service Service) *Translator {
	return &Translator{service: service}
}

// DetectAndTranslate detects the language of text and translates it into
// target. The detected language is logged, not returned. Empty text is
// handed to the service as is.
func (t *Translator) DetectAndTranslate(ctx context.Context, text, target string) (string, error) {
	source, err := t.service.DetectLanguage(ctx, text)
	if err != nil {
		return "", fmt.Errorf("%s language detection failed: %w", t.service.Name(), err)
	}

	log.Info().Str("language", source).Msg("Detected language")

	translated, err := t.service.Translate(ctx, text, source, target)
	if err != nil {
		return "", fmt.Errorf("%s translation failed: %w", t.service.Name(), err)
	}

	return translated, nil
}
