package translation

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// GoogleService implements Service with Google Cloud Translation (v2)
type GoogleService struct {
	opts    []option.ClientOption
	service *translate.Service
}

// NewGoogleService creates a Cloud Translation backed service. The API
// client is created on the first request.
func NewGoogleService(opts ...option.ClientOption) *GoogleService {
	return &GoogleService{opts: opts}
}

// Name returns the service name
func (g *GoogleService) Name() string {
	return "Cloud Translation"
}

// DetectLanguage returns the most likely language of text
func (g *GoogleService) DetectLanguage(ctx context.Context, text string) (string, error) {
	if err := g.connect(ctx); err != nil {
		return "", err
	}

	resp, err := g.service.Detections.List([]string{text}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("Cloud Translation API error: %w", err)
	}

	if len(resp.Detections) == 0 || len(resp.Detections[0]) == 0 || resp.Detections[0][0] == nil {
		return "", fmt.Errorf("no language detected")
	}

	return resp.Detections[0][0].Language, nil
}

// undetermined is the code Cloud Translation reports when it cannot tell
const undetermined = "und"

// Translate translates plain text from source into target. An empty or
// undetermined source lets the service detect it again.
func (g *GoogleService) Translate(ctx context.Context, text, source, target string) (string, error) {
	if err := g.connect(ctx); err != nil {
		return "", err
	}

	call := g.service.Translations.List([]string{text}, target).Format("text")
	if source != "" && source != undetermined {
		call = call.Source(source)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("Cloud Translation API error: %w", err)
	}

	if len(resp.Translations) == 0 || resp.Translations[0] == nil {
		return "", fmt.Errorf("no translation returned")
	}

	return resp.Translations[0].TranslatedText, nil
}

// Language is a supported language as reported by the service
type Language struct {
	Code string
	Name string
}

// SupportedLanguages lists the languages the service can translate into,
// with names localized into displayLanguage
func (g *GoogleService) SupportedLanguages(ctx context.Context, displayLanguage string) ([]Language, error) {
	if err := g.connect(ctx); err != nil {
		return nil, err
	}

	call := g.service.Languages.List()
	if displayLanguage != "" {
		call = call.Target(displayLanguage)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("Cloud Translation API error: %w", err)
	}

	languages := make([]Language, 0, len(resp.Languages))
	for _, lang := range resp.Languages {
		languages = append(languages, Language{Code: lang.Language, Name: lang.Name})
	}
	return languages, nil
}

func (g *GoogleService) connect(ctx context.Context) error {
	if g.service != nil {
		return nil
	}

	service, err := translate.NewService(ctx, g.opts...)
	if err != nil {
		return fmt.Errorf("failed to create Cloud Translation client: %w", err)
	}
	g.service = service
	return nil
}
