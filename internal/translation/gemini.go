package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the Gemini model used when none is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiService implements Service with Gemini text generation
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService creates a Gemini backed translation service
func NewGeminiService(ctx context.Context, apiKey, model, baseURL string) (*GeminiService, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{client: client, model: model}, nil
}

// Name returns the service name
func (g *GeminiService) Name() string {
	return "Gemini"
}

// DetectLanguage asks the model for the ISO 639-1 code of text
func (g *GeminiService) DetectLanguage(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("Identify the language of the following text. Respond with only its ISO 639-1 language code, nothing else.\n\n%s", text)

	code, err := g.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.Trim(code, " .\"'`")), nil
}

// Translate asks the model to translate text from source into target
func (g *GeminiService) Translate(ctx context.Context, text, source, target string) (string, error) {
	prompt := fmt.Sprintf("Translate the following text from language '%s' to language '%s'. Respond with only the translation, nothing else.\n\n%s", source, target, text)

	return g.generate(ctx, prompt)
}

func (g *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
