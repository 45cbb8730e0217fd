package ocr

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the Gemini model used when none is configured
const DefaultGeminiModel = "gemini-2.0-flash"

const geminiPrompt = "Transcribe all text visible in this image exactly as written, " +
	"preserving line breaks. Respond with only the transcribed text. " +
	"If the image contains no text, respond with an empty message."

// GeminiService implements Service with a Gemini multimodal prompt
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService creates a Gemini backed OCR service. baseURL is only set
// to point the client at a non-default endpoint.
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

// DetectText asks the model to transcribe the image. Gemini has no separate
// error field, so the response only ever carries a single annotation.
func (g *GeminiService) DetectText(ctx context.Context, content []byte) (*Response, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(content, http.DetectContentType(content)),
		genai.NewPartFromText(geminiPrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	resp := &Response{}
	if text := strings.TrimSpace(result.Text()); text != "" {
		resp.Annotations = []string{text}
	}
	return resp, nil
}
