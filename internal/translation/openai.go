package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is the chat model used when none is configured
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIService implements Service with OpenAI chat completions
type OpenAIService struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIService creates an OpenAI backed translation service. baseURL is
// only set to point the client at a non-default endpoint.
func NewOpenAIService(apiKey, model, baseURL string) *OpenAIService {
	if model == "" {
		model = DefaultOpenAIModel
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIService{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(config),
	}
}

// Name returns the service name
func (o *OpenAIService) Name() string {
	return "OpenAI"
}

// DetectLanguage asks the model for the ISO 639-1 code of text
func (o *OpenAIService) DetectLanguage(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("Identify the language of the following text. Respond with only its ISO 639-1 language code, nothing else.\n\n%s", text)

	code, err := o.complete(ctx, prompt, 5)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.Trim(code, " .\"'`")), nil
}

// Translate asks the model to translate text from source into target
func (o *OpenAIService) Translate(ctx context.Context, text, source, target string) (string, error) {
	prompt := fmt.Sprintf("Translate the following text from language '%s' to language '%s'. Respond with only the translation, nothing else.\n\n%s", source, target, text)

	return o.complete(ctx, prompt, 0)
}

func (o *OpenAIService) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
