package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

func TestNewOpenAIService(t *testing.T) {
	service := NewOpenAIService("test-api-key", "", "")

	if service.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", service.apiKey)
	}
	if service.model != DefaultOpenAIModel {
		t.Errorf("Expected default model %q, got %q", DefaultOpenAIModel, service.model)
	}
	if service.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestOpenAIService_NoAPIKey(t *testing.T) {
	service := NewOpenAIService("", "", "")

	_, err := service.DetectLanguage(context.Background(), "Bonjour")
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
	if err.Error() != "OpenAI API key not found" {
		t.Errorf("Expected 'OpenAI API key not found' error, got: %v", err)
	}
}

func TestOpenAIService_DetectAndTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("Unexpected request path %s", r.URL.Path)
		}

		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}

		answer := "Hello"
		if strings.HasPrefix(req.Messages[0].Content, "Identify the language") {
			answer = " FR.\n"
		} else if !strings.Contains(req.Messages[0].Content, "from language 'fr' to language 'en'") {
			t.Errorf("Unexpected translation prompt: %q", req.Messages[0].Content)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: answer}},
			},
		})
	}))
	defer server.Close()

	service := NewOpenAIService("test-api-key", "", server.URL+"/v1")

	got, err := NewTranslator(service).DetectAndTranslate(context.Background(), "Bonjour", "en")
	if err != nil {
		t.Fatalf("DetectAndTranslate failed: %v", err)
	}
	if got != "Hello" {
		t.Errorf("DetectAndTranslate() = %q, want %q", got, "Hello")
	}
}

func TestOpenAIService_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	service := NewOpenAIService("test-api-key", "", server.URL+"/v1")

	if _, err := service.Translate(context.Background(), "Bonjour", "fr", "en"); err == nil {
		t.Error("Expected error when no choices are returned")
	}
}

func TestOpenAIService_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	got, err := NewTranslator(NewOpenAIService(apiKey, "", "")).DetectAndTranslate(context.Background(), "Hola Mundo", "en")
	if err != nil {
		t.Errorf("DetectAndTranslate failed: %v", err)
	}
	if got == "" {
		t.Error("Got empty translation")
	}

	t.Logf("Translation of 'Hola Mundo': %s", got)
}
