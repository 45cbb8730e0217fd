package translation

import (
	"context"
	"testing"
)

func TestNewService(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		wantErr  bool
	}{
		{
			name:     "nil config uses google",
			config:   nil,
			wantName: "Cloud Translation",
		},
		{
			name:     "google",
			config:   &Config{Provider: "google"},
			wantName: "Cloud Translation",
		},
		{
			name:     "openai",
			config:   &Config{Provider: "openai", OpenAIKey: "test-key"},
			wantName: "OpenAI",
		},
		{
			name:    "openai without key",
			config:  &Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:     "gemini",
			config:   &Config{Provider: "GEMINI", GeminiKey: "test-key"},
			wantName: "Gemini",
		},
		{
			name:    "gemini without key",
			config:  &Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			config:  &Config{Provider: "deepl"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewService(context.Background(), tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewService() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if service.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", service.Name(), tt.wantName)
			}
		})
	}
}
