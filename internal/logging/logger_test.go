package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "empty uses default", level: "", want: zerolog.InfoLevel},
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "upper case", level: "WARN", want: zerolog.WarnLevel},
		{name: "padded", level: "  error ", want: zerolog.ErrorLevel},
		{name: "unknown", level: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestSetup(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	if err := Setup("info", &buf); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	log.Debug().Msg("hidden message")
	log.Info().Str("language", "fr").Msg("detected language")

	output := buf.String()
	if strings.Contains(output, "hidden message") {
		t.Error("Debug message written at info level")
	}
	if !strings.Contains(output, "detected language") {
		t.Errorf("Expected info message in output, got %q", output)
	}
	if !strings.Contains(output, "run_id") {
		t.Errorf("Expected run_id field in output, got %q", output)
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	if err := Setup("loud", &bytes.Buffer{}); err == nil {
		t.Error("Expected error for invalid log level")
	}
}
