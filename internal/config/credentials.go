package config

import (
	"os"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// Environment variables consulted for credentials
const (
	EnvGoogleCredentials = "GOOGLE_APPLICATION_CREDENTIALS"
	EnvGoogleAPIKey      = "GOOGLE_API_KEY"
	EnvOpenAIKey         = "OPENAI_API_KEY"
	EnvGeminiKey         = "GEMINI_API_KEY"
)

// Credentials holds everything needed to authenticate against the external
// services. It is resolved once per run, before any client is constructed.
type Credentials struct {
	GoogleCredentialsFile string
	GoogleAPIKey          string
	OpenAIKey             string
	GeminiKey             string
}

// ResolveCredentials reads credentials from the environment first and falls
// back to the settings file. Missing Google credentials are only logged: the
// Google clients fail on their first call instead.
func ResolveCredentials(cfg Config) Credentials {
	creds := Credentials{
		GoogleCredentialsFile: os.Getenv(EnvGoogleCredentials),
		GoogleAPIKey:          lookup(EnvGoogleAPIKey, cfg, KeyGoogleAPIKey),
		OpenAIKey:             lookup(EnvOpenAIKey, cfg, KeyOpenAIKey),
		GeminiKey:             lookup(EnvGeminiKey, cfg, KeyGeminiKey),
	}

	if creds.GoogleCredentialsFile != "" {
		log.Info().Str("path", creds.GoogleCredentialsFile).Msg("Using credentials")
	} else {
		log.Warn().Msg(EnvGoogleCredentials + " not set")
	}

	return creds
}

// GoogleOptions returns the client options for the Google API clients. With
// neither a credentials file nor an API key the clients use application
// default credentials.
func (c Credentials) GoogleOptions() []option.ClientOption {
	var opts []option.ClientOption
	if c.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.GoogleCredentialsFile))
	}
	if c.GoogleAPIKey != "" {
		opts = append(opts, option.WithAPIKey(c.GoogleAPIKey))
	}
	return opts
}

func lookup(env string, cfg Config, key string) string {
	if value := os.Getenv(env); value != "" {
		return value
	}
	return cfg.GetString(key)
}
