package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DefaultPath is the settings file location, relative to the working directory
const DefaultPath = "config/settings.json"

// Recognized settings keys
const (
	KeyTargetLanguage      = "target_language"
	KeyOCRProvider         = "ocr_provider"
	KeyTranslationProvider = "translation_provider"
	KeyOpenAIKey           = "openai_key"
	KeyOpenAIModel         = "openai_model"
	KeyGeminiKey           = "gemini_key"
	KeyGeminiModel         = "gemini_model"
	KeyGoogleAPIKey        = "google_api_key"
	KeyTesseractLanguages  = "tesseract_languages"
)

// Config maps option names to values as read from the settings file
type Config map[string]any

// Load reads the JSON settings file at path. A missing file is not an error:
// it yields an empty Config. The file is re-read on every call.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("path", path).Msg("Configuration file not found")
			return Config{}, nil
		}
		return nil, fmt.Errorf("failed to load configuration file %s: %w", path, err)
	}

	return Config(v.AllSettings()), nil
}

// GetString returns a string setting, or an empty string if the key is
// missing or not a string
func (c Config) GetString(key string) string {
	value, ok := c[strings.ToLower(key)]
	if !ok {
		return ""
	}
	str, ok := value.(string)
	if !ok {
		return ""
	}
	return str
}

// GetStringOrDefault returns a string setting or defaultValue when it is unset
func (c Config) GetStringOrDefault(key, defaultValue string) string {
	if value := c.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

// IsSet reports whether the settings file provided a non-empty string for key
func (c Config) IsSet(key string) bool {
	return c.GetString(key) != ""
}

// TargetLanguage returns the configured target language, if any
func (c Config) TargetLanguage() string {
	return c.GetString(KeyTargetLanguage)
}
