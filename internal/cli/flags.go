package cli

import (
	"codeberg.org/snonux/imgtrans/internal/config"
	"codeberg.org/snonux/imgtrans/internal/logging"
	"codeberg.org/snonux/imgtrans/internal/ocr"
	"codeberg.org/snonux/imgtrans/internal/translation"
)

// DefaultTargetLanguage is used when neither the command line nor the
// settings file names a target language
const DefaultTargetLanguage = "en"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	LogLevel      string
	ListLanguages bool

	// Provider flags
	OCRProvider         string
	TranslationProvider string

	// Model flags
	OpenAIModel        string
	GeminiModel        string
	TesseractLanguages string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		CfgFile:             config.DefaultPath,
		LogLevel:            logging.DefaultLevel,
		OCRProvider:         ocr.ProviderVision,
		TranslationProvider: translation.ProviderGoogle,
		OpenAIModel:         translation.DefaultOpenAIModel,
		GeminiModel:         ocr.DefaultGeminiModel,
		TesseractLanguages:  "eng",
	}
}
