package cli

import (
	"github.com/spf13/cobra"

	"codeberg.org/snonux/imgtrans/internal/config"
	"codeberg.org/snonux/imgtrans/internal/ocr"
	"codeberg.org/snonux/imgtrans/internal/translation"
)

// ResolveTargetLanguage picks the target language: the second positional
// argument wins over the settings file, which wins over DefaultTargetLanguage
func ResolveTargetLanguage(args []string, cfg config.Config) string {
	if len(args) > 1 {
		return args[1]
	}
	return cfg.GetStringOrDefault(config.KeyTargetLanguage, DefaultTargetLanguage)
}

// OCRConfig builds the OCR service configuration for a run
func OCRConfig(cmd *cobra.Command, flags *Flags, cfg config.Config, creds config.Credentials) *ocr.Config {
	return &ocr.Config{
		Provider:           setting(cmd, "ocr-provider", flags.OCRProvider, cfg, config.KeyOCRProvider),
		GoogleOptions:      creds.GoogleOptions(),
		GeminiKey:          creds.GeminiKey,
		GeminiModel:        setting(cmd, "gemini-model", flags.GeminiModel, cfg, config.KeyGeminiModel),
		TesseractLanguages: ocr.ParseLanguages(setting(cmd, "tesseract-languages", flags.TesseractLanguages, cfg, config.KeyTesseractLanguages)),
	}
}

// TranslationConfig builds the translation service configuration for a run
func TranslationConfig(cmd *cobra.Command, flags *Flags, cfg config.Config, creds config.Credentials) *translation.Config {
	return &translation.Config{
		Provider:      setting(cmd, "translation-provider", flags.TranslationProvider, cfg, config.KeyTranslationProvider),
		GoogleOptions: creds.GoogleOptions(),
		OpenAIKey:     creds.OpenAIKey,
		OpenAIModel:   setting(cmd, "openai-model", flags.OpenAIModel, cfg, config.KeyOpenAIModel),
		GeminiKey:     creds.GeminiKey,
		GeminiModel:   setting(cmd, "gemini-model", flags.GeminiModel, cfg, config.KeyGeminiModel),
	}
}

// setting returns an explicitly set flag, then the settings file value,
// then the flag default
func setting(cmd *cobra.Command, flagName, flagValue string, cfg config.Config, key string) string {
	if cmd.Flags().Changed(flagName) || !cfg.IsSet(key) {
		return flagValue
	}
	return cfg.GetString(key)
}
