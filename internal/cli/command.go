package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/imgtrans/internal"
	"codeberg.org/snonux/imgtrans/internal/logging"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "imgtrans <directory_path> [target_language]",
		Short: "Image Text Extractor and Translator",
		Long: `imgtrans extracts the text embedded in the images of a directory,
detects its language and translates it into a target language.

Images are the *.jpg, *.jpeg and *.png files directly inside the directory.
The target language is taken from the command line, then from
config/settings.json ("target_language"), and defaults to "en".

Examples:
  imgtrans ./scans                        # Translate into the configured language
  imgtrans ./scans de                     # Translate into German
  imgtrans --ocr-provider gemini ./scans  # Use Gemini instead of Cloud Vision
  imgtrans --list-languages               # Show supported target languages`,
		Args: func(cmd *cobra.Command, args []string) error {
			if flags.ListLanguages {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", flags.CfgFile, "settings file (JSON)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Local flags
	cmd.Flags().BoolVar(&flags.ListLanguages, "list-languages", false, "List the supported target languages and exit")

	// Provider flags
	cmd.Flags().StringVar(&flags.OCRProvider, "ocr-provider", flags.OCRProvider, "OCR service: vision, gemini or tesseract")
	cmd.Flags().StringVar(&flags.TranslationProvider, "translation-provider", flags.TranslationProvider, "Translation service: google, openai or gemini")

	// Model flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for translation")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used for OCR and translation")
	cmd.Flags().StringVar(&flags.TesseractLanguages, "tesseract-languages", flags.TesseractLanguages, "Tesseract languages, e.g. eng+fra")
}

// InitEnvironment loads a .env file when present and sets up logging
func InitEnvironment(flags *Flags) {
	// Ignore error if .env doesn't exist
	_ = godotenv.Load()

	if err := logging.Setup(flags.LogLevel, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using %s\n", err, logging.DefaultLevel)
		_ = logging.Setup(logging.DefaultLevel, os.Stderr)
	}
}
