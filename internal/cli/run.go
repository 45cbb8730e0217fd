package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/imgtrans/internal/config"
	"codeberg.org/snonux/imgtrans/internal/languages"
	"codeberg.org/snonux/imgtrans/internal/ocr"
	"codeberg.org/snonux/imgtrans/internal/processor"
	"codeberg.org/snonux/imgtrans/internal/translation"
)

// ServiceFactory builds the external services used by a run
type ServiceFactory struct {
	OCR         func(ctx context.Context, config *ocr.Config) (ocr.Service, error)
	Translation func(ctx context.Context, config *translation.Config) (translation.Service, error)
}

// DefaultServiceFactory returns the factory for the real services
func DefaultServiceFactory() ServiceFactory {
	return ServiceFactory{
		OCR:         ocr.NewService,
		Translation: translation.NewService,
	}
}

// Run executes the root command: it loads the settings, resolves the
// credentials, builds the services and processes the image directory
func Run(cmd *cobra.Command, args []string, flags *Flags, factory ServiceFactory) error {
	// Arguments are valid from here on, errors are not usage problems
	cmd.SilenceUsage = true
	ctx := cmd.Context()

	cfg, err := config.Load(flags.CfgFile)
	if err != nil {
		return err
	}

	targetLanguage := ResolveTargetLanguage(args, cfg)
	creds := config.ResolveCredentials(cfg)

	if flags.ListLanguages {
		lister := languages.NewLister(translation.NewGoogleService(creds.GoogleOptions()...))
		return lister.ListSupportedLanguages(ctx, cmd.OutOrStdout(), targetLanguage)
	}

	ocrService, err := factory.OCR(ctx, OCRConfig(cmd, flags, cfg, creds))
	if err != nil {
		return fmt.Errorf("failed to create OCR service: %w", err)
	}

	translationService, err := factory.Translation(ctx, TranslationConfig(cmd, flags, cfg, creds))
	if err != nil {
		return fmt.Errorf("failed to create translation service: %w", err)
	}

	proc := processor.NewProcessor(
		ocr.NewExtractor(ocrService),
		translation.NewTranslator(translationService),
	)

	results, err := proc.ProcessDirectory(ctx, args[0], targetLanguage)
	if err != nil {
		return err
	}

	processor.PrintSummary(cmd.OutOrStdout(), results)
	return nil
}
