package processor

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"codeberg.org/snonux/imgtrans/internal/batch"
)

// TextExtractor extracts the text embedded in an image file
type TextExtractor interface {
	ExtractText(ctx context.Context, imagePath string) (string, error)
}

// Translator detects the language of a text and translates it
type Translator interface {
	DetectAndTranslate(ctx context.Context, text, target string) (string, error)
}

// Processor handles the batch processing of an image directory
type Processor struct {
	extractor  TextExtractor
	translator Translator
}

// NewProcessor creates a new image processor
func NewProcessor(extractor TextExtractor, translator Translator) *Processor {
	return &Processor{
		extractor:  extractor,
		translator: translator,
	}
}

// ProcessDirectory extracts and translates the text of every image in dir.
// Images are handled sequentially; the first failure aborts the batch and
// no partial results are returned. A directory without images yields empty
// results.
func (p *Processor) ProcessDirectory(ctx context.Context, dir, targetLanguage string) (*batch.Results, error) {
	imagePaths, err := batch.FindImages(dir)
	if err != nil {
		return nil, err
	}

	results := batch.NewResults()
	if len(imagePaths) == 0 {
		log.Warn().Str("directory", dir).Msg("No images found")
		return results, nil
	}

	for i, imagePath := range imagePaths {
		log.Info().Msgf("Processing %d/%d: %s", i+1, len(imagePaths), imagePath)

		translation, err := p.processImage(ctx, imagePath, targetLanguage)
		if err != nil {
			return nil, fmt.Errorf("failed to process %s: %w", imagePath, err)
		}

		results.Add(filepath.Base(imagePath), translation)
	}

	return results, nil
}

func (p *Processor) processImage(ctx context.Context, imagePath, targetLanguage string) (string, error) {
	extracted, err := p.extractor.ExtractText(ctx, imagePath)
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}
	log.Info().Str("image", imagePath).Str("text", extracted).Msg("Extracted text")

	translated, err := p.translator.DetectAndTranslate(ctx, extracted, targetLanguage)
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	log.Info().Str("image", imagePath).Str("text", translated).Msg("Translated text")

	return translated, nil
}

// PrintSummary writes the translations in processing order. Nothing is
// written for empty results.
func PrintSummary(w io.Writer, results *batch.Results) {
	if results == nil || results.Len() == 0 {
		return
	}

	fmt.Fprintf(w, "\n--- Final Translated Output ---\n")
	for _, name := range results.Names() {
		translation, _ := results.Get(name)
		fmt.Fprintf(w, "\nImage: %s\nTranslation: %s\n", name, translation)
	}
}
