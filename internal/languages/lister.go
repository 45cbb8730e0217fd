package languages

import (
	"context"
	"fmt"
	"io"
	"sort"

	"codeberg.org/snonux/imgtrans/internal/translation"
)

// Source reports the languages a translation backend supports
type Source interface {
	SupportedLanguages(ctx context.Context, displayLanguage string) ([]translation.Language, error)
}

// Lister handles listing supported translation languages
type Lister struct {
	source Source
}

// NewLister creates a new language lister
func NewLister(source Source) *Lister {
	return &Lister{source: source}
}

// ListSupportedLanguages writes the supported languages sorted by code,
// with names localized into displayLanguage
func (l *Lister) ListSupportedLanguages(ctx context.Context, w io.Writer, displayLanguage string) error {
	languages, err := l.source.SupportedLanguages(ctx, displayLanguage)
	if err != nil {
		return fmt.Errorf("failed to list languages: %w", err)
	}

	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Code < languages[j].Code
	})

	fmt.Fprintln(w, "Supported target languages:")
	if len(languages) == 0 {
		fmt.Fprintln(w, "  No languages found")
		return nil
	}

	for _, lang := range languages {
		if lang.Name == "" {
			fmt.Fprintf(w, "  %s\n", lang.Code)
			continue
		}
		fmt.Fprintf(w, "  %-8s %s\n", lang.Code, lang.Name)
	}
	fmt.Fprintf(w, "\n%d languages\n", len(languages))

	return nil
}
