package languages

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"codeberg.org/snonux/imgtrans/internal/translation"
)

type fakeSource struct {
	languages []translation.Language
	err       error
	display   string
}

func (f *fakeSource) SupportedLanguages(ctx context.Context, displayLanguage string) ([]translation.Language, error) {
	f.display = displayLanguage
	return f.languages, f.err
}

func TestListSupportedLanguages(t *testing.T) {
	source := &fakeSource{languages: []translation.Language{
		{Code: "fr", Name: "French"},
		{Code: "bg", Name: "Bulgarian"},
		{Code: "zu"},
	}}

	var buf bytes.Buffer
	if err := NewLister(source).ListSupportedLanguages(context.Background(), &buf, "en"); err != nil {
		t.Fatalf("ListSupportedLanguages failed: %v", err)
	}

	if source.display != "en" {
		t.Errorf("Expected display language 'en', got %q", source.display)
	}

	output := buf.String()
	bg := strings.Index(output, "bg       Bulgarian")
	fr := strings.Index(output, "fr       French")
	zu := strings.Index(output, "  zu\n")
	if bg < 0 || fr < 0 || zu < 0 {
		t.Fatalf("Missing languages in output:\n%s", output)
	}
	if !(bg < fr && fr < zu) {
		t.Errorf("Languages not sorted by code:\n%s", output)
	}
	if !strings.Contains(output, "3 languages") {
		t.Errorf("Missing language count in output:\n%s", output)
	}
}

func TestListSupportedLanguages_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewLister(&fakeSource{}).ListSupportedLanguages(context.Background(), &buf, ""); err != nil {
		t.Fatalf("ListSupportedLanguages failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No languages found") {
		t.Errorf("Expected empty notice, got %q", buf.String())
	}
}

func TestListSupportedLanguages_Error(t *testing.T) {
	sourceErr := errors.New("permission denied")

	err := NewLister(&fakeSource{err: sourceErr}).ListSupportedLanguages(context.Background(), &bytes.Buffer{}, "en")
	if !errors.Is(err, sourceErr) {
		t.Errorf("Expected wrapped source error, got %v", err)
	}
}
