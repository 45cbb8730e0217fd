package testutil

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"codeberg.org/snonux/imgtrans/internal/ocr"
)

// MockOCRService mocks an OCR service. Responses and Errors are keyed by
// image file name, matched against content written by CreateTestImageDirectory.
type MockOCRService struct {
	Texts  map[string]string
	Faults map[string]string
	Errors map[string]error
	Calls  []string
}

// DetectText mocks text detection
func (m *MockOCRService) DetectText(ctx context.Context, content []byte) (*ocr.Response, error) {
	name := imageName(content)
	m.Calls = append(m.Calls, fmt.Sprintf("DetectText: %s", name))

	if err, ok := m.Errors[name]; ok {
		return nil, err
	}

	if fault, ok := m.Faults[name]; ok {
		return &ocr.Response{Error: fault}, nil
	}

	if text, ok := m.Texts[name]; ok {
		return &ocr.Response{Annotations: []string{text}}, nil
	}

	// Default response: no text found
	return &ocr.Response{}, nil
}

// Name returns the mock service name
func (m *MockOCRService) Name() string {
	return "mock OCR"
}

// MockTranslationService mocks a translation service
type MockTranslationService struct {
	Languages    map[string]string
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
}

// DetectLanguage mocks language detection
func (m *MockTranslationService) DetectLanguage(ctx context.Context, text string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Detect: %s", text))

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if lang, ok := m.Languages[text]; ok {
		return lang, nil
	}

	// Default mock detection
	return "und", nil
}

// Translate mocks translating text
func (m *MockTranslationService) Translate(ctx context.Context, text, source, target string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Translate: %s (%s->%s)", text, source, target))

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// Name returns the mock service name
func (m *MockTranslationService) Name() string {
	return "mock translation"
}

// MockExtractor mocks a text extractor, keyed by image base name
type MockExtractor struct {
	Texts  map[string]string
	Errors map[string]error
	Calls  []string
}

// ExtractText mocks extracting text from an image file
func (m *MockExtractor) ExtractText(ctx context.Context, imagePath string) (string, error) {
	name := filepath.Base(imagePath)
	m.Calls = append(m.Calls, name)

	if err, ok := m.Errors[name]; ok {
		return "", err
	}
	return m.Texts[name], nil
}

// MockTranslator mocks a detect-and-translate translator
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
}

// DetectAndTranslate mocks detecting and translating text
func (m *MockTranslator) DetectAndTranslate(ctx context.Context, text, target string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("%s -> %s", text, target))

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}
	return fmt.Sprintf("mock translation of %s", text), nil
}

// imageName recovers the file name from content written by
// CreateTestImageDirectory
func imageName(content []byte) string {
	for _, header := range [][]byte{PNGHeader, JPEGHeader} {
		if bytes.HasPrefix(content, header) {
			return string(content[len(header):])
		}
	}
	return string(content)
}
