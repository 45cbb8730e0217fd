//go:build tesseract

package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractAvailable reports whether Tesseract support is compiled in
const TesseractAvailable = true

// TesseractService implements Service with a local Tesseract engine
type TesseractService struct {
	languages     []string
	clientFactory func() *gosseract.Client
}

// NewTesseractService creates a Tesseract backed OCR service
func NewTesseractService(languages ...string) (Service, error) {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &TesseractService{
		languages:     languages,
		clientFactory: gosseract.NewClient,
	}, nil
}

// Name returns the service name
func (t *TesseractService) Name() string {
	return "Tesseract"
}

// DetectText recognizes the image with a fresh client. Tesseract failures
// are reported through the response error field, like a remote service
// reporting a bad image.
func (t *TesseractService) DetectText(ctx context.Context, content []byte) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := t.clientFactory()
	defer client.Close()

	if err := client.SetLanguage(t.languages...); err != nil {
		return nil, fmt.Errorf("set languages: %w", err)
	}
	if err := client.SetImageFromBytes(content); err != nil {
		return &Response{Error: fmt.Sprintf("set image: %v", err)}, nil
	}

	text, err := client.Text()
	if err != nil {
		return &Response{Error: fmt.Sprintf("recognize text: %v", err)}, nil
	}

	resp := &Response{}
	if text = strings.TrimSpace(text); text != "" {
		resp.Annotations = []string{text}
	}
	return resp, nil
}
