package ocr

import (
	"context"
	"fmt"
	"os"
)

// Extractor reads image files and extracts their text with an OCR service
type Extractor struct {
	service Service
}

// NewExtractor creates a new text extractor backed by service
func NewExtractor(service Service) *Extractor {
	return &Extractor{service: service}
}

// ExtractText returns the full text detected in the image at imagePath, or
// an empty string if the service found none. The whole file is read into
// memory before it is submitted.
func (e *Extractor) ExtractText(ctx context.Context, imagePath string) (string, error) {
	content, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	resp, err := e.service.DetectText(ctx, content)
	if err != nil {
		return "", fmt.Errorf("%s text detection failed: %w", e.service.Name(), err)
	}

	if resp.Error != "" {
		return "", &ServiceError{Service: e.service.Name(), Message: resp.Error}
	}

	if len(resp.Annotations) == 0 {
		return "", nil
	}
	return resp.Annotations[0], nil
}
