//go:build !tesseract

package ocr

import "fmt"

// TesseractAvailable reports whether Tesseract support is compiled in
const TesseractAvailable = false

// NewTesseractService is the stub used when Tesseract support is not compiled in
func NewTesseractService(languages ...string) (Service, error) {
	return nil, fmt.Errorf("tesseract support not compiled in (rebuild with -tags=tesseract)")
}
