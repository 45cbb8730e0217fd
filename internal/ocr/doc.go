// Package ocr extracts text from image files through an external OCR
// service. Google Cloud Vision is the default service; Gemini and a local
// Tesseract engine (built with -tags=tesseract) are available as
// alternatives.
package ocr
