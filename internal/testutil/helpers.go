package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// PNGHeader is the signature of a PNG file
var PNGHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// JPEGHeader is the signature of a JPEG file
var JPEGHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateTestImageDirectory creates a temporary directory holding the named
// files. Each file's content is its own name, prefixed with a matching image
// signature, so mocks can tell the images apart by their bytes.
func CreateTestImageDirectory(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		CreateTestFile(t, filepath.Join(dir, name), ImageContent(name))
	}
	return dir
}

// ImageContent returns the bytes CreateTestImageDirectory writes for name
func ImageContent(name string) []byte {
	header := JPEGHeader
	if filepath.Ext(name) == ".png" {
		header = PNGHeader
	}
	return append(append([]byte(nil), header...), name...)
}

// CreateTestConfig writes config/settings.json below dir
func CreateTestConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "config", "settings.json")
	CreateTestFile(t, path, []byte(content))
	return path
}

// Chdir changes the working directory for the duration of the test
func Chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		os.Chdir(old)
	})
}
