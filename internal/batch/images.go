package batch

import (
	"fmt"
	"path/filepath"
)

// ImagePatterns are the file patterns treated as images. Matching is case
// sensitive, so "scan.JPG" is not picked up.
var ImagePatterns = []string{"*.jpg", "*.jpeg", "*.png"}

// FindImages returns the image files directly inside dir, grouped by
// pattern in ImagePatterns order and sorted by name within each group.
// A directory that does not exist simply has no images.
func FindImages(dir string) ([]string, error) {
	var paths []string

	for _, pattern := range ImagePatterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to list images in %s: %w", dir, err)
		}
		paths = append(paths, matches...)
	}

	return paths, nil
}
