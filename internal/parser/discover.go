package parser

import (
	"fmt"
	"path/filepath"
)

// FindLogFiles lists the benchmark logs with the given extension directly
// inside dir, in lexical order. A missing directory yields an empty list,
// not an error.
func FindLogFiles(dir, ext string) ([]string, error) {
	pattern := filepath.Join(dir, "*"+ext)
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s: %w", pattern, err)
	}
	return files, nil
}
