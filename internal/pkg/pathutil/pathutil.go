package pathutil

import (
	"errors"
	"strings"
)

var (
	ErrEmptyPath     = errors.New("path cannot be empty")
	ErrInvalidPath   = errors.New("path format is invalid")
	ErrPathTraversal = errors.New("path contains directory traversal")
)

// ValidateArtifactPath checks a transcript or recording location before it is
// stored. Paths are opaque to the store but must not smuggle traversal
// sequences or null bytes to whatever later opens them.
func ValidateArtifactPath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.Contains(path, "..") {
		return ErrPathTraversal
	}
	if strings.Contains(path, "\x00") {
		return ErrInvalidPath
	}
	for _, part := range strings.Split(path, "/") {
		if len(part) > 1 && strings.Trim(part, ".") == "" {
			return ErrPathTraversal
		}
	}
	return nil
}
