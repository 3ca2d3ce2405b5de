package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateArtifactPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"absolute path", "/data/transcripts/abc.txt", nil},
		{"relative path", "recordings/abc.webm", nil},
		{"empty", "", ErrEmptyPath},
		{"parent traversal", "/data/../etc/passwd", ErrPathTraversal},
		{"dot-only segment", "/data/.../x", ErrPathTraversal},
		{"null byte", "/data/x\x00.txt", ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArtifactPath(tt.path)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
