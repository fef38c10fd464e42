package rawio

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSafePath(t *testing.T) {
	abs := "/tmp/test.txt"
	if runtime.GOOS == "windows" {
		abs = `C:\Users\test.txt`
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"absolute", abs, true},
		{"absolute temp dir", filepath.Join(t.TempDir(), "x"), true},
		{"relative", "relative/path.txt", false},
		{"dot relative", "./x", false},
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"tab", "\t", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafePath(tt.path))
		})
	}
}
