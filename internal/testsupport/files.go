package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteInput creates an input file with the given content under dir and
// returns its path. Content may carry arbitrary bytes, including sequences
// that are not valid UTF-8.
func WriteInput(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
