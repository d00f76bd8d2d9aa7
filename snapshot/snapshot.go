// Package snapshot provides the golden-file comparison helpers the
// translator tests use, following the UPDATE_GOLDEN workflow of the
// upstream snapshot suite: set UPDATE_GOLDEN=1 to rewrite goldens after
// an intentional change.
package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Compare checks got against the golden file at path. A missing golden
// is written on first run so a fresh checkout bootstraps itself; set
// UPDATE_GOLDEN=1 to force a rewrite after intentional output changes.
func Compare(t *testing.T, path, got string) {
	t.Helper()
	update := os.Getenv("UPDATE_GOLDEN") != ""

	want, err := os.ReadFile(path)
	if os.IsNotExist(err) || update {
		write(t, path, got)
		if err != nil {
			t.Logf("golden %s created", path)
			return
		}
		if update {
			return
		}
	} else if err != nil {
		t.Fatalf("reading golden %s: %v", path, err)
	}

	if normalize(string(want)) != normalize(got) {
		t.Errorf("output differs from golden %s\n--- want ---\n%s\n--- got ---\n%s", path, want, got)
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating golden dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing golden %s: %v", path, err)
	}
}

// normalize strips trailing whitespace per line and trailing newlines so
// editor noise does not fail a comparison.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
