package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"algaid/internal/catalog"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteCatalog saves templates as a TOML catalog at path.
func WriteCatalog(t testing.TB, path string, templates ...catalog.SpeciesTemplate) {
	t.Helper()

	c, err := catalog.New(templates...)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	if err := catalog.Save(path, c); err != nil {
		t.Fatalf("catalog.Save: %v", err)
	}
}
