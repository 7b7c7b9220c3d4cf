package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "standings.png"))
	writeFile(t, filepath.Join(dir, "game.JPG"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, ".hidden.png"))
	writeFile(t, filepath.Join(dir, "week2", "roster.webp"))
	writeFile(t, filepath.Join(dir, ".trash", "old.png"))

	paths, stats, err := ScanDirectory(dir, nil, true)
	if err != nil {
		t.Fatalf("ScanDirectory() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "game.JPG"),
		filepath.Join(dir, "standings.png"),
		filepath.Join(dir, "week2", "roster.webp"),
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
	if stats.Matched != 3 {
		t.Errorf("Matched = %d, want 3", stats.Matched)
	}
}

func TestScanDirectoryExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"))
	writeFile(t, filepath.Join(dir, "b.webp"))

	paths, _, err := ScanDirectory(dir, []string{".PNG"}, true)
	if err != nil {
		t.Fatalf("ScanDirectory() error = %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "a.png" {
		t.Errorf("paths = %v, want only a.png", paths)
	}
}

func TestScanDirectoryEmptyRoot(t *testing.T) {
	if _, _, err := ScanDirectory("  ", nil, true); err == nil {
		t.Error("expected error for blank root")
	}
}
