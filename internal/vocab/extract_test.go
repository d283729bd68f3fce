package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDoc(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestExpandPathsGlob(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, filepath.Join(dir, "a.srt"), "one")
	writeDoc(t, filepath.Join(dir, "season1", "b.srt"), "two")
	writeDoc(t, filepath.Join(dir, "notes.md"), "three")

	files, err := ExpandPaths([]string{filepath.Join(dir, "**", "*.srt"), filepath.Join(dir, "a.srt")})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
}

func TestExpandPathsNoMatch(t *testing.T) {
	_, err := ExpandPaths([]string{filepath.Join(t.TempDir(), "*.txt")})
	if !errors.Is(err, ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments, got %v", err)
	}
}

func TestExtractDocumentsCombinesFiles(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, filepath.Join(dir, "a.txt"), "Hello there")
	writeDoc(t, filepath.Join(dir, "b.txt"), "hello again")

	ex := Extractor{}
	freqs, files, err := ex.ExtractDocuments([]string{filepath.Join(dir, "*.txt")})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	if freqs.Count("HELLO") != 2 || freqs.Count("THERE") != 1 || freqs.Count("AGAIN") != 1 {
		t.Fatalf("unexpected counts: %v", freqs.Tokens())
	}
}

func TestExtractDocumentsUnreadable(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, filepath.Join(dir, "a.txt"), "Hello")
	ex := Extractor{}
	freqs, files, err := ex.ExtractDocuments([]string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "missing.txt")})
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if freqs.Len() != 0 || files != nil {
		t.Fatalf("expected no partial result, got %v %v", freqs.Tokens(), files)
	}
}
