package vocab

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "episode.srt")
	other := filepath.Join(dir, "other.srt")
	writeDoc(t, doc, "first")
	writeDoc(t, other, "first")

	w, err := NewWatcher([]string{doc}, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		_ = w.Close()
	})
	w.Start(ctx)

	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}
	if err := os.WriteFile(doc, []byte("second"), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}

	abs, _ := filepath.Abs(doc)
	select {
	case changed := <-w.Changes():
		if len(changed) != 1 || changed[0] != abs {
			t.Fatalf("expected only %s, got %v", abs, changed)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change")
	}
}
