package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadWordsSkipsBlankAndComments(t *testing.T) {
	words, err := ReadWords(strings.NewReader("# phrases\n give up \n\nset up\n"))
	if err != nil {
		t.Fatalf("read words: %v", err)
	}
	if len(words) != 2 || words[0] != "give up" || words[1] != "set up" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n# nothing\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

func TestBundledDefaults(t *testing.T) {
	known := DefaultKnownWords()
	if len(known) == 0 {
		t.Fatalf("expected bundled known words")
	}
	for _, word := range known {
		if word != strings.ToUpper(word) {
			t.Fatalf("bundled known word %q is not upper case", word)
		}
	}
	phrases := PhrasalVerbs()
	if len(phrases) == 0 {
		t.Fatalf("expected bundled phrasal verbs")
	}
	for _, phrase := range phrases {
		if !ValidPhrase(phrase) {
			t.Fatalf("bundled phrase %q is not valid", phrase)
		}
	}
	known[0] = "MUTATED"
	if DefaultKnownWords()[0] == "MUTATED" {
		t.Fatalf("expected DefaultKnownWords to return a copy")
	}
}
