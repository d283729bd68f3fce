package vocab

import (
	"strings"
	"testing"
)

func TestNormalizeStripsAndUppercases(t *testing.T) {
	got := Normalize("Hello, world! It's 3:15 -- ok?", nil)
	want := "HELLO  WORLD  IT'S         OK "
	if got != want {
		t.Fatalf("unexpected normalization:\n got %q\nwant %q", got, want)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize("", NewPhraseDictionary([]string{"give up"})); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestNormalizeReplacesNonASCIILetters(t *testing.T) {
	got := Normalize("café naïve", nil)
	if got != "CAF  NA VE" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNormalizeCollapsesPhrases(t *testing.T) {
	dict := NewPhraseDictionary([]string{"give up", "look forward to"})
	got := Normalize("Never give up. I look forward to it; GIVE UP!", dict)
	want := "NEVER GIVE_UP  I LOOK_FORWARD_TO IT  GIVE_UP "
	if got != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

func TestNormalizePhraseNeedsWordBoundary(t *testing.T) {
	dict := NewPhraseDictionary([]string{"set up"})
	got := Normalize("reset upward set up", dict)
	if got != "RESET UPWARD SET_UP" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNormalizePhraseNeedsSingleSpace(t *testing.T) {
	dict := NewPhraseDictionary([]string{"give up"})
	got := Normalize("give  up", dict)
	if got != "GIVE  UP" {
		t.Fatalf("expected double-spaced phrase to stay apart, got %q", got)
	}
}

func TestNormalizeFirstPhraseWinsOnOverlap(t *testing.T) {
	dict := NewPhraseDictionary([]string{"come up", "up with"})
	got := Normalize("come up with", dict)
	if got != "COME_UP WITH" {
		t.Fatalf("expected first dictionary entry to win, got %q", got)
	}

	dict = NewPhraseDictionary([]string{"up with", "come up"})
	got = Normalize("come up with", dict)
	if got != "COME UP_WITH" {
		t.Fatalf("expected first dictionary entry to win, got %q", got)
	}
}

func TestNormalizeIsLiteral(t *testing.T) {
	dict := NewPhraseDictionary([]string{"give up"})
	got := Normalize("he gave up", dict)
	if strings.Contains(got, "_") {
		t.Fatalf("expected no inflection matching, got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	dict := NewPhraseDictionary([]string{"give up", "up with", "come up"})
	inputs := []string{
		"",
		"The cat gave up. The cat give up again.",
		"1\n00:00:01,000 --> 00:00:02,000\nDon't come up with excuses!\n",
		"# Title\n\n*emphasis* and `code` — naïve café",
		"tabs\tand\r\nnewlines",
	}
	for _, in := range inputs {
		once := Normalize(in, dict)
		twice := Normalize(once, dict)
		if once != twice {
			t.Fatalf("normalize not idempotent for %q:\nonce  %q\ntwice %q", in, once, twice)
		}
	}
}

func TestNewPhraseDictionaryCleansEntries(t *testing.T) {
	dict := NewPhraseDictionary([]string{"give   up", "", "single", "GIVE UP", "set up"})
	phrases := dict.Phrases()
	if len(phrases) != 2 || phrases[0] != "GIVE UP" || phrases[1] != "SET UP" {
		t.Fatalf("unexpected phrases: %v", phrases)
	}
	if dict.Len() != 2 {
		t.Fatalf("expected length 2, got %d", dict.Len())
	}
}

func TestFoldAccents(t *testing.T) {
	if got := FoldAccents("café naïve"); got != "cafe naive" {
		t.Fatalf("unexpected fold %q", got)
	}
}
