package wordlist

import "testing"

func TestValidPhrase(t *testing.T) {
	for _, phrase := range []string{"give up", "LOOK FORWARD TO", "get   rid of", "don't give up"} {
		if !ValidPhrase(phrase) {
			t.Fatalf("expected %q to be a valid phrase", phrase)
		}
	}
	for _, phrase := range []string{"", "up", "co-op shop", "café au lait", "' '", "run 2 go"} {
		if ValidPhrase(phrase) {
			t.Fatalf("expected %q to be rejected", phrase)
		}
	}
}

func TestSplitPhrases(t *testing.T) {
	valid, rejected := SplitPhrases([]string{"give up", "single", "log-in now", "set up"})
	if len(valid) != 2 || valid[0] != "give up" || valid[1] != "set up" {
		t.Fatalf("unexpected valid phrases: %v", valid)
	}
	if len(rejected) != 2 || rejected[0] != "single" || rejected[1] != "log-in now" {
		t.Fatalf("unexpected rejected phrases: %v", rejected)
	}
}
