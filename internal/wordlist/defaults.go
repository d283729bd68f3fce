package wordlist

import (
	"embed"
	"strings"
	"sync"
)

//go:embed data/known_words.txt data/phrasal_verbs.txt
var bundled embed.FS

var (
	loadOnce     sync.Once
	knownWords   []string
	phrasalVerbs []string
)

func loadBundled() {
	knownWords = mustReadBundled("data/known_words.txt")
	phrasalVerbs = mustReadBundled("data/phrasal_verbs.txt")
}

func mustReadBundled(name string) []string {
	data, err := bundled.ReadFile(name)
	if err != nil {
		panic("wordlist: missing bundled file " + name)
	}
	words, err := ReadWords(strings.NewReader(string(data)))
	if err != nil {
		panic("wordlist: unreadable bundled file " + name)
	}
	return words
}

// DefaultKnownWords returns the bundled seed for a fresh known-word set.
func DefaultKnownWords() []string {
	loadOnce.Do(loadBundled)
	return append([]string(nil), knownWords...)
}

// PhrasalVerbs returns the bundled phrase dictionary in priority order.
func PhrasalVerbs() []string {
	loadOnce.Do(loadBundled)
	return append([]string(nil), phrasalVerbs...)
}
