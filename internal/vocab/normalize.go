// Package vocab turns raw document text into ranked vocabulary.
package vocab

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PhraseDictionary is an ordered, immutable list of multi-word phrases that
// are collapsed into single tokens. Earlier entries win on overlap.
type PhraseDictionary struct {
	phrases  []string
	patterns []*regexp.Regexp
}

// NewPhraseDictionary upper-cases and compacts each phrase, dropping blanks,
// single words and duplicates while keeping first-seen order.
func NewPhraseDictionary(phrases []string) *PhraseDictionary {
	d := &PhraseDictionary{}
	seen := make(map[string]struct{}, len(phrases))
	for _, raw := range phrases {
		fields := strings.Fields(strings.ToUpper(raw))
		if len(fields) < 2 {
			continue
		}
		phrase := strings.Join(fields, " ")
		if _, ok := seen[phrase]; ok {
			continue
		}
		seen[phrase] = struct{}{}
		d.phrases = append(d.phrases, phrase)
		d.patterns = append(d.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(phrase)+`\b`))
	}
	return d
}

// Phrases returns the dictionary entries in priority order.
func (d *PhraseDictionary) Phrases() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.phrases...)
}

// Len returns the number of phrases.
func (d *PhraseDictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.phrases)
}

// Normalize strips everything except ASCII letters, whitespace and
// apostrophes, upper-cases the text and joins dictionary phrases with '_'.
func Normalize(raw string, phrases *PhraseDictionary) string {
	if raw == "" {
		return ""
	}
	text := strings.ToUpper(strings.Map(keepRune, raw))
	if phrases == nil {
		return text
	}
	for i, re := range phrases.patterns {
		token := strings.ReplaceAll(phrases.phrases[i], " ", "_")
		text = re.ReplaceAllLiteralString(text, token)
	}
	return text
}

func keepRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '\'':
		return r
	case unicode.IsSpace(r):
		return r
	default:
		return ' '
	}
}

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldAccents drops combining marks so "café" reads as "cafe".
func FoldAccents(raw string) string {
	folded, _, err := transform.String(accentFolder, raw)
	if err != nil {
		return raw
	}
	return folded
}
