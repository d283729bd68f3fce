package vocab

import "strings"

// DefaultMinLen is the shortest token kept by the counter.
const DefaultMinLen = 2

// Frequencies maps tokens to occurrence counts and remembers the order in
// which distinct tokens were first seen.
type Frequencies struct {
	order  []string
	counts map[string]int
}

// Len returns the number of distinct tokens.
func (f Frequencies) Len() int {
	return len(f.order)
}

// Count returns the occurrences of a token.
func (f Frequencies) Count(token string) int {
	return f.counts[token]
}

// Tokens returns distinct tokens in first-seen order.
func (f Frequencies) Tokens() []string {
	return append([]string(nil), f.order...)
}

// Total returns the number of counted tokens.
func (f Frequencies) Total() int {
	total := 0
	for _, c := range f.counts {
		total += c
	}
	return total
}

func (f *Frequencies) add(token string) {
	if f.counts == nil {
		f.counts = map[string]int{}
	}
	if _, ok := f.counts[token]; !ok {
		f.order = append(f.order, token)
	}
	f.counts[token]++
}

// CountFrequencies splits normalized text on whitespace and counts tokens of
// at least minLen bytes. Phrase tokens are measured in their joined form.
func CountFrequencies(normalized string, minLen int) Frequencies {
	if minLen < DefaultMinLen {
		minLen = DefaultMinLen
	}
	var freqs Frequencies
	for _, token := range strings.Fields(normalized) {
		if len(token) < minLen {
			continue
		}
		if strings.Trim(token, "'") == "" {
			continue
		}
		freqs.add(token)
	}
	return freqs
}
