package vocab

import (
	"sort"
	"strings"

	"github.com/verte-zerg/tuivoc/internal/model"
)

// Membership reports whether a normalized word is already known.
type Membership interface {
	Contains(word string) bool
}

// Rank orders tokens by descending count, expands phrase tokens for display
// and drops known words. limit <= 0 keeps everything.
func Rank(freqs Frequencies, known Membership, limit int) []model.WordFrequency {
	out := make([]model.WordFrequency, 0, freqs.Len())
	for _, token := range freqs.order {
		word := DisplayWord(token)
		if known != nil && known.Contains(strings.ToUpper(word)) {
			continue
		}
		out = append(out, model.WordFrequency{Word: word, Count: freqs.counts[token]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DisplayWord expands an underscore-joined phrase token.
func DisplayWord(token string) string {
	return strings.ReplaceAll(token, "_", " ")
}
