package wordlist

import "strings"

// ValidPhrase reports whether a phrase line can ever match normalized text:
// two or more words made of ASCII letters and apostrophes.
func ValidPhrase(phrase string) bool {
	fields := strings.Fields(phrase)
	if len(fields) < 2 {
		return false
	}
	for _, field := range fields {
		if !validWord(field) {
			return false
		}
	}
	return true
}

func validWord(word string) bool {
	letters := 0
	for i := 0; i < len(word); i++ {
		ch := word[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
			letters++
		case ch == '\'':
		default:
			return false
		}
	}
	return letters > 0
}

// SplitPhrases partitions lines into usable phrases and rejected lines.
func SplitPhrases(lines []string) (valid, rejected []string) {
	for _, line := range lines {
		if ValidPhrase(line) {
			valid = append(valid, line)
			continue
		}
		rejected = append(rejected, line)
	}
	return valid, rejected
}
