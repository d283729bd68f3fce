package vocab

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoDocuments is returned when paths expand to no readable document.
var ErrNoDocuments = errors.New("no documents matched")

// Extractor runs the normalize and count stages with fixed settings.
type Extractor struct {
	Phrases     *PhraseDictionary
	MinLen      int
	FoldAccents bool
}

// Extract normalizes text and counts its tokens.
func (e Extractor) Extract(text string) Frequencies {
	if e.FoldAccents {
		text = FoldAccents(text)
	}
	return CountFrequencies(Normalize(text, e.Phrases), e.MinLen)
}

// ExtractDocuments reads every document matched by paths and counts them as
// one text. Any unreadable file fails the whole import.
func (e Extractor) ExtractDocuments(paths []string) (Frequencies, []string, error) {
	files, err := ExpandPaths(paths)
	if err != nil {
		return Frequencies{}, nil, err
	}
	var b strings.Builder
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return Frequencies{}, nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		b.Write(data)
		b.WriteByte('\n')
	}
	return e.Extract(b.String()), files, nil
}

// ExpandPaths resolves plain paths and doublestar globs into a de-duplicated
// list of files in argument order.
func ExpandPaths(paths []string) ([]string, error) {
	seen := map[string]struct{}{}
	var files []string
	add := func(path string) {
		clean := filepath.Clean(path)
		if _, ok := seen[clean]; ok {
			return
		}
		seen[clean] = struct{}{}
		files = append(files, clean)
	}
	for _, pattern := range paths {
		if !containsGlob(pattern) {
			add(pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob error: %w", err)
		}
		for _, match := range matches {
			add(match)
		}
	}
	if len(files) == 0 {
		return nil, ErrNoDocuments
	}
	return files, nil
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
