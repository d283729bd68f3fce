package known

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

var (
	// ErrMalformedImport is returned for import data that is not valid JSON.
	ErrMalformedImport = errors.New("import is not valid JSON")
	// ErrNotArray is returned when the import's top level is not an array.
	ErrNotArray = errors.New("import is not a JSON array")
)

// ParseImport decodes a JSON array of words. Each element is coerced to a
// string and upper-cased; blank results are dropped.
func ParseImport(data []byte) ([]string, error) {
	if !json.Valid(data) {
		return nil, ErrMalformedImport
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	words := make([]string, 0, len(items))
	for _, item := range items {
		word := Normalize(coerce(item))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}

func coerce(raw json.RawMessage) string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return string(raw)
	}
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return formatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return string(raw)
		}
		return buf.String()
	}
}

func formatNumber(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Import merges the words of a JSON array into the set. The set is left
// untouched when data is rejected.
func (s *Set) Import(ctx context.Context, data []byte) (int, error) {
	words, err := ParseImport(data)
	if err != nil {
		return 0, err
	}
	return s.Merge(ctx, words)
}

// Export renders the known words as an indented JSON array.
func (s *Set) Export() ([]byte, error) {
	words := s.Words()
	if words == nil {
		words = []string{}
	}
	return json.MarshalIndent(words, "", "  ")
}

// ExportFileName names an export taken at now.
func ExportFileName(now time.Time) string {
	return now.Format("knownWords-20060102-150405.json")
}
