// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package frequency

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// englishStopWords are common English function words that carry no topical
// signal.
var englishStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
	"for", "of", "with", "by", "from", "up", "about", "into",
	"over", "after", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "do", "does", "did", "will",
	"would", "shall", "should", "may", "might", "must", "can",
	"could", "i", "you", "he", "she", "it", "we", "they", "this",
	"that", "these", "those",
}

// StopWords is a set of tokens excluded from counting.
type StopWords map[string]struct{}

// DefaultStopWords returns a fresh copy of the built-in English stop words.
func DefaultStopWords() StopWords {
	return NewStopWords(englishStopWords...)
}

// NewStopWords builds a set from words. Each word is normalized the same
// way document text is, so "Don't" and "dont" name the same entry. Words
// that normalize to nothing are ignored.
func NewStopWords(words ...string) StopWords {
	s := make(StopWords, len(words))
	s.Add(words...)
	return s
}

// Add inserts words into the set, normalizing each.
func (s StopWords) Add(words ...string) {
	for _, w := range words {
		for _, tok := range strings.Fields(Normalize(w)) {
			s[tok] = struct{}{}
		}
	}
}

// Contains reports whether tok is a stop word.
func (s StopWords) Contains(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Sorted returns the set's members in lexical order.
func (s StopWords) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// stopWordFile is the mapping form of a stop-word file.
type stopWordFile struct {
	StopWords []string `yaml:"stop_words"`
}

// LoadStopWordsFile reads extra stop words from a YAML file. The file may be
// a plain sequence of strings or a mapping with a stop_words key.
func LoadStopWordsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stop-word file %s: %w", path, err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parsing stop-word file %s: %w", path, err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var words []string
		if err := root.Decode(&words); err != nil {
			return nil, fmt.Errorf("decoding stop-word list in %s: %w", path, err)
		}
		return words, nil
	case yaml.MappingNode:
		var f stopWordFile
		if err := root.Decode(&f); err != nil {
			return nil, fmt.Errorf("decoding stop_words in %s: %w", path, err)
		}
		return f.StopWords, nil
	default:
		return nil, fmt.Errorf("stop-word file %s: expected a list or a stop_words mapping", path)
	}
}
