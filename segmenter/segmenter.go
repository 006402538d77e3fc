package segmenter

import (
	"fmt"
	"unicode/utf8"

	"github.com/teatak/transfer/vocabulary"
	"github.com/vcaesar/cedar"
)

// Engine splits text into units that agree with a vocabulary.
type Engine interface {
	LoadVocabulary(path string) error
	Segment(text string) []string
}

// LongestMatch is a dictionary-driven segmenter.
// At each position it takes the longest vocabulary phrase starting there;
// characters where no phrase starts are gathered into one filler unit.
// It is safe for concurrent Segment calls once loading is done.
type LongestMatch struct {
	trie   *cedar.Cedar
	size   int
	maxLen int
}

var _ Engine = (*LongestMatch)(nil)

// NewLongestMatch creates a segmenter with an empty vocabulary.
func NewLongestMatch() *LongestMatch {
	return &LongestMatch{trie: cedar.New()}
}

// LoadVocabulary adds every phrase listed in an exported vocabulary file.
func (s *LongestMatch) LoadVocabulary(path string) error {
	words, err := vocabulary.Read(path)
	if err != nil {
		return err
	}
	return s.LoadWords(words)
}

// LoadWords adds phrases to the index. Empty strings are ignored.
func (s *LongestMatch) LoadWords(words []string) error {
	for _, word := range words {
		if word == "" {
			continue
		}
		key := []byte(word)
		if _, err := s.trie.Get(key); err == nil {
			continue
		}
		if err := s.trie.Insert(key, s.size); err != nil {
			return fmt.Errorf("index %q: %w", word, err)
		}
		s.size++
		if n := len(key); n > s.maxLen {
			s.maxLen = n
		}
	}
	return nil
}

// Len returns the number of distinct phrases indexed.
func (s *LongestMatch) Len() int {
	return s.size
}

// Segment cuts text into units. Joining the units gives back text.
func (s *LongestMatch) Segment(text string) []string {
	units := []string{}
	if text == "" {
		return units
	}

	b := []byte(text)
	filler := -1
	pos := 0
	for pos < len(b) {
		if n := s.matchAt(b, pos); n > 0 {
			if filler >= 0 {
				units = append(units, text[filler:pos])
				filler = -1
			}
			units = append(units, text[pos:pos+n])
			pos += n
			continue
		}
		if filler < 0 {
			filler = pos
		}
		_, size := utf8.DecodeRune(b[pos:])
		pos += size
	}
	if filler >= 0 {
		units = append(units, text[filler:])
	}
	return units
}

// matchAt returns the byte length of the longest phrase starting at pos, or 0.
// The trie is walked one rune at a time so a match never ends inside a rune.
func (s *LongestMatch) matchAt(b []byte, pos int) int {
	if s.size == 0 {
		return 0
	}
	longest := 0
	from := 0
	i := pos
	for i < len(b) && i-pos < s.maxLen {
		_, size := utf8.DecodeRune(b[i:])
		to, err := s.trie.Jump(b[i:i+size], from)
		if err != nil {
			break
		}
		i += size
		if _, err := s.trie.Value(to); err == nil {
			longest = i - pos
		}
		from = to
	}
	return longest
}
