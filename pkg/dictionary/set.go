// Package dictionary holds per-locale word data: a unigram trie with
// frequencies, a bigram table and an offensive-word set, plus the loading
// machinery that fills them from a locale's data directory.
package dictionary

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// Set is the dictionary pair for one locale: unigram word frequencies
// backed by a patricia trie, bigram weights keyed by previous word, and
// the set of words suppressed when offensive blocking is on.
//
// A Set is mutated only while loading; afterwards it is read-only and safe
// for concurrent readers.
type Set struct {
	trie      *patricia.Trie
	freqs     map[string]int
	bigrams   map[string]map[string]int
	offensive map[string]struct{}
	alphabet  map[rune]struct{}
	maxFreq   int
}

// NewSet returns an empty dictionary set.
func NewSet() *Set {
	return &Set{
		trie:      patricia.NewTrie(),
		freqs:     make(map[string]int),
		bigrams:   make(map[string]map[string]int),
		offensive: make(map[string]struct{}),
		alphabet:  make(map[rune]struct{}),
	}
}

// AddWord inserts a word with its frequency, replacing any prior entry.
func (s *Set) AddWord(word string, frequency int) {
	s.trie.Insert(patricia.Prefix(word), frequency)
	s.freqs[word] = frequency
	for _, r := range word {
		s.alphabet[r] = struct{}{}
	}
	if frequency > s.maxFreq {
		s.maxFreq = frequency
	}
}

// AddBigram records a weight for the (prev, word) pair.
func (s *Set) AddBigram(prev, word string, weight int) {
	m, ok := s.bigrams[prev]
	if !ok {
		m = make(map[string]int)
		s.bigrams[prev] = m
	}
	m[word] = weight
}

// MarkOffensive flags a word for suppression under offensive blocking.
func (s *Set) MarkOffensive(word string) {
	s.offensive[word] = struct{}{}
}

// Frequency returns the unigram frequency, 0 when the word is unknown.
func (s *Set) Frequency(word string) int {
	return s.freqs[word]
}

// BigramWeight returns the recorded weight for (prev, word), 0 if absent.
func (s *Set) BigramWeight(prev, word string) int {
	if m, ok := s.bigrams[prev]; ok {
		return m[word]
	}
	return 0
}

// IsOffensive reports whether the word is flagged.
func (s *Set) IsOffensive(word string) bool {
	_, ok := s.offensive[word]
	return ok
}

// HasPrefix reports whether any dictionary word starts with prefix.
// Used by the decoder to prune dead search branches.
func (s *Set) HasPrefix(prefix string) bool {
	return s.trie.MatchSubtree(patricia.Prefix(prefix))
}

// Alphabet returns every rune appearing in a dictionary word. The decoder
// enumerates these when hypothesizing a missed key press.
func (s *Set) Alphabet() []rune {
	runes := make([]rune, 0, len(s.alphabet))
	for r := range s.alphabet {
		runes = append(runes, r)
	}
	return runes
}

// MaxFrequency is the highest unigram frequency in the set, 0 when empty.
func (s *Set) MaxFrequency() int {
	return s.maxFreq
}

// Size returns the number of unigram entries.
func (s *Set) Size() int {
	return len(s.freqs)
}
