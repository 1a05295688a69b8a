// Package decoder implements the proximity-aware incremental word decoder:
// given the taps that typed a word, it searches the bound dictionary for
// the words the user plausibly meant, tolerating fat-finger misses and a
// bounded number of edit mistakes.
package decoder

import (
	"github.com/charmbracelet/log"

	"github.com/wordsieve/wordsieve/pkg/dictionary"
	"github.com/wordsieve/wordsieve/pkg/keyboard"
)

// Input carries one decode query: the tap trace, the literal key codes,
// and the proximity data of the keyboard the taps landed on. Positions
// before CommitPoint are treated as typed with confidence and are never
// revised by the search.
type Input struct {
	Proximity   *keyboard.ProximityInfo
	Xs          []int
	Ys          []int
	Times       []int
	PointerIDs  []int
	Codes       []rune
	InputLength int
	CommitPoint int
	UseMainDict bool
}

// Candidate is one decoded word with its raw score. Scores are comparable
// only within a single result list; cross-word comparison goes through
// distracter.NormalizedScore.
type Candidate struct {
	Word  string
	Score int
}

// Decoder is the capability interface of the incremental decoder. A
// dictionary must be bound with SetDictionaries before any search; the
// previous word is optional bigram context for the next search only.
type Decoder interface {
	SetDictionaries(set *dictionary.Set)
	SetPrevWord(word string)
	Reset()
	GetSuggestions(in Input) []Candidate
}

const (
	// Default cap on returned candidates.
	maxSuggestions = 18

	// Candidates scoring below this floor are dropped.
	scoreFloor = 1

	// Per-letter score multiplier and the whole-word bonus. The same
	// constants anchor the normalization denominator in pkg/distracter,
	// so the two scales stay comparable.
	letterMultiplier   = 2.0
	fullWordMultiplier = 2.0

	// Exponent cap keeping raw scores inside int32 range for long words.
	maxMultiplierLength = 14
)

// Step weights. Proximity substitutions weaken with tap distance; the
// explicit edit operations carry fixed penalties and consume edit budget.
const (
	transpositionWeight = 0.80
	omissionWeight      = 0.55
	insertionWeight     = 0.55
	minProximityWeight  = 0.35
)

// incremental is the production Decoder over a dictionary Set's trie.
// Not safe for concurrent use; callers serialize queries.
type incremental struct {
	set      *dictionary.Set
	prevWord string
}

// New returns the production decoder with no dictionary bound.
func New() Decoder {
	return &incremental{}
}

// SetDictionaries rebinds the active dictionary set, replacing any prior
// binding.
func (d *incremental) SetDictionaries(set *dictionary.Set) {
	d.set = set
}

// SetPrevWord supplies bigram context for the next search.
func (d *incremental) SetPrevWord(word string) {
	d.prevWord = word
}

// Reset clears retained search state between unrelated queries.
func (d *incremental) Reset() {
	d.prevWord = ""
}

// GetSuggestions runs the proximity search and returns candidates sorted
// by score descending, ties broken by shorter edit distance then lexical
// order. Searching with no bound dictionary is a caller bug; it logs and
// returns an empty result.
func (d *incremental) GetSuggestions(in Input) []Candidate {
	if d.set == nil {
		log.Error("decoder: GetSuggestions called before SetDictionaries")
		return nil
	}

	n := in.InputLength
	if n <= 0 || n > len(in.Codes) {
		return nil
	}

	s := newSearch(d.set, d.prevWord, in)
	return s.run()
}
