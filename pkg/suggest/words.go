package suggest

// WordKind distinguishes the typed word from decoder output.
type WordKind int

const (
	// KindTyped marks the identity entry at rank 0.
	KindTyped WordKind = iota
	// KindCorrection marks a decoder-produced alternative.
	KindCorrection
)

// NotASequenceNumber is the sequence value for one-shot queries that do
// not participate in incremental typing sessions.
const NotASequenceNumber = -1

// SuggestedWordInfo is one entry of a result list: a candidate word with
// its raw decoder score.
type SuggestedWordInfo struct {
	Word  string
	Score int
	Kind  WordKind
}

// SuggestedWords is a ranked result list. The typed (identity) word
// occupies rank 0; decoder alternatives begin at rank 1.
type SuggestedWords struct {
	words []SuggestedWordInfo
}

// Size returns the number of entries, identity included.
func (sw SuggestedWords) Size() int {
	return len(sw.words)
}

// Info returns the entry at rank, false when out of range.
func (sw SuggestedWords) Info(rank int) (SuggestedWordInfo, bool) {
	if rank < 0 || rank >= len(sw.words) {
		return SuggestedWordInfo{}, false
	}
	return sw.words[rank], true
}

// PrevWordsContext is the preceding-words context of a query, most recent
// word first.
type PrevWordsContext struct {
	Words []string
}

// LastWord returns the most recent previous word, "" when there is none.
func (p PrevWordsContext) LastWord() string {
	if len(p.Words) == 0 {
		return ""
	}
	return p.Words[0]
}

// Composer is a composed word: the typed word, the tap coordinates that
// typed it, and the preceding-words context. Built per query, never
// cached.
type Composer struct {
	Word       string
	CodePoints []rune
	Xs         []int
	Ys         []int
	Prev       PrevWordsContext
}

// NewComposer builds a composed word from the typed word and its tap
// coordinates.
func NewComposer(word string, xs, ys []int, prev PrevWordsContext) *Composer {
	return &Composer{
		Word:       word,
		CodePoints: []rune(word),
		Xs:         xs,
		Ys:         ys,
		Prev:       prev,
	}
}
