package decoder

import (
	"math"
	"sort"
	"unicode"

	"github.com/antzucaro/matchr"

	"github.com/wordsieve/wordsieve/pkg/dictionary"
	"github.com/wordsieve/wordsieve/pkg/keyboard"
)

// weightedChar is one key a tap could have meant, with the credit a match
// against it earns.
type weightedChar struct {
	char   rune
	weight float64
}

// search is the state of a single decode: a depth-first walk of the
// dictionary trie guided by the per-position proximity candidates, with a
// bounded edit budget for transpositions, omissions and insertions.
type search struct {
	set      *dictionary.Set
	prevWord string
	typed    string
	codes    []rune
	cands    [][]weightedChar
	alphabet []rune
	n        int
	commit   int
	maxEdits int
	mult     float64
	maxFreq  float64
	found    map[string]int
}

func newSearch(set *dictionary.Set, prevWord string, in Input) *search {
	n := in.InputLength

	codes := make([]rune, n)
	for i := 0; i < n; i++ {
		codes[i] = unicode.ToLower(in.Codes[i])
	}

	cands := make([][]weightedChar, n)
	for i := 0; i < n; i++ {
		cands[i] = tapCandidates(in.Proximity, in.Xs, in.Ys, codes, i)
	}

	maxEdits := 1 + n/4
	if maxEdits > 3 {
		maxEdits = 3
	}

	multLen := n
	if multLen > maxMultiplierLength {
		multLen = maxMultiplierLength
	}

	commit := in.CommitPoint
	if commit < 0 {
		commit = 0
	}

	return &search{
		set:      set,
		prevWord: prevWord,
		typed:    string(codes),
		codes:    codes,
		cands:    cands,
		alphabet: set.Alphabet(),
		n:        n,
		commit:   commit,
		maxEdits: maxEdits,
		mult:     math.Pow(letterMultiplier, float64(multLen)) * fullWordMultiplier,
		maxFreq:  float64(set.MaxFrequency()),
		found:    make(map[string]int),
	}
}

// tapCandidates lists the keys tap i could have meant. The literal key
// always earns full credit; neighbors are discounted by distance. Taps
// with no coordinate (apostrophes, symbols) admit only the literal code.
func tapCandidates(prox *keyboard.ProximityInfo, xs, ys []int, codes []rune, i int) []weightedChar {
	literal := codes[i]

	var near []keyboard.KeyDistance
	if prox != nil && i < len(xs) && i < len(ys) {
		near = prox.NearestKeys(xs[i], ys[i])
	}
	if len(near) == 0 {
		return []weightedChar{{char: literal, weight: 1.0}}
	}

	out := make([]weightedChar, 0, len(near))
	seenLiteral := false
	for _, kd := range near {
		if kd.Code == literal {
			out = append(out, weightedChar{char: kd.Code, weight: 1.0})
			seenLiteral = true
			continue
		}
		out = append(out, weightedChar{char: kd.Code, weight: proximityWeight(kd.Distance)})
	}
	if !seenLiteral {
		out = append(out, weightedChar{char: literal, weight: 1.0})
	}
	return out
}

// proximityWeight discounts a substitution by how far the tap landed from
// the substituted key, in key widths.
func proximityWeight(distance float64) float64 {
	w := 0.85 - 0.25*distance
	if w < minProximityWeight {
		return minProximityWeight
	}
	return w
}

func (s *search) run() []Candidate {
	s.explore(0, "", 1.0, 0)

	out := make([]Candidate, 0, len(s.found))
	for word, score := range s.found {
		out = append(out, Candidate{Word: word, Score: score})
	}

	dist := make(map[string]int, len(out))
	for _, c := range out {
		dist[c.Word] = matchr.DamerauLevenshtein(s.typed, c.Word)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if dist[out[i].Word] != dist[out[j].Word] {
			return dist[out[i].Word] < dist[out[j].Word]
		}
		return out[i].Word < out[j].Word
	})

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// explore advances the walk one step. pos is the next unconsumed tap,
// prefix the word built so far, weight the accumulated credit, edits the
// spent edit budget.
func (s *search) explore(pos int, prefix string, weight float64, edits int) {
	if !s.feasible(weight) {
		return
	}

	if pos == s.n {
		s.record(prefix, weight)
	}

	// Committed prefix: only the literal key, no edits.
	if pos < s.commit && pos < s.n {
		next := prefix + string(s.typedRune(pos))
		if s.set.HasPrefix(next) {
			s.explore(pos+1, next, weight, edits)
		}
		return
	}

	if pos < s.n {
		for _, wc := range s.cands[pos] {
			next := prefix + string(wc.char)
			if s.set.HasPrefix(next) {
				s.explore(pos+1, next, weight*wc.weight, edits)
			}
		}

		if edits < s.maxEdits {
			// Two taps in swapped order.
			if pos+1 < s.n {
				next := prefix + string(s.typedRune(pos+1)) + string(s.typedRune(pos))
				if s.set.HasPrefix(next) {
					s.explore(pos+2, next, weight*transpositionWeight, edits+1)
				}
			}
			// Tap that should not have happened.
			s.explore(pos+1, prefix, weight*omissionWeight, edits+1)
		}
	}

	// Key press the user missed entirely; also how candidates one letter
	// longer than the input are reached.
	if edits < s.maxEdits {
		for _, r := range s.alphabet {
			next := prefix + string(r)
			if s.set.HasPrefix(next) {
				s.explore(pos, next, weight*insertionWeight, edits+1)
			}
		}
	}
}

func (s *search) typedRune(pos int) rune {
	return s.codes[pos]
}

// record scores a completed path if the prefix is an actual dictionary
// word, keeping the best score per word.
func (s *search) record(word string, weight float64) {
	freq := s.set.Frequency(word)
	if freq == 0 {
		return
	}

	boost := 1.0
	if s.prevWord != "" {
		if bw := s.set.BigramWeight(s.prevWord, word); bw > 0 {
			boost = 1.0 + math.Min(0.5, float64(bw)/255.0)
		}
	}

	raw := float64(freq) * weight * boost * s.mult
	if raw > math.MaxInt32 {
		raw = math.MaxInt32
	}
	score := int(raw)
	if score < scoreFloor {
		return
	}

	if prev, ok := s.found[word]; !ok || score > prev {
		s.found[word] = score
	}
}

// feasible is the running lower-bound prune: a branch dies when even a
// max-frequency word matched perfectly from here could not beat the worst
// already-kept candidate.
func (s *search) feasible(weight float64) bool {
	optimistic := weight * s.maxFreq * 1.5 * s.mult
	if optimistic < scoreFloor {
		return false
	}
	if len(s.found) < maxSuggestions {
		return true
	}
	worst := math.MaxInt32
	for _, score := range s.found {
		if score < worst {
			worst = score
		}
	}
	return optimistic > float64(worst)
}
