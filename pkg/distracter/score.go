package distracter

import (
	"math"

	"github.com/antzucaro/matchr"

	"github.com/wordsieve/wordsieve/pkg/suggest"
)

// ScoreThreshold is the distracter cutoff. A rank-1 suggestion whose
// normalized score strictly exceeds it marks the tested word as a
// distracter. The greater the threshold, the more likely a tested word
// gets learned instead of rejected.
const ScoreThreshold = 2.0

// Normalization constants. The letter and whole-word multipliers mirror
// the decoder's scoring scale so normalized values stay comparable across
// word lengths.
const (
	maxInitialScore    = 255.0
	letterMultiplier   = 2.0
	fullWordMultiplier = 2.0
)

// NormalizedScore transforms a raw suggestion score into a length- and
// edit-distance-adjusted value comparable against ScoreThreshold
// regardless of word length or frequency scale. Zero for empty inputs or
// non-positive scores. For fixed strings the result is monotonic in the
// raw score.
func NormalizedScore(before, after string, score int) float64 {
	beforeLen := len([]rune(before))
	afterLen := len([]rune(after))
	if beforeLen == 0 || afterLen == 0 || score <= 0 {
		return 0
	}

	distance := matchr.DamerauLevenshtein(before, after)

	minLen := beforeLen
	maxLen := afterLen
	if afterLen < beforeLen {
		minLen = afterLen
		maxLen = beforeLen
	}

	maxScore := maxInitialScore * math.Pow(letterMultiplier, float64(minLen)) * fullWordMultiplier
	weight := 1.0 - float64(distance)/float64(maxLen)
	if weight < 0 {
		weight = 0
	}
	return float64(score) / maxScore * weight
}

// exceedsThreshold applies the strict threshold rule to one suggestion
// scored against the considered word.
func exceedsThreshold(suggestion suggest.SuggestedWordInfo, consideredWord string, threshold float64) bool {
	return NormalizedScore(consideredWord, suggestion.Word, suggestion.Score) > threshold
}
