package distracter

import (
	"testing"

	"github.com/wordsieve/wordsieve/pkg/suggest"
)

func TestNormalizedScoreZeroCases(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
		score  int
	}{
		{"empty before", "", "word", 100},
		{"empty after", "word", "", 100},
		{"zero score", "word", "ward", 0},
		{"negative score", "word", "ward", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizedScore(tt.before, tt.after, tt.score); got != 0 {
				t.Errorf("NormalizedScore(%q, %q, %d) = %v, want 0",
					tt.before, tt.after, tt.score, got)
			}
		})
	}
}

func TestNormalizedScoreMonotonicInScore(t *testing.T) {
	low := NormalizedScore("teh", "the", 1000)
	high := NormalizedScore("teh", "the", 2000)
	if high <= low {
		t.Errorf("higher raw score must normalize higher: %v <= %v", high, low)
	}
}

func TestNormalizedScoreDistancePenalty(t *testing.T) {
	near := NormalizedScore("cat", "bat", 1000)
	far := NormalizedScore("cat", "bog", 1000)
	if far >= near {
		t.Errorf("larger edit distance must normalize lower: %v >= %v", far, near)
	}
}

func TestNormalizedScoreIdenticalWords(t *testing.T) {
	// Equal 3-letter strings: the weight is 1 and the denominator is
	// 255 * 2^3 * 2 = 4080, so a raw score of 8160 lands exactly on 2.0.
	if got := NormalizedScore("abc", "abc", 8160); got != 2.0 {
		t.Errorf("NormalizedScore(abc, abc, 8160) = %v, want exactly 2.0", got)
	}
}

func TestNormalizedScoreFullDistanceIsZero(t *testing.T) {
	// Every character differs: weight clamps to 0.
	if got := NormalizedScore("abc", "xyz", 1000000); got != 0 {
		t.Errorf("fully distinct words must normalize to 0, got %v", got)
	}
}

func TestExceedsThresholdStrict(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  bool
	}{
		{"exactly at threshold", 8160, false},
		{"just above threshold", 8161, true},
		{"well below threshold", 100, false},
		{"well above threshold", 100000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := suggest.SuggestedWordInfo{Word: "abc", Score: tt.score}
			if got := exceedsThreshold(info, "abc", ScoreThreshold); got != tt.want {
				t.Errorf("exceedsThreshold(score=%d) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}
