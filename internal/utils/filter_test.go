package utils

import "testing"

func TestIsValidInput(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"hello", true},
		{"can't", true},
		{"word2vec", true},
		{"", false},
		{"12345", false},
		{"aaaa", false},
		{"he@llo", false},
		{"aa", true},
	}
	for _, tt := range tests {
		if got := IsValidInput(tt.input); got != tt.want {
			t.Errorf("IsValidInput(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStripTrailingSingleQuotes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"word", "word"},
		{"word'", "word"},
		{"word''", "word"},
		{"can't", "can't"},
		{"'word", "'word"},
		{"''", ""},
	}
	for _, tt := range tests {
		if got := StripTrailingSingleQuotes(tt.input); got != tt.want {
			t.Errorf("StripTrailingSingleQuotes(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
