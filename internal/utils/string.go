package utils

import "strconv"

// ToCodePoints converts a word into its sequence of unicode code points.
func ToCodePoints(s string) []rune {
	return []rune(s)
}

// TrailingSingleQuoteCount returns the length of the run of apostrophes at
// the end of the word. "word''" -> 2, "can't" -> 0.
func TrailingSingleQuoteCount(s string) int {
	runes := []rune(s)
	count := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] != '\'' {
			break
		}
		count++
	}
	return count
}

// StripTrailingSingleQuotes removes the trailing apostrophe run, if any.
func StripTrailingSingleQuotes(s string) string {
	n := TrailingSingleQuoteCount(s)
	if n == 0 {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-n])
}

// FormatWithCommas renders an int with thousands separators for CLI output.
func FormatWithCommas(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
