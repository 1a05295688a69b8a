package dictionary

import "strings"

// Locale identifies a language plus optional region, e.g. "en_US".
// It is a value type and immutable once constructed; the zero Locale
// means "no locale".
type Locale struct {
	Language string
	Region   string
}

// ParseLocale parses tags like "en-US", "en_US" or "fr" into a Locale.
// Language is lowercased, region uppercased.
func ParseLocale(tag string) Locale {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Locale{}
	}
	parts := strings.FieldsFunc(tag, func(r rune) bool {
		return r == '-' || r == '_'
	})
	locale := Locale{Language: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		locale.Region = strings.ToUpper(parts[1])
	}
	return locale
}

// IsZero reports whether the locale carries no identity.
func (l Locale) IsZero() bool {
	return l.Language == ""
}

// String renders the locale in the data directory naming form, "en_US".
func (l Locale) String() string {
	if l.IsZero() {
		return ""
	}
	if l.Region == "" {
		return l.Language
	}
	return l.Language + "_" + l.Region
}
