// Package keyboard models per-locale keyboard geometry: key hitboxes, the
// coordinate lookup used to turn a word into the taps that would type it,
// and the proximity data the decoder uses to tolerate fat-finger misses.
package keyboard

import (
	"fmt"

	"github.com/wordsieve/wordsieve/pkg/dictionary"
)

// Subtype is one enabled input configuration: a locale bound to a named
// key layout.
type Subtype struct {
	Locale dictionary.Locale
	Layout string
}

// Layout describes the key rows of a layout plus each row's horizontal
// stagger, expressed in key widths.
type Layout struct {
	Name    string
	Rows    []string
	Stagger []float64
}

var layouts = map[string]Layout{
	"qwerty": {
		Name:    "qwerty",
		Rows:    []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"},
		Stagger: []float64{0, 0.5, 1.0},
	},
	"azerty": {
		Name:    "azerty",
		Rows:    []string{"azertyuiop", "qsdfghjklm", "wxcvbn"},
		Stagger: []float64{0, 0, 1.0},
	},
}

// RegisterLayout adds or replaces a named layout.
func RegisterLayout(layout Layout) {
	layouts[layout.Name] = layout
}

// LayoutFor returns the layout registered under name.
func LayoutFor(name string) (Layout, bool) {
	l, ok := layouts[name]
	return l, ok
}

// DefaultLayoutFor picks the conventional layout for a language when the
// subtype does not name one.
func DefaultLayoutFor(locale dictionary.Locale) string {
	if locale.Language == "fr" {
		return "azerty"
	}
	return "qwerty"
}

// Default keyboard dimensions, used when the caller has no display metrics.
const (
	DefaultWidth  = 480
	DefaultHeight = 180
)

// Build computes key geometry for a subtype at the given pixel dimensions.
func Build(subtype Subtype, width, height int) (*Keyboard, error) {
	name := subtype.Layout
	if name == "" {
		name = DefaultLayoutFor(subtype.Locale)
	}
	layout, ok := LayoutFor(name)
	if !ok {
		return nil, fmt.Errorf("keyboard: unknown layout %q", name)
	}
	return newKeyboard(subtype, layout, width, height), nil
}
