package keyboard

import (
	"math"
	"sort"
	"unicode"
)

// Key is one key's hitbox on a concrete keyboard.
type Key struct {
	Code   rune
	X      int
	Y      int
	Width  int
	Height int
}

// CenterX returns the horizontal center of the key.
func (k Key) CenterX() int { return k.X + k.Width/2 }

// CenterY returns the vertical center of the key.
func (k Key) CenterY() int { return k.Y + k.Height/2 }

// NotACoordinate marks a code point with no key on the layout.
const NotACoordinate = -1

// Keyboard is the built geometry for one subtype. Read-only after Build.
type Keyboard struct {
	subtype   Subtype
	keys      map[rune]Key
	keyWidth  int
	keyHeight int
	proximity *ProximityInfo
}

func newKeyboard(subtype Subtype, layout Layout, width, height int) *Keyboard {
	longestRow := 0
	for _, row := range layout.Rows {
		if n := len([]rune(row)); n > longestRow {
			longestRow = n
		}
	}

	keyWidth := width / longestRow
	keyHeight := height / len(layout.Rows)

	keys := make(map[rune]Key)
	for r, row := range layout.Rows {
		offset := 0.0
		if r < len(layout.Stagger) {
			offset = layout.Stagger[r]
		}
		for c, code := range []rune(row) {
			keys[code] = Key{
				Code:   code,
				X:      int(float64(keyWidth) * (float64(c) + offset)),
				Y:      r * keyHeight,
				Width:  keyWidth,
				Height: keyHeight,
			}
		}
	}

	kb := &Keyboard{
		subtype:   subtype,
		keys:      keys,
		keyWidth:  keyWidth,
		keyHeight: keyHeight,
	}
	kb.proximity = newProximityInfo(keys, float64(keyWidth)*proximityRadiusInKeyWidths)
	return kb
}

// Subtype returns the configuration this keyboard was built from.
func (kb *Keyboard) Subtype() Subtype { return kb.subtype }

// CoordinatesFor maps code points to the tap coordinates one would use to
// type them: the center of each code point's key. Code points with no key
// (digits, apostrophes, symbols) map to (NotACoordinate, NotACoordinate).
// Uppercase letters resolve to their lowercase key.
func (kb *Keyboard) CoordinatesFor(codePoints []rune) (xs, ys []int) {
	xs = make([]int, len(codePoints))
	ys = make([]int, len(codePoints))
	for i, cp := range codePoints {
		key, ok := kb.keys[unicode.ToLower(cp)]
		if !ok {
			xs[i] = NotACoordinate
			ys[i] = NotACoordinate
			continue
		}
		xs[i] = key.CenterX()
		ys[i] = key.CenterY()
	}
	return xs, ys
}

// Proximity returns the keyboard's proximity lookup.
func (kb *Keyboard) Proximity() *ProximityInfo { return kb.proximity }

// Taps within this many key widths of a key center count as candidates
// for that key.
const proximityRadiusInKeyWidths = 1.5

// KeyDistance is a nearby key with its distance from the tap, in key
// widths.
type KeyDistance struct {
	Code     rune
	Distance float64
}

// ProximityInfo answers "which keys could this tap have meant". Read-only
// after construction.
type ProximityInfo struct {
	keys     []Key
	radius   float64
	keyWidth float64
}

func newProximityInfo(keys map[rune]Key, radius float64) *ProximityInfo {
	all := make([]Key, 0, len(keys))
	keyWidth := 0.0
	for _, k := range keys {
		all = append(all, k)
		keyWidth = float64(k.Width)
	}
	return &ProximityInfo{keys: all, radius: radius, keyWidth: keyWidth}
}

// NearestKeys returns the keys whose centers fall within the proximity
// radius of the tap, sorted nearest first, distances normalized to key
// widths. A tap at a key's center yields that key at distance 0, first.
// Returns nil for taps with no coordinate.
func (p *ProximityInfo) NearestKeys(x, y int) []KeyDistance {
	if x == NotACoordinate || y == NotACoordinate {
		return nil
	}

	var near []KeyDistance
	for _, k := range p.keys {
		dx := float64(x - k.CenterX())
		dy := float64(y - k.CenterY())
		d := math.Sqrt(dx*dx + dy*dy)
		if d <= p.radius {
			near = append(near, KeyDistance{Code: k.Code, Distance: d / p.keyWidth})
		}
	}

	sort.Slice(near, func(i, j int) bool {
		if near[i].Distance != near[j].Distance {
			return near[i].Distance < near[j].Distance
		}
		return near[i].Code < near[j].Code
	})
	return near
}
