/*
Package distracter decides whether a candidate word is a distracter: a
near-miss of a word already in the locale's dictionary, close enough by
typing proximity and dictionary confidence that learning it into an
adaptive vocabulary would corrupt the vocabulary with typo artifacts.

The verdict pipeline binds the locale's keyboard and dictionaries, maps
the tested word to the taps that would have typed it, asks the decoder
for its single most confident alternative, and compares that alternative's
normalized score against a fixed threshold. Every failure mode degrades to
"not a distracter": false negatives only slightly pollute the learned
dictionary, while false positives would block legitimate learning.
*/
package distracter

import (
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordsieve/wordsieve/internal/utils"
	"github.com/wordsieve/wordsieve/pkg/config"
	"github.com/wordsieve/wordsieve/pkg/decoder"
	"github.com/wordsieve/wordsieve/pkg/dictionary"
	"github.com/wordsieve/wordsieve/pkg/keyboard"
	"github.com/wordsieve/wordsieve/pkg/suggest"
)

// Filter is the distracter decision engine. It owns the locale-to-subtype
// registrations, the per-locale keyboard cache and the one active
// keyboard/dictionary binding.
//
// One query runs at a time: the instance is the lock granularity, callers
// needing concurrency use one Filter per locale or external exclusion.
type Filter struct {
	subtypes  map[dictionary.Locale]keyboard.Subtype
	keyboards map[dictionary.Locale]*keyboard.Keyboard
	active    *keyboard.Keyboard
	suggest   *suggest.Suggest

	keyboardWidth  int
	keyboardHeight int
	threshold      float64
	loadTimeout    time.Duration
	suggestTimeout time.Duration
}

// New creates a Filter from the enabled subtypes. When several subtypes
// name the same locale the first registration wins and later ones are
// dropped silently. An empty registration list is valid: every query then
// answers false.
func New(cfg *config.Config, enabledSubtypes []keyboard.Subtype) *Filter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	subtypes := make(map[dictionary.Locale]keyboard.Subtype)
	for _, subtype := range enabledSubtypes {
		if _, ok := subtypes[subtype.Locale]; ok {
			continue
		}
		subtypes[subtype.Locale] = subtype
	}

	facilitator := dictionary.NewFacilitator(cfg.Dict.DataDir)

	return &Filter{
		subtypes:       subtypes,
		keyboards:      make(map[dictionary.Locale]*keyboard.Keyboard),
		suggest:        suggest.New(facilitator, decoder.New()),
		keyboardWidth:  cfg.Keyboard.Width,
		keyboardHeight: cfg.Keyboard.Height,
		threshold:      cfg.Distracter.ScoreThreshold,
		loadTimeout:    cfg.LoadTimeout(),
		suggestTimeout: cfg.SuggestionTimeout(),
	}
}

// RegisteredLocales lists the locales that survived first-wins
// registration, sorted by tag.
func (f *Filter) RegisteredLocales() []dictionary.Locale {
	locales := make([]dictionary.Locale, 0, len(f.subtypes))
	for locale := range f.subtypes {
		locales = append(locales, locale)
	}
	sort.Slice(locales, func(i, j int) bool {
		return locales[i].String() < locales[j].String()
	})
	return locales
}

// loadKeyboardForLocale selects the cached keyboard for the locale, or
// builds and caches one from its registered subtype. Keyboards are cached
// for the Filter's lifetime.
func (f *Filter) loadKeyboardForLocale(newLocale dictionary.Locale) {
	if cached, ok := f.keyboards[newLocale]; ok {
		f.active = cached
		return
	}
	subtype, ok := f.subtypes[newLocale]
	if !ok {
		return
	}
	kb, err := keyboard.Build(subtype, f.keyboardWidth, f.keyboardHeight)
	if err != nil {
		log.Errorf("Keyboard build for %s failed: %v", newLocale, err)
		return
	}
	f.keyboards[newLocale] = kb
	f.active = kb
}

// loadDictionariesForLocale reloads the locale's dictionaries and blocks
// until they land or the load timeout passes. A timeout is logged and
// tolerated; the empty binding downstream yields a false verdict.
func (f *Filter) loadDictionariesForLocale(newLocale dictionary.Locale) {
	f.suggest.ResetDictionaries(newLocale)
	if err := f.suggest.WaitForMainDictionary(f.loadTimeout); err != nil {
		log.Errorf("Waiting for dictionaries of %s: %v", newLocale, err)
	}
}

// IsDistracter reports whether testedWord is a distracter to words in the
// locale's dictionaries. A zero locale, an unregistered locale, a missing
// keyboard, a dictionary-load timeout or a suggestion-wait timeout all
// yield false.
func (f *Filter) IsDistracter(prevWords suggest.PrevWordsContext, testedWord string,
	locale dictionary.Locale) bool {
	if locale.IsZero() {
		return false
	}
	if locale != f.suggest.CurrentLocale() {
		if _, ok := f.subtypes[locale]; !ok {
			log.Errorf("Locale %s is not enabled", locale)
			return false
		}
		f.loadKeyboardForLocale(locale)
		f.loadDictionariesForLocale(locale)
	}
	if f.active == nil {
		return false
	}

	codePoints := utils.ToCodePoints(testedWord)
	xs, ys := f.active.CoordinatesFor(codePoints)
	composer := suggest.NewComposer(testedWord, xs, ys, prevWords)

	// Trailing apostrophes are typing artifacts and must not affect the
	// match distance; composition still uses the full word.
	consideredWord := utils.StripTrailingSingleQuotes(testedWord)

	holder := newResultHolder[bool]()
	callback := func(suggestedWords suggest.SuggestedWords) {
		if suggestedWords.Size() > 1 {
			// Rank 0 is the typed word; the decoder's first suggestion
			// is at rank 1.
			firstSuggestion, _ := suggestedWords.Info(1)
			holder.set(exceedsThreshold(firstSuggestion, consideredWord, f.threshold))
		}
	}
	f.suggest.GetSuggestedWords(composer, f.active.Proximity(),
		true /* blockOffensive */, true /* allowCorrection */, 0,
		suggest.NotASequenceNumber, callback)

	return holder.get(false, f.suggestTimeout)
}
