package distracter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wordsieve/wordsieve/pkg/config"
	"github.com/wordsieve/wordsieve/pkg/dictionary"
	"github.com/wordsieve/wordsieve/pkg/keyboard"
	"github.com/wordsieve/wordsieve/pkg/suggest"
)

// newTestFilter builds a Filter over a temp data directory with one
// dictionary per locale, each given as "word freq" lines.
func newTestFilter(t *testing.T, dicts map[string]string, subtypes []keyboard.Subtype) *Filter {
	t.Helper()

	dataDir := t.TempDir()
	for locale, lines := range dicts {
		dir := filepath.Join(dataDir, locale)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "words.txt"), []byte(lines), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	cfg := config.DefaultConfig()
	cfg.Dict.DataDir = dataDir
	cfg.Distracter.SuggestionTimeoutMs = 100
	return New(cfg, subtypes)
}

func enUS() dictionary.Locale { return dictionary.ParseLocale("en-US") }
func frFR() dictionary.Locale { return dictionary.ParseLocale("fr-FR") }

func englishSubtypes() []keyboard.Subtype {
	return []keyboard.Subtype{{Locale: dictionary.ParseLocale("en-US"), Layout: "qwerty"}}
}

func TestZeroLocaleNeverDistracter(t *testing.T) {
	f := newTestFilter(t, map[string]string{"en_US": "the 60000\n"}, englishSubtypes())
	if f.IsDistracter(suggest.PrevWordsContext{}, "teh", dictionary.Locale{}) {
		t.Error("zero locale answered true")
	}
}

func TestUnregisteredLocaleNeverDistracter(t *testing.T) {
	f := newTestFilter(t, map[string]string{"en_US": "the 60000\n"}, englishSubtypes())
	if f.IsDistracter(suggest.PrevWordsContext{}, "teh", dictionary.ParseLocale("de-DE")) {
		t.Error("unregistered locale answered true")
	}
}

func TestNoRegistrationsNeverDistracter(t *testing.T) {
	f := newTestFilter(t, map[string]string{"en_US": "the 60000\n"}, nil)
	if f.IsDistracter(suggest.PrevWordsContext{}, "teh", enUS()) {
		t.Error("empty registration list answered true")
	}
}

func TestFirstRegistrationWins(t *testing.T) {
	f := newTestFilter(t, map[string]string{"en_US": "the 60000\n"}, []keyboard.Subtype{
		{Locale: dictionary.ParseLocale("en-US"), Layout: "qwerty"},
		{Locale: dictionary.ParseLocale("en-US"), Layout: "azerty"},
	})

	locales := f.RegisteredLocales()
	if len(locales) != 1 {
		t.Fatalf("RegisteredLocales = %v, want one entry", locales)
	}
	if got := f.subtypes[enUS()].Layout; got != "qwerty" {
		t.Errorf("kept layout %q, want the first registration", got)
	}
}

func TestTypoOfFrequentWordIsDistracter(t *testing.T) {
	f := newTestFilter(t, map[string]string{"en_US": "the 60000\n"}, englishSubtypes())
	if !f.IsDistracter(suggest.PrevWordsContext{}, "teh", enUS()) {
		t.Error("near-miss of a frequent word answered false")
	}
}

func TestDictionaryWordIsNotDistracter(t *testing.T) {
	f := newTestFilter(t, map[string]string{"en_US": "the 60000\n"}, englishSubtypes())
	if f.IsDistracter(suggest.PrevWordsContext{}, "the", enUS()) {
		t.Error("the word itself answered true")
	}
}

func TestUnrelatedWordIsNotDistracter(t *testing.T) {
	f := newTestFilter(t, map[string]string{"en_US": "the 60000\n"}, englishSubtypes())
	if f.IsDistracter(suggest.PrevWordsContext{}, "zzzz", enUS()) {
		t.Error("word with no nearby dictionary entry answered true")
	}
}

func TestTrailingApostropheInvariance(t *testing.T) {
	f := newTestFilter(t, map[string]string{"en_US": "the 60000\n"}, englishSubtypes())

	if got := f.IsDistracter(suggest.PrevWordsContext{}, "teh'", enUS()); !got {
		t.Error("trailing apostrophe flipped a true verdict")
	}
	if got := f.IsDistracter(suggest.PrevWordsContext{}, "the'", enUS()); got {
		t.Error("trailing apostrophe flipped a false verdict")
	}
}

func TestRepeatedQueriesAgree(t *testing.T) {
	f := newTestFilter(t, map[string]string{"en_US": "the 60000\n"}, englishSubtypes())

	first := f.IsDistracter(suggest.PrevWordsContext{}, "teh", enUS())
	second := f.IsDistracter(suggest.PrevWordsContext{}, "teh", enUS())
	if first != second {
		t.Errorf("identical queries disagreed: %v then %v", first, second)
	}
}

func TestLocaleSwitchRebindsDictionaries(t *testing.T) {
	f := newTestFilter(t, map[string]string{
		"en_US": "the 60000\n",
		"fr_FR": "les 60000\n",
	}, []keyboard.Subtype{
		{Locale: dictionary.ParseLocale("en-US"), Layout: "qwerty"},
		{Locale: dictionary.ParseLocale("fr-FR"), Layout: "azerty"},
	})

	if !f.IsDistracter(suggest.PrevWordsContext{}, "teh", enUS()) {
		t.Error("en_US near-miss answered false")
	}

	// French dictionaries replace the English ones entirely.
	if f.IsDistracter(suggest.PrevWordsContext{}, "teh", frFR()) {
		t.Error("en_US word leaked into the fr_FR binding")
	}
	if !f.IsDistracter(suggest.PrevWordsContext{}, "lse", frFR()) {
		t.Error("fr_FR near-miss answered false")
	}

	// And switching back reloads en_US from disk.
	if !f.IsDistracter(suggest.PrevWordsContext{}, "teh", enUS()) {
		t.Error("en_US verdict lost after a round trip through fr_FR")
	}
}

func TestKeyboardCachedAcrossSwitches(t *testing.T) {
	f := newTestFilter(t, map[string]string{
		"en_US": "the 60000\n",
		"fr_FR": "les 60000\n",
	}, []keyboard.Subtype{
		{Locale: dictionary.ParseLocale("en-US"), Layout: "qwerty"},
		{Locale: dictionary.ParseLocale("fr-FR"), Layout: "azerty"},
	})

	f.IsDistracter(suggest.PrevWordsContext{}, "teh", enUS())
	first := f.keyboards[enUS()]
	f.IsDistracter(suggest.PrevWordsContext{}, "lse", frFR())
	f.IsDistracter(suggest.PrevWordsContext{}, "teh", enUS())

	if f.keyboards[enUS()] != first {
		t.Error("en_US keyboard was rebuilt instead of reused")
	}
}
