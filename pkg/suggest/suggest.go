// Package suggest is the suggestion facade: it owns the dictionary
// facilitator and the decoder, and answers asynchronous suggestion
// queries for composed words.
package suggest

import (
	"strings"
	"sync"
	"time"

	"github.com/wordsieve/wordsieve/internal/utils"
	"github.com/wordsieve/wordsieve/pkg/decoder"
	"github.com/wordsieve/wordsieve/pkg/dictionary"
	"github.com/wordsieve/wordsieve/pkg/keyboard"
)

// Suggest composes the dictionary facilitator with the incremental
// decoder. One decode runs at a time per instance; concurrent callers are
// serialized internally.
type Suggest struct {
	facilitator *dictionary.Facilitator
	decoder     decoder.Decoder
	mu          sync.Mutex
}

// New builds a facade over a facilitator and a decoder.
func New(facilitator *dictionary.Facilitator, dec decoder.Decoder) *Suggest {
	return &Suggest{
		facilitator: facilitator,
		decoder:     dec,
	}
}

// ResetDictionaries starts an asynchronous dictionary reload for the
// locale. Always reloads; dictionary sets are never cached across
// locale switches.
func (s *Suggest) ResetDictionaries(locale dictionary.Locale) {
	s.facilitator.Reset(locale)
}

// WaitForMainDictionary blocks until the pending dictionary load lands,
// up to timeout.
func (s *Suggest) WaitForMainDictionary(timeout time.Duration) error {
	return s.facilitator.WaitForLoad(timeout)
}

// CurrentLocale returns the locale the facilitator is bound to.
func (s *Suggest) CurrentLocale() dictionary.Locale {
	return s.facilitator.CurrentLocale()
}

// GetSuggestedWords decodes the composed word on a worker goroutine and
// delivers the ranked result list through callback exactly once. The
// identity word is rank 0; decoder alternatives follow from rank 1.
// Offensive words are dropped when blockOffensive is set; when
// allowCorrection is false only the identity entry is returned.
func (s *Suggest) GetSuggestedWords(composer *Composer, proximity *keyboard.ProximityInfo,
	blockOffensive, allowCorrection bool, sessionID, sequenceNumber int,
	callback func(SuggestedWords)) {
	go func() {
		callback(s.decode(composer, proximity, blockOffensive, allowCorrection))
	}()
}

func (s *Suggest) decode(composer *Composer, proximity *keyboard.ProximityInfo,
	blockOffensive, allowCorrection bool) SuggestedWords {
	words := []SuggestedWordInfo{{Word: composer.Word, Kind: KindTyped}}

	set := s.facilitator.ActiveSet()
	if !allowCorrection || set == nil || len(composer.CodePoints) == 0 {
		return SuggestedWords{words: words}
	}

	s.mu.Lock()
	s.decoder.Reset()
	s.decoder.SetDictionaries(set)
	if prev := composer.Prev.LastWord(); prev != "" {
		s.decoder.SetPrevWord(prev)
	}
	candidates := s.decoder.GetSuggestions(decoder.Input{
		Proximity:   proximity,
		Xs:          composer.Xs,
		Ys:          composer.Ys,
		Codes:       composer.CodePoints,
		InputLength: len(composer.CodePoints),
		CommitPoint: 0,
		UseMainDict: true,
	})
	s.mu.Unlock()

	// The typed word minus any trailing apostrophe run is the identity;
	// a candidate equal to it would duplicate rank 0.
	considered := strings.ToLower(utils.StripTrailingSingleQuotes(composer.Word))
	for _, c := range candidates {
		if strings.ToLower(c.Word) == considered {
			continue
		}
		if blockOffensive && set.IsOffensive(c.Word) {
			continue
		}
		words = append(words, SuggestedWordInfo{Word: c.Word, Score: c.Score, Kind: KindCorrection})
	}
	return SuggestedWords{words: words}
}
