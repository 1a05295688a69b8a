package dictionary

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ErrLoadTimeout is returned when a dictionary load does not finish within
// the wait deadline.
var ErrLoadTimeout = errors.New("dictionary: timed out waiting for load")

// Facilitator owns the single active dictionary Set and its locale.
// Reset always reloads from disk, even for a locale that was active
// before; dictionary sets are deliberately not cached so the freshest
// backing data wins over switch speed.
type Facilitator struct {
	dataDir string

	mu     sync.Mutex
	locale Locale
	set    *Set
	loaded chan struct{}
}

// NewFacilitator creates a facilitator rooted at a data directory that
// holds one subdirectory per locale ("en_US", "fr_FR", ...).
func NewFacilitator(dataDir string) *Facilitator {
	return &Facilitator{dataDir: dataDir}
}

// Reset rebinds the facilitator to locale and starts loading that locale's
// dictionary files on a worker goroutine. The previous set stays visible
// until the new load lands. Use WaitForLoad to block on completion.
func (f *Facilitator) Reset(locale Locale) {
	loaded := make(chan struct{})

	f.mu.Lock()
	f.locale = locale
	f.loaded = loaded
	f.mu.Unlock()

	go func() {
		set, err := LoadDir(filepath.Join(f.dataDir, locale.String()))
		if err != nil {
			log.Warnf("Dictionary load for %s failed: %v", locale, err)
		}

		f.mu.Lock()
		// A later Reset supersedes this load; drop a stale result.
		if f.loaded == loaded {
			f.set = set
		}
		f.mu.Unlock()
		close(loaded)
	}()
}

// WaitForLoad blocks until the load started by the most recent Reset has
// finished, up to timeout. Returns ErrLoadTimeout on deadline; returns nil
// immediately when no load is pending.
func (f *Facilitator) WaitForLoad(timeout time.Duration) error {
	f.mu.Lock()
	loaded := f.loaded
	f.mu.Unlock()

	if loaded == nil {
		return nil
	}
	select {
	case <-loaded:
		return nil
	case <-time.After(timeout):
		return ErrLoadTimeout
	}
}

// CurrentLocale returns the locale of the most recent Reset.
func (f *Facilitator) CurrentLocale() Locale {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locale
}

// ActiveSet returns the currently bound dictionary set, nil before the
// first load completes.
func (f *Facilitator) ActiveSet() *Set {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set
}
