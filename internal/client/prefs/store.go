// Package prefs implements the preference store: a single persisted UI theme
// selection, independent of session identity. It survives logout.
package prefs

import (
	"context"
	"fmt"
	"sync"

	"github.com/prepwyse/prepwyse/internal/client/repositories/kv"
	"github.com/prepwyse/prepwyse/internal/common"
	"github.com/prepwyse/prepwyse/internal/logging"
)

// Applier receives the active theme on every change. It is the one
// sanctioned piece of global presentation state: the CLI uses it to switch
// the prompt palette, the way a browser build would toggle a root class.
type Applier interface {
	ApplyTheme(theme Theme)
}

// ApplierFunc adapts a plain function to the Applier interface.
type ApplierFunc func(theme Theme)

func (f ApplierFunc) ApplyTheme(theme Theme) { f(theme) }

// Store tracks and persists the theme choice. It never blocks and never
// fails asynchronously; the only failure mode is an unavailable storage
// backend, which leaves the in-memory value authoritative.
type Store struct {
	repo    kv.Repository
	applier Applier
	log     logging.Logger

	mu    sync.Mutex
	theme Theme
}

func New(repo kv.Repository, applier Applier, log logging.Logger) *Store {
	return &Store{
		repo:    repo,
		applier: applier,
		log:     log.With("component", "prefs"),
		theme:   DefaultTheme,
	}
}

// Initialize reads the persisted theme. Absent or unrecognized values fall
// back to DefaultTheme. The applier runs either way so presentation state is
// always in sync after startup.
func (s *Store) Initialize(ctx context.Context) error {
	theme := DefaultTheme

	raw, err := s.repo.Get(ctx, common.ThemeStorageKey)
	switch {
	case err != nil:
		s.log.Warn(ctx, "theme slot unreadable, using default", "error", err)
	case raw != nil:
		if parsed, ok := ParseTheme(string(raw)); ok {
			theme = parsed
		} else {
			s.log.Warn(ctx, "discarding unrecognized persisted theme", "value", string(raw))
		}
	}

	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	s.applier.ApplyTheme(theme)

	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

// SetTheme selects and persists a theme. Unknown values are rejected without
// touching state. A persistence failure keeps the in-memory selection for
// this run and is reported so the UI can warn the user.
func (s *Store) SetTheme(ctx context.Context, theme Theme) error {
	if _, ok := ParseTheme(string(theme)); !ok {
		return fmt.Errorf("unknown theme: %q", theme)
	}

	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	s.applier.ApplyTheme(theme)

	if err := s.repo.Set(ctx, common.ThemeStorageKey, []byte(theme)); err != nil {
		s.log.Warn(ctx, "theme not persisted, will not survive reload", "error", err)
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

// Theme returns the current selection. It always has a value.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}
