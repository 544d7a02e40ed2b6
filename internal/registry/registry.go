package registry

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/five82/pitch/internal/deck"
)

//go:embed decks/*.toml
var builtin embed.FS

const (
	builtinDefault = "northwind"
	deckPattern    = "**/*.toml"
)

// ErrNoDecks is returned when no valid deck could be loaded.
var ErrNoDecks = errors.New("no decks available")

// Options configure where decks are loaded from.
type Options struct {
	// DeckDir holds extra deck files; missing directories are ignored.
	DeckDir     string
	DefaultDeck string
	Logger      *zap.Logger
}

// Registry is the fixed, read-only set of decks known to pitch.
type Registry struct {
	decks     map[string]deck.Deck
	order     []string
	defaultID string
}

// Load builds the registry from the embedded decks plus any user decks.
// A user deck with the same id as a built-in one replaces it in place.
func Load(opts Options) (*Registry, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	decks, err := loadFS(builtin, logger)
	if err != nil {
		return nil, fmt.Errorf("load built-in decks: %w", err)
	}

	if dir := strings.TrimSpace(opts.DeckDir); dir != "" {
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			user, err := loadFS(os.DirFS(dir), logger)
			if err != nil {
				return nil, fmt.Errorf("load decks from %s: %w", dir, err)
			}
			decks = append(decks, user...)
		}
	}

	return New(decks, opts.DefaultDeck)
}

// New builds a registry from already decoded decks. Later decks replace
// earlier ones with the same id.
func New(decks []deck.Deck, defaultID string) (*Registry, error) {
	r := &Registry{decks: make(map[string]deck.Deck, len(decks))}
	for _, d := range decks {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.decks[d.ID]; !exists {
			r.order = append(r.order, d.ID)
		}
		r.decks[d.ID] = d.Clone()
	}
	if len(r.order) == 0 {
		return nil, ErrNoDecks
	}

	defaultID = strings.TrimSpace(defaultID)
	switch {
	case r.has(defaultID):
		r.defaultID = defaultID
	case r.has(builtinDefault):
		r.defaultID = builtinDefault
	default:
		r.defaultID = r.order[0]
	}
	return r, nil
}

// Lookup returns a copy of the deck with the given id.
func (r *Registry) Lookup(id string) (deck.Deck, bool) {
	d, ok := r.decks[id]
	if !ok {
		return deck.Deck{}, false
	}
	return d.Clone(), true
}

// Default returns the deck shown when no valid selection exists.
func (r *Registry) Default() deck.Deck {
	return r.decks[r.defaultID].Clone()
}

// DefaultID returns the id of the default deck.
func (r *Registry) DefaultID() string {
	return r.defaultID
}

// IDs returns deck ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Decks returns copies of every deck in registration order.
func (r *Registry) Decks() []deck.Deck {
	out := make([]deck.Deck, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.decks[id].Clone())
	}
	return out
}

func (r *Registry) has(id string) bool {
	if id == "" {
		return false
	}
	_, ok := r.decks[id]
	return ok
}

// loadFS decodes every deck file under fsys. Files that fail to parse or
// validate are logged and skipped.
func loadFS(fsys fs.FS, logger *zap.Logger) ([]deck.Deck, error) {
	matches, err := doublestar.Glob(fsys, deckPattern)
	if err != nil {
		return nil, fmt.Errorf("glob decks: %w", err)
	}
	sort.Strings(matches)

	decks := make([]deck.Deck, 0, len(matches))
	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			logger.Warn("skipping unreadable deck", zap.String("file", name), zap.Error(err))
			continue
		}
		d, err := deck.Decode(data)
		if err != nil {
			logger.Warn("skipping invalid deck", zap.String("file", name), zap.Error(err))
			continue
		}
		for _, w := range d.Lint() {
			logger.Warn("deck warning", zap.String("file", name), zap.String("deck", d.ID), zap.String("problem", w))
		}
		decks = append(decks, d)
	}
	return decks, nil
}
