package switcher

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/pitch/internal/deck"
	"github.com/five82/pitch/internal/nav"
	"github.com/five82/pitch/internal/render"
)

// ErrDeckNotFound is returned by Select for ids missing from the registry.
var ErrDeckNotFound = errors.New("deck not found")

// Decks is the read side of the deck registry.
type Decks interface {
	Lookup(id string) (deck.Deck, bool)
	Default() deck.Deck
}

// Switcher owns the active deck together with the navigation state and the
// per-slide UI state that belong to it.
type Switcher struct {
	decks  Decks
	logger *zap.Logger

	active   deck.Deck
	nav      *nav.Controller
	state    *render.UIState
	location string
	notFound string

	onChange func(location string)
}

// Option customises a Switcher.
type Option func(*Switcher)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Switcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// OnChange registers a callback invoked with the new location after every
// successful deck change, for persisting the deep link.
func OnChange(fn func(location string)) Option {
	return func(s *Switcher) { s.onChange = fn }
}

// New returns a switcher showing the default deck.
func New(decks Decks, viewportHeight int, opts ...Option) *Switcher {
	s := &Switcher{
		decks:  decks,
		logger: zap.NewNop(),
		state:  render.NewUIState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.active = decks.Default()
	s.nav = nav.New(s.active.Len(), viewportHeight)
	s.location = Location(s.active.ID, "")
	return s
}

// Select activates the deck with the given id. Unknown ids leave every
// piece of state untouched and are remembered for the not-found notice.
func (s *Switcher) Select(id string) error {
	d, ok := s.decks.Lookup(id)
	if !ok {
		s.notFound = id
		s.logger.Info("deck not found", zap.String("deck", id))
		return fmt.Errorf("%w: %q", ErrDeckNotFound, id)
	}
	s.activate(d)
	return nil
}

// Restore activates the deck encoded in a deep link, falling back to the
// default deck for empty or unknown values. When the link names a slide of
// that deck, navigation jumps straight to it.
func (s *Switcher) Restore(location string) deck.Deck {
	link := ParseLocation(location)
	d, ok := s.decks.Lookup(link.DeckID)
	if !ok {
		if link.DeckID != "" {
			s.logger.Info("ignoring unknown deep link", zap.String("location", location))
		}
		d = s.decks.Default()
	}
	s.activate(d)
	if ok && link.SlideKey != "" {
		if i := d.IndexOf(link.SlideKey); i >= 0 {
			s.nav.Select(i)
			s.nav.Settle()
		}
	}
	return s.Active()
}

func (s *Switcher) activate(d deck.Deck) {
	s.active = d
	s.nav.Reset(d.Len(), s.nav.Height())
	s.state.Reset()
	s.notFound = ""
	s.location = Location(d.ID, "")
	s.logger.Debug("deck activated", zap.String("deck", d.ID), zap.Int("slides", d.Len()))
	if s.onChange != nil {
		s.onChange(s.location)
	}
}

// Active returns the active deck.
func (s *Switcher) Active() deck.Deck {
	return s.active
}

// Nav returns the navigation controller of the active deck.
func (s *Switcher) Nav() *nav.Controller {
	return s.nav
}

// State returns the per-slide UI state of the active deck.
func (s *Switcher) State() *render.UIState {
	return s.state
}

// Location returns the deep link of the active deck.
func (s *Switcher) Location() string {
	return s.location
}

// Bookmark returns a deep link to the active slide of the active deck.
func (s *Switcher) Bookmark() string {
	i := s.nav.Active()
	if i < 0 || i >= s.active.Len() {
		return s.location
	}
	return Location(s.active.ID, s.active.Slides[i].Key)
}

// NotFound reports the id of the last failed selection, cleared by the next
// successful one.
func (s *Switcher) NotFound() (string, bool) {
	return s.notFound, s.notFound != ""
}

// DismissNotFound clears the not-found notice.
func (s *Switcher) DismissNotFound() {
	s.notFound = ""
}
