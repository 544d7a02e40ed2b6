package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Template selects the rendering strategy for a slide.
type Template string

const (
	TemplateTitle          Template = "title"
	TemplateCritique       Template = "critique"
	TemplateResearch       Template = "research"
	TemplatePremiumDefault Template = "premium-default"
)

// Normalize lowercases and trims the template name. An empty value maps to
// TemplateTitle; unknown values are returned as-is so callers can fall back.
func (t Template) Normalize() Template {
	v := Template(strings.ToLower(strings.TrimSpace(string(t))))
	if v == "" {
		return TemplateTitle
	}
	return v
}

// Known reports whether the template is one of the closed set.
func (t Template) Known() bool {
	switch t.Normalize() {
	case TemplateTitle, TemplateCritique, TemplateResearch, TemplatePremiumDefault:
		return true
	default:
		return false
	}
}

// ErrInvalidDeck is wrapped by every validation failure.
var ErrInvalidDeck = errors.New("invalid deck")

// Deck is a named, ordered collection of slides.
type Deck struct {
	ID          string            `toml:"id"`
	Title       string            `toml:"title"`
	Subtitle    string            `toml:"subtitle"`
	Author      string            `toml:"author"`
	Description string            `toml:"description"`
	Images      map[string]string `toml:"images"`
	Slides      []Slide           `toml:"slides"`
}

// Slide is one navigable unit of content within a deck.
type Slide struct {
	Key      string   `toml:"key"`
	Category string   `toml:"category"`
	Template Template `toml:"template"`

	Header   string `toml:"header"`
	Headline string `toml:"headline"`
	Subtitle string `toml:"subtitle"`
	Footer   string `toml:"footer"`

	Bullets  []string `toml:"bullets"`
	Critique Critique `toml:"critique"`
	Steps    []Step   `toml:"steps"`

	// Subtext is free auxiliary text; Details stay hidden until toggled.
	Subtext []string `toml:"subtext"`
	Details []string `toml:"details"`
}

// Critique groups feedback into the three fixed columns.
type Critique struct {
	Positive     []string `toml:"positive"`
	Constructive []string `toml:"constructive"`
	Gaps         []string `toml:"gaps"`
}

// Empty reports whether no column has content.
func (c Critique) Empty() bool {
	return len(c.Positive) == 0 && len(c.Constructive) == 0 && len(c.Gaps) == 0
}

// Step is one entry of an ordered research sequence.
type Step struct {
	Title  string `toml:"title"`
	Detail string `toml:"detail"`
}

// Validate checks the invariants navigation and deep-linking rely on.
func (d Deck) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidDeck)
	}
	if len(d.Slides) == 0 {
		return fmt.Errorf("%w: deck %q has no slides", ErrInvalidDeck, d.ID)
	}
	seen := make(map[string]int, len(d.Slides))
	for i, s := range d.Slides {
		key := strings.TrimSpace(s.Key)
		if key == "" {
			return fmt.Errorf("%w: deck %q slide %d has no key", ErrInvalidDeck, d.ID, i)
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: deck %q slide key %q repeated at %d and %d", ErrInvalidDeck, d.ID, key, prev, i)
		}
		seen[key] = i
	}
	return nil
}

// Lint lists problems that do not stop a deck from loading but change how
// it renders: unknown templates fall back to the title layout and a
// critique without items shows three empty columns.
func (d Deck) Lint() []string {
	var out []string
	for _, s := range d.Slides {
		if !s.Template.Known() {
			out = append(out, fmt.Sprintf("slide %q: unknown template %q, rendering as title", s.Key, s.Template))
			continue
		}
		if s.Template.Normalize() == TemplateCritique && s.Critique.Empty() {
			out = append(out, fmt.Sprintf("slide %q: critique has no items", s.Key))
		}
	}
	return out
}

// Len returns the number of slides.
func (d Deck) Len() int {
	return len(d.Slides)
}

// IndexOf returns the position of the slide with the given key, or -1.
func (d Deck) IndexOf(key string) int {
	for i, s := range d.Slides {
		if s.Key == key {
			return i
		}
	}
	return -1
}

// ImageFor returns the background image path for the slide's category.
func (d Deck) ImageFor(s Slide) string {
	if s.Category == "" {
		return ""
	}
	return d.Images[s.Category]
}

// Clone returns a deep copy so callers cannot mutate registry data.
func (d Deck) Clone() Deck {
	out := d
	if d.Images != nil {
		out.Images = make(map[string]string, len(d.Images))
		for k, v := range d.Images {
			out.Images[k] = v
		}
	}
	out.Slides = make([]Slide, len(d.Slides))
	for i, s := range d.Slides {
		out.Slides[i] = s.clone()
	}
	return out
}

func (s Slide) clone() Slide {
	out := s
	out.Bullets = cloneStrings(s.Bullets)
	out.Subtext = cloneStrings(s.Subtext)
	out.Details = cloneStrings(s.Details)
	out.Critique = Critique{
		Positive:     cloneStrings(s.Critique.Positive),
		Constructive: cloneStrings(s.Critique.Constructive),
		Gaps:         cloneStrings(s.Critique.Gaps),
	}
	if s.Steps != nil {
		out.Steps = make([]Step, len(s.Steps))
		copy(out.Steps, s.Steps)
	}
	return out
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
