package switcher

import (
	"net/url"
	"strings"
)

// Link is a decoded deep link.
type Link struct {
	DeckID   string
	SlideKey string
}

// Location encodes a deck id, and optionally a slide key, as a fragment:
// "#deck" or "#deck/slide".
func Location(deckID, slideKey string) string {
	deckID = strings.TrimSpace(deckID)
	if deckID == "" {
		return ""
	}
	loc := "#" + url.PathEscape(deckID)
	if key := strings.TrimSpace(slideKey); key != "" {
		loc += "/" + url.PathEscape(key)
	}
	return loc
}

// ParseLocation decodes a deep link. It accepts a bare fragment ("#acme"),
// any URL carrying a fragment ("pitch:///#acme/market") or a bare id.
// Malformed input yields an empty Link rather than an error.
func ParseLocation(loc string) Link {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return Link{}
	}

	var frag string
	switch {
	case strings.Contains(loc, "#"):
		frag = loc[strings.Index(loc, "#")+1:]
	case strings.Contains(loc, "://"):
		u, err := url.Parse(loc)
		if err != nil {
			return Link{}
		}
		frag = u.Fragment
	default:
		frag = loc
	}

	deckPart, slidePart, _ := strings.Cut(frag, "/")
	deckID, err := url.PathUnescape(deckPart)
	if err != nil {
		return Link{}
	}
	slideKey, err := url.PathUnescape(slidePart)
	if err != nil {
		slideKey = ""
	}
	return Link{
		DeckID:   strings.TrimSpace(deckID),
		SlideKey: strings.TrimSpace(slideKey),
	}
}
