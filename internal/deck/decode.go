package deck

import (
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Decode parses a TOML deck definition and validates it.
func Decode(data []byte) (Deck, error) {
	var d Deck
	if err := toml.Unmarshal(data, &d); err != nil {
		return Deck{}, fmt.Errorf("parse deck: %w", err)
	}
	d.ID = strings.TrimSpace(d.ID)
	d.Title = strings.TrimSpace(d.Title)
	for i := range d.Slides {
		d.Slides[i].Key = strings.TrimSpace(d.Slides[i].Key)
		d.Slides[i].Category = strings.TrimSpace(d.Slides[i].Category)
	}
	if d.Title == "" {
		d.Title = d.ID
	}
	if err := d.Validate(); err != nil {
		return Deck{}, err
	}
	return d, nil
}
