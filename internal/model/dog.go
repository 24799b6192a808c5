package model

import (
	"strings"
)

// DogEntry represents a single dog on the list
type DogEntry struct {
	Name       string // trimmed, unique, case-sensitive
	IsFavorite bool   // derived from the favorite set when the snapshot is taken
}

// View is an immutable snapshot of the dog list in display order
type View struct {
	Dogs          []DogEntry
	FavoriteCount int
}

// Len returns the number of dogs in the view
func (v View) Len() int {
	return len(v.Dogs)
}

// Names returns dog names in display order
func (v View) Names() []string {
	names := make([]string, 0, len(v.Dogs))
	for _, d := range v.Dogs {
		names = append(names, d.Name)
	}
	return names
}

// NormalizeName trims surrounding whitespace from user input.
// Internal whitespace and letter case are kept as typed.
func NormalizeName(raw string) string {
	return strings.TrimSpace(raw)
}
