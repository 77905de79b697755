package namegen

import "github.com/dmitrymomot/nameforge/pkg/theme"

// SlotScore records how one structural slot was filled.
type SlotScore struct {
	// Slot is the structural role the fragment was chosen for.
	Slot theme.Role `json:"slot"`
	// Fragment is the chosen fragment text, before post-processing.
	Fragment string `json:"fragment"`
	// Vibe and Compat are the two component scores of the chosen
	// fragment; Total is their weighted combination.
	Vibe   float64 `json:"vibe"`
	Compat float64 `json:"compat"`
	Total  float64 `json:"total"`
	// Forced reports that every candidate scored below the low-score
	// threshold and the best one was taken without randomization.
	Forced bool `json:"forced"`
	// PoolSize is the number of candidates that received a usable score.
	PoolSize int `json:"pool_size"`
}

// Result is one generated name with its per-slot provenance.
type Result struct {
	// Name is the final name after separators, glyph substitutions, and
	// capitalization.
	Name string `json:"name"`
	// Fragments are the raw chosen fragment texts in slot order.
	Fragments []string `json:"fragments"`
	// Slots carries the scoring breakdown per structural slot.
	Slots []SlotScore `json:"slots"`
}
