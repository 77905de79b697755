package namegen

import (
	"github.com/dmitrymomot/nameforge/pkg/theme"
	"github.com/dmitrymomot/nameforge/pkg/vibe"
)

// Options describes a single generation request: which aesthetic target to
// aim for, how many structural blocks to use, and which post-processing
// passes may alter the assembled name. Start from DefaultOptions or one of
// the presets rather than a zero value.
type Options struct {
	// Theme names the fragment catalog the request was built for. The
	// generator itself is bound to a catalog at construction; this field
	// exists so presets can carry their intended theme to the loader.
	Theme string

	// Target holds the desired aesthetic attribute ranges. An empty target
	// accepts anything: every candidate scores a perfect vibe match.
	Target vibe.Target

	// BlockCounts is a weighted list of structural block counts; each
	// generation draws one entry uniformly, so repeating a value raises
	// its odds. Valid entries are 2 (prefix+suffix), 3 (adds a middle),
	// and 4 (adds a bridge). Empty means an internal 5:4:1 draw over
	// 2, 3, 4.
	BlockCounts []int

	// VowelFirst, when set, is the probability that the prefix pool is
	// narrowed to vowel-initial fragments (or consonant-initial, on the
	// complementary outcome). Nil means no preference.
	VowelFirst *float64

	// FeatureChance gates the special-feature pass; MaxFeatures caps how
	// many separators one name may receive. The Allow flags enable the
	// individual separator characters.
	FeatureChance    float64
	MaxFeatures      int
	AllowApostrophes bool
	AllowHyphens     bool
	AllowSpaces      bool

	// ModificationChance gates the glyph pass; MaxModifications caps how
	// many substitutions one name may receive.
	ModificationChance float64
	MaxModifications   int
	AllowDiacritics    bool
	AllowLigatures     bool

	// Scoring holds the ranking parameters for fragment selection.
	Scoring ScoringConfig
}

// DefaultOptions returns a conservative request: the default theme, no
// aesthetic target, two blocks twice as likely as three, a mild
// vowel-first preference, and both post-processing passes gated at 20%
// with at most one change each (diacritics only).
func DefaultOptions() *Options {
	return &Options{
		Theme:              theme.DefaultTheme,
		BlockCounts:        []int{2, 2, 3},
		VowelFirst:         Prob(0.2),
		FeatureChance:      0.2,
		MaxFeatures:        1,
		ModificationChance: 0.2,
		MaxModifications:   1,
		AllowDiacritics:    true,
		Scoring:            DefaultScoringConfig(),
	}
}

// Prob returns a pointer to p, for the optional probability fields.
func Prob(p float64) *float64 { return &p }

// SetBlockCounts replaces the weighted block count list. Returns
// ErrInvalidBlockCount if any entry is outside {2, 3, 4}; the list is
// left unchanged in that case.
func (o *Options) SetBlockCounts(counts ...int) error {
	for _, n := range counts {
		if n < 2 || n > 4 {
			return ErrInvalidBlockCount
		}
	}
	o.BlockCounts = counts
	return nil
}

// Validate reports the first inconsistency in the request.
func (o *Options) Validate() error {
	for _, n := range o.BlockCounts {
		if n < 2 || n > 4 {
			return ErrInvalidBlockCount
		}
	}
	return o.Scoring.Validate()
}
