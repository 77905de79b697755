package namegen

import (
	"math"

	"github.com/dmitrymomot/nameforge/pkg/phonetics"
)

// ScoringConfig controls how candidate fragments are ranked and selected.
// Zero values are not usable; start from DefaultScoringConfig and adjust
// through the setters, which reject out-of-range values by leaving the
// previous value in place. Validate reports anything still inconsistent.
type ScoringConfig struct {
	// VibeWeight and CompatWeight blend the two per-candidate scores into
	// the combined total. They must be non-negative and sum to 1.
	VibeWeight   float64
	CompatWeight float64

	// TopN is the size of the selection pool: after ranking, one of the
	// best TopN candidates is picked uniformly at random.
	TopN int

	// LowScoreThreshold is the combined score below which randomization is
	// abandoned and the single best candidate is returned as forced.
	LowScoreThreshold float64

	// Penalties holds the phonetic rule magnitudes applied when scoring a
	// candidate against the fragments already chosen.
	Penalties phonetics.Penalties
}

// DefaultScoringConfig returns the standard scoring parameters: phonetic
// flow weighted slightly above aesthetic fit, a selection pool of 20, and
// a forced-pick threshold of 60.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		VibeWeight:        0.4,
		CompatWeight:      0.6,
		TopN:              20,
		LowScoreThreshold: 60,
		Penalties:         phonetics.DefaultPenalties(),
	}
}

// SetWeights replaces both scoring weights. Ignored unless both values are
// non-negative and sum to 1 (within a small epsilon).
func (c *ScoringConfig) SetWeights(vibe, compat float64) *ScoringConfig {
	if vibe >= 0 && compat >= 0 && math.Abs(vibe+compat-1) <= 0.01 {
		c.VibeWeight = vibe
		c.CompatWeight = compat
	}
	return c
}

// SetTopN replaces the selection pool size. Ignored unless n is positive.
func (c *ScoringConfig) SetTopN(n int) *ScoringConfig {
	if n >= 1 {
		c.TopN = n
	}
	return c
}

// SetLowScoreThreshold replaces the forced-pick threshold. Ignored unless
// the value lies within [0, 100].
func (c *ScoringConfig) SetLowScoreThreshold(v float64) *ScoringConfig {
	if v >= 0 && v <= 100 {
		c.LowScoreThreshold = v
	}
	return c
}

// SetBlacklistPenalty replaces the penalty for one severity level
// (1 = most severe). Ignored for unknown levels or negative values.
func (c *ScoringConfig) SetBlacklistPenalty(level int, v float64) *ScoringConfig {
	if level >= 1 && level <= phonetics.NumSeverityLevels && v >= 0 {
		c.Penalties.Blacklist[level-1] = v
	}
	return c
}

// SetSmoothTransitionBonus replaces the bonus awarded for a liquid or
// nasal flowing into a vowel across the join. Ignored for negative values.
func (c *ScoringConfig) SetSmoothTransitionBonus(v float64) *ScoringConfig {
	if v >= 0 {
		c.Penalties.SmoothTransitionBonus = v
	}
	return c
}

// Validate reports the first inconsistency in the configuration.
func (c ScoringConfig) Validate() error {
	if c.VibeWeight < 0 || c.CompatWeight < 0 || math.Abs(c.VibeWeight+c.CompatWeight-1) > 0.01 {
		return ErrInvalidWeights
	}
	if c.TopN < 1 {
		return ErrInvalidTopN
	}
	if c.LowScoreThreshold < 0 || c.LowScoreThreshold > 100 {
		return ErrInvalidThreshold
	}
	return c.Penalties.Validate()
}
