package phonetics

import "fmt"

// Penalties holds every rule magnitude the compatibility scorer uses. All
// penalty values are non-negative amounts subtracted from the starting
// score of 100; SmoothTransitionBonus is added. The zero value disables
// every rule; use DefaultPenalties for the tuned model.
type Penalties struct {
	// Blacklist penalties per severity level; index 0 is level 1 (most
	// severe), index 4 is level 5.
	Blacklist [NumSeverityLevels]float64

	// Repetition penalties.
	DirectRepeat        float64 // next fragment repeats the previous one
	SequenceRepeat      float64 // pair repeats the previous pair
	SyllableRepeat      float64 // trailing letters of prev echo the start of next
	VowelAcrossBoundary float64 // last vowel of prev equals first vowel of next
	TripleLetter        float64 // join creates a triple letter

	// Multipliers (<1 softens) applied when the repeated letter is one of
	// the forgiving set.
	TripleLetterCommonFactor float64
	SyllableCommonFactor     float64

	// Vowel/consonant run penalties in the four-character join window.
	Vowels3Plus     float64
	Consonants3     float64
	Consonants4Plus float64

	// Specific join penalties.
	HardStopJoin     float64 // hard stop meeting a hard stop or fricative
	AwkwardVowelJoin float64 // vowel pair from the graded awkward set
	ClusterHardStop  float64 // consonant cluster running into a hard stop

	// SmoothTransitionBonus rewards a liquid or nasal flowing into a vowel.
	SmoothTransitionBonus float64

	// PairTableScale scales the cumulative letter-pair table penalty.
	// Zero disables the pass.
	PairTableScale float64
}

// DefaultPenalties returns the tuned rule magnitudes.
func DefaultPenalties() Penalties {
	return Penalties{
		Blacklist:                [NumSeverityLevels]float64{95, 70, 45, 25, 10},
		DirectRepeat:             75,
		SequenceRepeat:           55,
		SyllableRepeat:           80,
		VowelAcrossBoundary:      20,
		TripleLetter:             85,
		TripleLetterCommonFactor: 0.7,
		SyllableCommonFactor:     0.2,
		Vowels3Plus:              50,
		Consonants3:              50,
		Consonants4Plus:          80,
		HardStopJoin:             20,
		AwkwardVowelJoin:         50,
		ClusterHardStop:          50,
		SmoothTransitionBonus:    15,
		PairTableScale:           0,
	}
}

// Validate rejects negative magnitudes.
func (p Penalties) Validate() error {
	check := map[string]float64{
		"direct_repeat":         p.DirectRepeat,
		"sequence_repeat":       p.SequenceRepeat,
		"syllable_repeat":       p.SyllableRepeat,
		"vowel_across_boundary": p.VowelAcrossBoundary,
		"triple_letter":         p.TripleLetter,
		"triple_letter_factor":  p.TripleLetterCommonFactor,
		"syllable_factor":       p.SyllableCommonFactor,
		"vowels_3plus":          p.Vowels3Plus,
		"consonants_3":          p.Consonants3,
		"consonants_4plus":      p.Consonants4Plus,
		"hard_stop_join":        p.HardStopJoin,
		"awkward_vowel_join":    p.AwkwardVowelJoin,
		"cluster_hard_stop":     p.ClusterHardStop,
		"pair_table_scale":      p.PairTableScale,
	}
	for name, v := range check {
		if v < 0 {
			return fmt.Errorf("%w: %s is negative", ErrNegativePenalty, name)
		}
	}
	for i, v := range p.Blacklist {
		if v < 0 {
			return fmt.Errorf("%w: blacklist level %d is negative", ErrNegativePenalty, i+1)
		}
	}
	return nil
}
