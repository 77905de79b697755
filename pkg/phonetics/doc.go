// Package phonetics scores how well two name fragments sound when joined.
//
// The scorer inspects the boundary region around the join point of two
// fragments and applies a rule set of additive penalties and bonuses on top
// of a perfect starting score of 100:
//
//   - repetition of the previous fragment or the previous two-fragment
//     sequence,
//   - blacklisted letter clusters graded by severity (CombosByLevel),
//     matched inside the boundary window or split across the exact join,
//   - vowel and consonant run lengths in the four characters around the
//     join,
//   - triple letters, repeated syllables, and repeated vowels across the
//     boundary,
//   - a handful of specific awkward joins (hard-stop pairs, awkward vowel
//     pairs, consonant cluster into a hard stop),
//   - a bonus for a liquid or nasal consonant flowing into a vowel,
//   - an optional cumulative letter-pair penalty pass over the boundary
//     text, disabled unless Penalties.PairTableScale is positive.
//
// All rule magnitudes come from a Penalties value so callers can tune the
// model per request. The final score is floored at zero; with an empty
// previous fragment the scorer returns exactly 100, since there is no
// boundary to judge.
//
// The package works on plain ASCII fragment text. Diacritics and ligatures
// are applied after assembly, downstream of any compatibility scoring.
package phonetics
