package namegen

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/nameforge/pkg/phonetics"
)

// Combining marks used to build diacritic variants. Variants are composed
// as base letter plus mark and normalized to NFC, so the output carries
// precomposed runes like á and ö.
const (
	markGrave      = '̀'
	markAcute      = '́'
	markCircumflex = '̂'
	markTilde      = '̃'
	markDiaeresis  = '̈'
)

// diacriticMarks lists the marks each vowel may take. Only combinations
// with a precomposed Latin form are included.
var diacriticMarks = map[byte][]rune{
	'a': {markAcute, markGrave, markDiaeresis, markCircumflex, markTilde},
	'e': {markAcute, markGrave, markDiaeresis, markCircumflex},
	'i': {markAcute, markGrave, markDiaeresis, markCircumflex},
	'o': {markAcute, markGrave, markDiaeresis, markCircumflex, markTilde},
	'u': {markAcute, markGrave, markDiaeresis, markCircumflex},
	'y': {markAcute, markDiaeresis},
}

// ligatures maps letter pairs to their single-glyph form. The name is
// still lowercase when this pass runs; capitalization afterwards handles
// uppercase forms.
var ligatures = map[string]rune{
	"ae": 'æ',
	"oe": 'œ',
	"th": 'þ',
	"dh": 'ð',
	"ss": 'ß',
}

type glyphCandidate struct {
	start, end int // byte range in the unmodified name
	ligature   bool
	score      float64
}

// modifyGlyphs runs the probability-gated glyph substitution pass:
// diacritic variants on single vowels and ligature collapses on letter
// pairs. Positions adjacent to a separator are left alone so the
// separator's neighbors stay plainly readable. Callers hold the generator
// lock.
func (g *Generator) modifyGlyphs(name string, opts *Options) string {
	if opts.ModificationChance <= 0 || opts.MaxModifications <= 0 {
		return name
	}
	if !opts.AllowDiacritics && !opts.AllowLigatures {
		return name
	}
	if len(name) < 2 {
		return name
	}
	if g.rng.Float64() >= opts.ModificationChance {
		return name
	}

	protected := make([]bool, len(name))
	for i := 0; i < len(name); i++ {
		if isSeparator(name[i]) {
			protected[i] = true
			if i > 0 {
				protected[i-1] = true
			}
			if i+1 < len(name) {
				protected[i+1] = true
			}
		}
	}

	var candidates []glyphCandidate
	if opts.AllowDiacritics {
		for i := 0; i < len(name); i++ {
			if protected[i] {
				continue
			}
			if _, ok := diacriticMarks[name[i]]; !ok {
				continue
			}
			score := 5.0
			if i == 0 {
				score--
			}
			if i == len(name)-1 {
				score -= 0.5
			}
			if i > 0 && !phonetics.IsVowel(rune(name[i-1])) && !isSeparator(name[i-1]) {
				score++
			}
			candidates = append(candidates, glyphCandidate{start: i, end: i + 1, score: score})
		}
	}
	if opts.AllowLigatures {
		patterns := make([]string, 0, len(ligatures))
		for p := range ligatures {
			patterns = append(patterns, p)
		}
		sort.Slice(patterns, func(i, j int) bool {
			if len(patterns[i]) != len(patterns[j]) {
				return len(patterns[i]) > len(patterns[j])
			}
			return patterns[i] < patterns[j]
		})
		for _, p := range patterns {
			for i := 0; i+len(p) <= len(name); i++ {
				if name[i:i+len(p)] != p {
					continue
				}
				if protected[i] || protected[i+len(p)-1] {
					continue
				}
				score := 7.0
				if i == 0 {
					score -= 2
				}
				// Ending at or next to the final letter reads worse.
				if i+len(p) >= len(name)-1 {
					score--
				}
				candidates = append(candidates, glyphCandidate{start: i, end: i + len(p), ligature: true, score: score})
			}
		}
	}
	if len(candidates) == 0 {
		return name
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	taken := make([]bool, len(name))
	repl := make(map[int]glyphCandidate)
	applied := 0
	for _, c := range candidates {
		if applied >= opts.MaxModifications {
			break
		}
		overlaps := false
		for i := c.start; i < c.end; i++ {
			if taken[i] {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		for i := c.start; i < c.end; i++ {
			taken[i] = true
		}
		repl[c.start] = c
		applied++
	}

	var b strings.Builder
	for i := 0; i < len(name); {
		c, ok := repl[i]
		if !ok {
			b.WriteByte(name[i])
			i++
			continue
		}
		if c.ligature {
			b.WriteRune(ligatures[name[c.start:c.end]])
		} else {
			marks := diacriticMarks[name[i]]
			b.WriteByte(name[i])
			b.WriteRune(marks[g.rng.Intn(len(marks))])
		}
		i = c.end
	}
	return norm.NFC.String(b.String())
}
