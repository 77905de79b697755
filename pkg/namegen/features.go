package namegen

import (
	"sort"
	"strings"

	"github.com/dmitrymomot/nameforge/pkg/phonetics"
)

// Letters that keep an apostrophe pronounceable when they precede it.
const apostropheFriendly = "lrntds"

func isSeparator(b byte) bool {
	return b == '\'' || b == '-' || b == ' '
}

type insertion struct {
	pos   int
	char  byte
	score float64
}

// insertFeatures runs the probability-gated separator pass. Every interior
// position is scored per allowed separator character; positions whose best
// score clears the minimum are inserted best-first, capped at MaxFeatures,
// never adjacent to an existing separator. blocks are the raw fragments
// the name was assembled from, used to locate fragment boundaries.
// Callers hold the generator lock.
func (g *Generator) insertFeatures(name string, blocks []string, opts *Options) string {
	if opts.FeatureChance <= 0 || opts.MaxFeatures <= 0 {
		return name
	}
	if !opts.AllowApostrophes && !opts.AllowHyphens && !opts.AllowSpaces {
		return name
	}
	if len(name) < 4 {
		return name
	}
	if g.rng.Float64() >= opts.FeatureChance {
		return name
	}

	boundaries := make(map[int]bool, len(blocks))
	off := 0
	for _, b := range blocks[:len(blocks)-1] {
		off += len(b)
		boundaries[off] = true
	}

	var chars []byte
	if opts.AllowApostrophes {
		chars = append(chars, '\'')
	}
	if opts.AllowHyphens {
		chars = append(chars, '-')
	}
	if opts.AllowSpaces {
		chars = append(chars, ' ')
	}

	var candidates []insertion
	for i := 1; i < len(name)-1; i++ {
		if isSeparator(name[i]) || isSeparator(name[i-1]) || isSeparator(name[i+1]) {
			continue
		}
		var best insertion
		for _, ch := range chars {
			if s := featureScore(name, i, ch, boundaries[i]); s > best.score {
				best = insertion{pos: i, char: ch, score: s}
			}
		}
		// Anything at or below this reads as noise rather than structure.
		if best.score > 3 {
			candidates = append(candidates, best)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	result := []byte(name)
	var inserted []int
	for _, c := range candidates {
		if len(inserted) >= opts.MaxFeatures {
			break
		}
		adj := c.pos
		for _, p := range inserted {
			if p <= c.pos {
				adj++
			}
		}
		if adj <= 0 || adj >= len(result) {
			continue
		}
		// Earlier insertions may have created a neighboring separator.
		if isSeparator(result[adj]) || isSeparator(result[adj-1]) {
			continue
		}
		result = append(result[:adj], append([]byte{c.char}, result[adj:]...)...)
		inserted = append(inserted, c.pos)
	}
	return string(result)
}

// featureScore rates inserting ch before position i. Fragment boundaries
// are favored for every separator; beyond that each character has its own
// phonetic preferences.
func featureScore(name string, i int, ch byte, atBoundary bool) float64 {
	prev := rune(name[i-1])
	cur := rune(name[i])
	var s float64
	switch ch {
	case '\'':
		if atBoundary {
			s += 5
		}
		if !phonetics.IsVowel(prev) {
			s += 4
		}
		if strings.ContainsRune(apostropheFriendly, prev) {
			s += 2
		}
		if phonetics.IsVowel(cur) {
			s += 3
		}
	case '-':
		if atBoundary {
			s += 7
		}
		syllableEnd := i > 1 && !phonetics.IsVowel(prev) && phonetics.IsVowel(rune(name[i-2]))
		syllableStart := i < len(name)-1 && !phonetics.IsVowel(cur) && phonetics.IsVowel(rune(name[i+1]))
		if syllableEnd {
			s += 3
		}
		if syllableStart {
			s += 3
		}
		if syllableEnd && syllableStart {
			s += 2
		}
		if intAbs(i-(len(name)-i)) <= 3 {
			s += 3
		}
	case ' ':
		if atBoundary {
			s += 6
		}
		if i >= 3 && len(name)-i >= 3 {
			s += 5
		}
		if i >= 4 && !phonetics.IsVowel(prev) {
			s += 2
		}
		if phonetics.IsVowel(prev) && !phonetics.IsVowel(cur) {
			s -= 4
		}
	}
	return s
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
