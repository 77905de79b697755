package phonetics

import "strings"

const (
	vowels = "aeiou"

	// hardStops are plosive consonants that sound abrupt when doubled up
	// across a fragment boundary.
	hardStops = "kptgbd"

	// liquidsNasals flow smoothly into a following vowel.
	liquidsNasals = "lrmn"

	// forgivingLetters tolerate repetition better than most; doubled or
	// echoed occurrences of these are penalized at a reduced rate.
	forgivingLetters = "lrsnmeo"
)

// IsVowel reports whether the letter is one of a, e, i, o, u
// (case-insensitive). Everything else, including y, counts as a consonant.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// isHardStop expects a lowercase letter.
func isHardStop(r rune) bool {
	return strings.ContainsRune(hardStops, r)
}

// isLiquidOrNasal expects a lowercase letter.
func isLiquidOrNasal(r rune) bool {
	return strings.ContainsRune(liquidsNasals, r)
}

// isForgiving expects a lowercase letter.
func isForgiving(r rune) bool {
	return strings.ContainsRune(forgivingLetters, r)
}

// VCPattern maps text to its vowel/consonant shape, e.g. "kael" → "CVVC".
func VCPattern(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if IsVowel(r) {
			b.WriteByte('V')
		} else {
			b.WriteByte('C')
		}
	}
	return b.String()
}

// lastN returns up to the last n bytes of s.
func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// firstN returns up to the first n bytes of s.
func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
