package phonetics

import "strings"

// boundaryContext is how many characters on each side of the join feed the
// blacklist window.
const boundaryContext = 3

// Compatibility scores how well next sounds after prev, in [0,100]. The
// used slice is the full ordered context of fragments chosen so far
// (including prev as its last entry) and only feeds the sequence-repeat
// rule. With an empty prev there is no boundary and the score is exactly
// 100. All rules are additive over the starting score; the result is
// floored at zero.
func Compatibility(prev, next string, used []string, p Penalties) float64 {
	if next == "" {
		return 0
	}
	if prev == "" {
		return 100
	}

	last := strings.ToLower(prev)
	cand := strings.ToLower(next)
	score := 100.0

	// Repetition of whole fragments.
	if last == cand {
		score -= p.DirectRepeat
	} else if len(used) >= 2 &&
		strings.EqualFold(used[len(used)-2], prev) &&
		strings.EqualFold(used[len(used)-1], next) {
		score -= p.SequenceRepeat
	}

	boundary := lastN(last, boundaryContext) + firstN(cand, boundaryContext)
	joinWindow := lastN(last, 2) + firstN(cand, 2)
	pattern := VCPattern(joinWindow)

	score -= blacklistPenalty(last, cand, boundary, p)

	// Vowel/consonant runs around the join.
	if strings.Contains(pattern, "VVV") {
		score -= p.Vowels3Plus
	}
	if strings.Contains(pattern, "CCCC") {
		score -= p.Consonants4Plus
	} else if strings.Contains(pattern, "CCC") {
		score -= p.Consonants3
	}

	score -= boundaryRepetitionPenalty(last, cand, p)
	score += joinAdjustment(last, cand, p)

	if p.PairTableScale > 0 {
		score -= pairTablePenalty(boundary) * p.PairTableScale
	}

	return max(0, score)
}

// blacklistPenalty charges each distinct blacklisted cluster at most once:
// either it appears inside the boundary window, or it can be split across
// the exact join point so that prev ends with its head and next starts
// with its tail.
func blacklistPenalty(last, cand, boundary string, p Penalties) float64 {
	var total float64
	hit := make(map[string]struct{})

	for level := 1; level <= NumSeverityLevels; level++ {
		penalty := p.Blacklist[level-1]
		if penalty == 0 {
			continue
		}
		for _, combo := range CombosByLevel[level] {
			if _, seen := hit[combo]; seen {
				continue
			}
			if strings.Contains(boundary, combo) {
				total += penalty
				hit[combo] = struct{}{}
				continue
			}
			for i := 1; i < len(combo); i++ {
				if strings.HasSuffix(last, combo[:i]) && strings.HasPrefix(cand, combo[i:]) {
					total += penalty
					hit[combo] = struct{}{}
					break
				}
			}
		}
	}
	return total
}

// boundaryRepetitionPenalty covers triple letters, echoed syllables, and
// a repeated vowel sound across the boundary. Inputs are lowercase.
func boundaryRepetitionPenalty(last, cand string, p Penalties) float64 {
	var total float64

	lastChar := rune(last[len(last)-1])
	firstChar := rune(cand[0])

	// A same-letter join only becomes a triple when one side already
	// doubles that letter.
	if lastChar == firstChar {
		doubled := (len(last) >= 2 && last[len(last)-2] == last[len(last)-1]) ||
			(len(cand) >= 2 && cand[0] == cand[1])
		if doubled {
			factor := 1.0
			if isForgiving(lastChar) {
				factor = p.TripleLetterCommonFactor
			}
			total += p.TripleLetter * factor
		}
	}

	// Echoed syllable: the trailing i characters of prev equal the leading
	// i of next. First matching window length wins; lengths do not stack.
	maxWindow := min(len(last), len(cand), 3)
	for i := 1; i <= maxWindow; i++ {
		if last[len(last)-i:] == cand[:i] {
			factor := 1.0
			if i == 1 && isForgiving(lastChar) {
				factor = p.SyllableCommonFactor
			}
			total += p.SyllableRepeat * factor
			break
		}
	}

	if lv, ok := lastVowel(last); ok {
		if fv, ok := firstVowel(cand); ok && lv == fv {
			total += p.VowelAcrossBoundary
		}
	}

	return total
}

// joinAdjustment returns the net signed adjustment from the specific join
// rules: awkward vowel pairs, hard-stop collisions, cluster-into-hard-stop,
// and the smooth transition bonus. Inputs are lowercase.
func joinAdjustment(last, cand string, p Penalties) float64 {
	var adj float64

	lastChar := rune(last[len(last)-1])
	firstChar := rune(cand[0])

	switch {
	case IsVowel(lastChar) && IsVowel(firstChar):
		pair := string(lastChar) + string(firstChar)
		if _, ok := awkwardVowelPairs[pair]; ok {
			adj -= p.AwkwardVowelJoin
		}
	case !IsVowel(lastChar) && !IsVowel(firstChar):
		if isHardStop(lastChar) && (isHardStop(firstChar) || firstChar == 'f' || firstChar == 's') {
			adj -= p.HardStopJoin
		}
	}

	// Consonant cluster running into a hard stop, unless the cluster ends
	// in a letter that releases cleanly.
	if len(last) >= 2 &&
		!IsVowel(lastChar) && !IsVowel(rune(last[len(last)-2])) &&
		isHardStop(firstChar) && !strings.ContainsRune("lrmns", lastChar) {
		adj -= p.ClusterHardStop
	}

	if isLiquidOrNasal(lastChar) && IsVowel(firstChar) {
		adj += p.SmoothTransitionBonus
	}

	return adj
}

// lastVowel returns the last vowel of lowercase s.
func lastVowel(s string) (rune, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if IsVowel(rune(s[i])) {
			return rune(s[i]), true
		}
	}
	return 0, false
}

// firstVowel returns the first vowel of lowercase s.
func firstVowel(s string) (rune, bool) {
	for _, r := range s {
		if IsVowel(r) {
			return r, true
		}
	}
	return 0, false
}
