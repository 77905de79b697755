package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/nameforge/pkg/namegen"
	"github.com/dmitrymomot/nameforge/pkg/vibe"
)

const (
	defaultCount = 5
	maxCount     = 20
)

// formInt returns the form value parsed as an int, or false when the key
// is absent or malformed.
func formInt(r *http.Request, key string) (int, bool) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func formFloat(r *http.Request, key string) (float64, bool) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func formBool(r *http.Request, key string) (bool, bool) {
	if !r.Form.Has(key) {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(r.FormValue(key))) {
	case "1", "true", "on", "yes":
		return true, true
	default:
		return false, true
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// parseCount reads the requested number of names, bounded to [1, 20].
func parseCount(r *http.Request) int {
	n, ok := formInt(r, "count")
	if !ok {
		return defaultCount
	}
	return clampInt(n, 1, maxCount)
}

// optionsFromForm builds generation options from form fields. Parsing is
// deliberately forgiving: a malformed or out-of-range field keeps the value
// the preset (or the defaults) already carry, it never fails the request.
func optionsFromForm(r *http.Request) *namegen.Options {
	opts, ok := namegen.Preset(r.FormValue("preset"))
	if !ok {
		opts = namegen.DefaultOptions()
	}

	if t := strings.TrimSpace(r.FormValue("theme")); t != "" {
		opts.Theme = t
	}

	parseTarget(r, opts)
	parseBlockCounts(r, opts)

	if p, ok := formFloat(r, "vowel_first_prefix"); ok && p >= 0 && p <= 1 {
		opts.VowelFirst = namegen.Prob(p)
	}

	if f, ok := formFloat(r, "special_features"); ok && f >= 0 && f <= 1 {
		opts.FeatureChance = f
	}
	if n, ok := formInt(r, "max_special_features"); ok && n >= 0 {
		opts.MaxFeatures = n
	}
	if b, ok := formBool(r, "allow_apostrophes"); ok {
		opts.AllowApostrophes = b
	}
	if b, ok := formBool(r, "allow_hyphens"); ok {
		opts.AllowHyphens = b
	}
	if b, ok := formBool(r, "allow_spaces"); ok {
		opts.AllowSpaces = b
	}

	if f, ok := formFloat(r, "character_modifications"); ok && f >= 0 && f <= 1 {
		opts.ModificationChance = f
	}
	if n, ok := formInt(r, "max_modifications"); ok && n >= 0 {
		opts.MaxModifications = n
	}
	if b, ok := formBool(r, "allow_diacritics"); ok {
		opts.AllowDiacritics = b
	}
	if b, ok := formBool(r, "allow_ligatures"); ok {
		opts.AllowLigatures = b
	}

	parseScoring(r, opts)
	return opts
}

// parseTarget reads <axis>_min and <axis>_max fields for every aesthetic
// axis. Bounds are clamped to the scale; a missing side defaults to the
// scale end; inverted bounds are swapped.
func parseTarget(r *http.Request, opts *namegen.Options) {
	for _, ax := range vibe.Axes() {
		lo, okLo := formInt(r, ax.String()+"_min")
		hi, okHi := formInt(r, ax.String()+"_max")
		if !okLo && !okHi {
			continue
		}
		if !okLo {
			lo = vibe.ScaleMin
		}
		if !okHi {
			hi = vibe.ScaleMax
		}
		lo = clampInt(lo, vibe.ScaleMin, vibe.ScaleMax)
		hi = clampInt(hi, vibe.ScaleMin, vibe.ScaleMax)
		if lo > hi {
			lo, hi = hi, lo
		}
		// Bounds are clamped and ordered, Set cannot fail.
		_ = opts.Target.Set(ax, lo, hi)
	}
}

// parseBlockCounts reads repeated block_counts fields plus optional
// block_count_<n>_weight fields and expands them into the weighted list.
func parseBlockCounts(r *http.Request, opts *namegen.Options) {
	raw := r.Form["block_counts"]
	if len(raw) == 0 {
		return
	}
	var counts []int
	seen := make(map[int]bool)
	for _, v := range raw {
		for _, field := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' }) {
			n, err := strconv.Atoi(field)
			if err != nil || n < 2 || n > 4 || seen[n] {
				continue
			}
			seen[n] = true
			counts = append(counts, n)
		}
	}
	if len(counts) == 0 {
		return
	}
	var weighted []int
	for _, n := range counts {
		weight := 1
		if w, ok := formInt(r, fmt.Sprintf("block_count_%d_weight", n)); ok && w >= 0 {
			weight = w
		}
		for i := 0; i < weight; i++ {
			weighted = append(weighted, n)
		}
	}
	if len(weighted) > 0 {
		opts.BlockCounts = weighted
	}
}

// parseScoring reads scoring overrides. The config setters already reject
// out-of-range values; the plain rule magnitudes accept any non-negative
// float.
func parseScoring(r *http.Request, opts *namegen.Options) {
	vw, okV := formFloat(r, "weight_vibe")
	cw, okC := formFloat(r, "weight_compatibility")
	if okV && okC {
		opts.Scoring.SetWeights(vw, cw)
	}
	if n, ok := formInt(r, "top_n_candidates"); ok {
		opts.Scoring.SetTopN(n)
	}
	if f, ok := formFloat(r, "low_score_threshold"); ok {
		opts.Scoring.SetLowScoreThreshold(f)
	}
	if f, ok := formFloat(r, "bonus_smooth_transition"); ok {
		opts.Scoring.SetSmoothTransitionBonus(f)
	}
	for level := 1; level <= 5; level++ {
		if f, ok := formFloat(r, fmt.Sprintf("blacklist_level%d", level)); ok {
			opts.Scoring.SetBlacklistPenalty(level, f)
		}
	}

	p := &opts.Scoring.Penalties
	magnitudes := map[string]*float64{
		"penalty_repetition_direct_block":                    &p.DirectRepeat,
		"penalty_repetition_sequence":                        &p.SequenceRepeat,
		"penalty_repetition_syllable":                        &p.SyllableRepeat,
		"penalty_repetition_vowel_across_boundary":           &p.VowelAcrossBoundary,
		"penalty_repetition_triple_letter":                   &p.TripleLetter,
		"penalty_repetition_triple_letter_common_multiplier": &p.TripleLetterCommonFactor,
		"penalty_repetition_syllable_common_multiplier":      &p.SyllableCommonFactor,
		"penalty_boundary_consonants_3":                      &p.Consonants3,
		"penalty_boundary_consonants_4plus":                  &p.Consonants4Plus,
		"penalty_boundary_vowels_3plus":                      &p.Vowels3Plus,
		"penalty_boundary_hard_stop_join":                    &p.HardStopJoin,
		"penalty_boundary_awkward_vowel_join":                &p.AwkwardVowelJoin,
		"penalty_boundary_cluster_hard_stop":                 &p.ClusterHardStop,
	}
	for key, field := range magnitudes {
		if f, ok := formFloat(r, key); ok && f >= 0 {
			*field = f
		}
	}
}
