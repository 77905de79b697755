package namegen

import (
	"math"
	"sort"

	"github.com/dmitrymomot/nameforge/pkg/phonetics"
	"github.com/dmitrymomot/nameforge/pkg/theme"
	"github.com/dmitrymomot/nameforge/pkg/vibe"
)

type candidate struct {
	frag   theme.Fragment
	vibe   float64
	compat float64
	total  float64
}

// selectFragment picks one fragment from the pool for the given slot. The
// used slice holds the texts already chosen, in order; the last entry is
// the fragment the candidate must follow. Callers hold the generator lock.
func (g *Generator) selectFragment(pool []theme.Fragment, role theme.Role, used []string, opts *Options) (theme.Fragment, SlotScore, error) {
	if len(pool) == 0 {
		return theme.Fragment{}, SlotScore{}, ErrEmptyPool
	}

	if role == theme.RolePrefix && opts.VowelFirst != nil {
		wantVowel := g.rng.Float64() < *opts.VowelFirst
		filtered := make([]theme.Fragment, 0, len(pool))
		for _, f := range pool {
			if f.VowelFirst == wantVowel {
				filtered = append(filtered, f)
			}
		}
		if len(filtered) > 0 {
			pool = filtered
		}
	}

	cfg := opts.Scoring
	var prev string
	if len(used) > 0 {
		prev = used[len(used)-1]
	}

	scored := make([]candidate, 0, len(pool))
	for _, f := range pool {
		vs := vibe.Match(f.Attrs, opts.Target)
		cs := 100.0
		if prev != "" {
			cs = phonetics.Compatibility(prev, f.Text, used, cfg.Penalties)
		}
		total := cfg.VibeWeight*vs + cfg.CompatWeight*cs
		if math.IsNaN(total) || math.IsInf(total, 0) {
			g.log.Warn("discarding unscorable candidate",
				"slot", role.String(), "fragment", f.Text)
			continue
		}
		scored = append(scored, candidate{frag: f, vibe: vs, compat: cs, total: total})
	}
	if len(scored) == 0 {
		return theme.Fragment{}, SlotScore{}, ErrScoringFailed
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].total > scored[j].total
	})

	best := scored[0]
	if best.total < cfg.LowScoreThreshold {
		g.log.Debug("forcing best candidate below threshold",
			"slot", role.String(), "fragment", best.frag.Text, "score", best.total)
		return best.frag, slotScore(role, best, true, len(scored)), nil
	}

	n := cfg.TopN
	if n > len(scored) {
		n = len(scored)
	}
	pick := scored[g.rng.Intn(n)]
	return pick.frag, slotScore(role, pick, false, len(scored)), nil
}

func slotScore(role theme.Role, c candidate, forced bool, poolSize int) SlotScore {
	return SlotScore{
		Slot:     role,
		Fragment: c.frag.Text,
		Vibe:     c.vibe,
		Compat:   c.compat,
		Total:    c.total,
		Forced:   forced,
		PoolSize: poolSize,
	}
}
