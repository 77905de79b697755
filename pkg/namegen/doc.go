// Package namegen assembles pronounceable invented names from scored
// fragments.
//
// A Generator walks a sequence of structural slots (prefix, optional
// bridge, optional middle, suffix), asking its selector for a fragment per
// slot. Every candidate in a slot's pool is scored on two dimensions, how
// well its aesthetic attributes match the requested target (vibe package)
// and how well it sounds after the fragments already chosen (phonetics
// package), combined as a weighted sum. Selection among acceptable
// candidates is deliberately randomized: one of the top-N candidates by
// combined score is picked uniformly, so repeated calls with
// the same options keep producing variety. When even the best candidate
// falls below the configured quality threshold the selector returns that
// best candidate outright and flags the slot as forced.
//
// After assembly two probability-gated passes run over the raw name: one
// inserts apostrophes, hyphens, or spaces at the best-scoring interior
// positions, and one substitutes diacritic vowel variants or collapses
// letter pairs into ligatures. A final pass capitalizes the first letter
// of every space- or hyphen-delimited segment.
//
// # Usage
//
//	cat, err := theme.Load("elf")
//	if err != nil { ... }
//
//	gen := namegen.New(cat)
//	res, err := gen.Generate(namegen.PresetElf())
//	if err != nil { ... }
//	fmt.Println(res.Name)
//
// Randomness is injectable for deterministic tests:
//
//	gen := namegen.New(cat, namegen.WithRand(rand.New(rand.NewSource(1))))
//
// Generators are safe for concurrent use; each call owns its generation
// context and draws from the shared random source under a lock.
package namegen
