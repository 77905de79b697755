package namegen_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nameforge/pkg/namegen"
	"github.com/dmitrymomot/nameforge/pkg/theme"
	"github.com/dmitrymomot/nameforge/pkg/vibe"
)

func attrs(elegance int8) vibe.Attributes {
	var a vibe.Attributes
	a[vibe.Elegance] = elegance
	return a
}

func testCatalog() *theme.Catalog {
	return theme.NewCatalog("test", map[theme.Role][]theme.Fragment{
		theme.RolePrefix: {
			{Text: "ael", Attrs: attrs(8), VowelFirst: true},
			{Text: "kor", Attrs: attrs(4)},
			{Text: "thal", Attrs: attrs(6)},
		},
		theme.RoleBridge: {
			{Text: "a", Attrs: attrs(7), VowelFirst: true},
			{Text: "i", Attrs: attrs(5), VowelFirst: true},
		},
		theme.RoleMiddle: {
			{Text: "and", Attrs: attrs(5), VowelFirst: true},
			{Text: "vin", Attrs: attrs(7)},
		},
		theme.RoleSuffix: {
			{Text: "dor", Attrs: attrs(3)},
			{Text: "wen", Attrs: attrs(9)},
			{Text: "ion", Attrs: attrs(6), VowelFirst: true},
		},
	})
}

// bareOptions disables both post-processing passes and the vowel-first
// preference so tests exercise assembly alone.
func bareOptions(counts ...int) *namegen.Options {
	o := namegen.DefaultOptions()
	o.BlockCounts = counts
	o.VowelFirst = nil
	o.FeatureChance = 0
	o.ModificationChance = 0
	return o
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	cat := testCatalog()
	a := namegen.New(cat, namegen.WithRand(rand.New(rand.NewSource(42))))
	b := namegen.New(cat, namegen.WithRand(rand.New(rand.NewSource(42))))

	for i := 0; i < 10; i++ {
		ra, err := a.Generate(bareOptions(3))
		require.NoError(t, err)
		rb, err := b.Generate(bareOptions(3))
		require.NoError(t, err)
		assert.Equal(t, ra.Name, rb.Name)
		assert.Equal(t, ra.Fragments, rb.Fragments)
	}
}

func TestGenerateBlockCounts(t *testing.T) {
	t.Parallel()

	gen := namegen.New(testCatalog(), namegen.WithRand(rand.New(rand.NewSource(1))))

	tests := []struct {
		count int
		roles []theme.Role
	}{
		{2, []theme.Role{theme.RolePrefix, theme.RoleSuffix}},
		{3, []theme.Role{theme.RolePrefix, theme.RoleMiddle, theme.RoleSuffix}},
		{4, []theme.Role{theme.RolePrefix, theme.RoleBridge, theme.RoleMiddle, theme.RoleSuffix}},
	}
	for _, tc := range tests {
		res, err := gen.Generate(bareOptions(tc.count))
		require.NoError(t, err)
		require.Len(t, res.Fragments, tc.count)
		require.Len(t, res.Slots, tc.count)
		for i, role := range tc.roles {
			assert.Equal(t, role, res.Slots[i].Slot)
		}
		assert.Equal(t, strings.Join(res.Fragments, ""), strings.ToLower(res.Name))
	}
}

func TestGenerateEmptyPool(t *testing.T) {
	t.Parallel()

	cat := theme.NewCatalog("test", map[theme.Role][]theme.Fragment{
		theme.RolePrefix: {{Text: "kor"}},
	})
	gen := namegen.New(cat)

	_, err := gen.Generate(bareOptions(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, namegen.ErrEmptyPool)

	var slotErr *namegen.SlotError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, theme.RoleSuffix, slotErr.Slot)
}

func TestGenerateInvalidOptions(t *testing.T) {
	t.Parallel()

	gen := namegen.New(testCatalog())

	opts := bareOptions(2)
	opts.Scoring.VibeWeight = 0.5
	opts.Scoring.CompatWeight = 0.6
	_, err := gen.Generate(opts)
	assert.ErrorIs(t, err, namegen.ErrInvalidWeights)

	opts = bareOptions(2)
	opts.BlockCounts = []int{5}
	_, err = gen.Generate(opts)
	assert.ErrorIs(t, err, namegen.ErrInvalidBlockCount)
}

func TestGenerateNilOptionsUsesDefaults(t *testing.T) {
	t.Parallel()

	gen := namegen.New(testCatalog(), namegen.WithRand(rand.New(rand.NewSource(7))))
	res, err := gen.Generate(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Name)
	assert.NotEmpty(t, res.Fragments)
}

func TestGenerateCapitalizesOutput(t *testing.T) {
	t.Parallel()

	gen := namegen.New(testCatalog(), namegen.WithRand(rand.New(rand.NewSource(3))))
	for i := 0; i < 20; i++ {
		res, err := gen.Generate(bareOptions(2))
		require.NoError(t, err)
		first := []rune(res.Name)[0]
		assert.Equal(t, strings.ToUpper(string(first)), string(first))
	}
}

func TestGenerateVowelFirstPreference(t *testing.T) {
	t.Parallel()

	gen := namegen.New(testCatalog(), namegen.WithRand(rand.New(rand.NewSource(11))))

	always := bareOptions(2)
	always.VowelFirst = namegen.Prob(1)
	for i := 0; i < 20; i++ {
		res, err := gen.Generate(always)
		require.NoError(t, err)
		assert.Equal(t, "ael", res.Fragments[0], "vowel-first probability 1 must pick the vowel-initial prefix")
	}

	never := bareOptions(2)
	never.VowelFirst = namegen.Prob(0)
	for i := 0; i < 20; i++ {
		res, err := gen.Generate(never)
		require.NoError(t, err)
		assert.NotEqual(t, "ael", res.Fragments[0])
	}
}

func TestGenerateVowelFirstFallsBackToFullPool(t *testing.T) {
	t.Parallel()

	cat := theme.NewCatalog("test", map[theme.Role][]theme.Fragment{
		theme.RolePrefix: {{Text: "ael", VowelFirst: true}},
		theme.RoleSuffix: {{Text: "dor"}},
	})
	gen := namegen.New(cat)

	opts := bareOptions(2)
	opts.VowelFirst = namegen.Prob(0) // wants consonant-initial, none exist
	res, err := gen.Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, "ael", res.Fragments[0])
}

func TestGenerateForcedBelowThreshold(t *testing.T) {
	t.Parallel()

	// Both suffixes repeat the prefix outright, flooring compatibility at
	// zero; neither total clears the threshold of 60, so the selector must
	// return the better of the two, flagged forced.
	cat := theme.NewCatalog("test", map[theme.Role][]theme.Fragment{
		theme.RolePrefix: {{Text: "kor", Attrs: attrs(10)}},
		theme.RoleSuffix: {
			{Text: "kor", Attrs: attrs(1)},
			{Text: "kor", Attrs: attrs(5)},
		},
	})
	gen := namegen.New(cat, namegen.WithRand(rand.New(rand.NewSource(9))))

	opts := bareOptions(2)
	require.NoError(t, opts.Target.Set(vibe.Elegance, 10, 10))

	for i := 0; i < 10; i++ {
		res, err := gen.Generate(opts)
		require.NoError(t, err)
		suffix := res.Slots[1]
		assert.True(t, suffix.Forced)
		assert.Less(t, suffix.Total, 60.0)
		// elegance 5 outscores elegance 1 on the vibe axis
		assert.InDelta(t, 88.89, suffix.Vibe, 0.01)
		assert.Zero(t, suffix.Compat)
	}
}

func TestGenerateTopOneIsDeterministic(t *testing.T) {
	t.Parallel()

	gen := namegen.New(testCatalog(), namegen.WithRand(rand.New(rand.NewSource(5))))

	opts := bareOptions(2)
	opts.Scoring.SetTopN(1)
	require.NoError(t, opts.Target.Set(vibe.Elegance, 9, 10))

	first, err := gen.Generate(opts)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		res, err := gen.Generate(opts)
		require.NoError(t, err)
		assert.Equal(t, first.Fragments, res.Fragments)
	}
}

func TestGenerateN(t *testing.T) {
	t.Parallel()

	gen := namegen.New(testCatalog(), namegen.WithRand(rand.New(rand.NewSource(2))))
	results, err := gen.GenerateN(5, bareOptions(2))
	require.NoError(t, err)
	assert.Len(t, results, 5)

	broken := theme.NewCatalog("test", map[theme.Role][]theme.Fragment{
		theme.RolePrefix: {{Text: "kor"}},
	})
	results, err = namegen.New(broken).GenerateN(3, bareOptions(2))
	assert.ErrorIs(t, err, namegen.ErrEmptyPool)
	assert.Empty(t, results)
}

func TestGenerateNContinuesPastFailures(t *testing.T) {
	t.Parallel()

	// No middles: two-block names fill fine, three-block names fail at the
	// middle slot. The batch must keep every two-block success and report
	// the failed entries without aborting.
	partial := theme.NewCatalog("test", map[theme.Role][]theme.Fragment{
		theme.RolePrefix: {{Text: "kor", Attrs: attrs(4)}},
		theme.RoleSuffix: {{Text: "dor", Attrs: attrs(3)}},
	})
	gen := namegen.New(partial, namegen.WithRand(rand.New(rand.NewSource(11))))

	results, err := gen.GenerateN(40, bareOptions(2, 3))
	require.ErrorIs(t, err, namegen.ErrEmptyPool)

	var slotErr *namegen.SlotError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, theme.RoleMiddle, slotErr.Slot)

	assert.NotEmpty(t, results)
	assert.Less(t, len(results), 40)
	for _, res := range results {
		assert.Len(t, res.Fragments, 2)
	}
}

func TestGenerateSeparatorAdjacency(t *testing.T) {
	t.Parallel()

	gen := namegen.New(testCatalog(), namegen.WithRand(rand.New(rand.NewSource(17))))

	opts := bareOptions(3, 4)
	opts.FeatureChance = 1
	opts.MaxFeatures = 3
	opts.AllowApostrophes = true
	opts.AllowHyphens = true
	opts.AllowSpaces = true

	for i := 0; i < 100; i++ {
		res, err := gen.Generate(opts)
		require.NoError(t, err)
		for _, pair := range []string{"''", "--", "  ", "'-", "-'", "' ", " '", "- ", " -"} {
			assert.NotContains(t, res.Name, pair)
		}
		assert.False(t, strings.ContainsAny(res.Name[:1], "'- "))
		assert.False(t, strings.ContainsAny(res.Name[len(res.Name)-1:], "'- "))
	}
}

func TestSlotErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := &namegen.SlotError{Slot: theme.RoleMiddle, Err: namegen.ErrEmptyPool}
	assert.ErrorIs(t, err, namegen.ErrEmptyPool)
	assert.True(t, errors.Is(err, namegen.ErrEmptyPool))
	assert.Contains(t, err.Error(), "middle")
}
