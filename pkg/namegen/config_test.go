package namegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nameforge/pkg/namegen"
)

func TestDefaultScoringConfig(t *testing.T) {
	t.Parallel()

	cfg := namegen.DefaultScoringConfig()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 0.4, cfg.VibeWeight, 0.001)
	assert.InDelta(t, 0.6, cfg.CompatWeight, 0.001)
	assert.Equal(t, 20, cfg.TopN)
	assert.InDelta(t, 60, cfg.LowScoreThreshold, 0.001)
}

func TestScoringConfigSetters(t *testing.T) {
	t.Parallel()

	t.Run("valid values apply", func(t *testing.T) {
		t.Parallel()
		cfg := namegen.DefaultScoringConfig()
		cfg.SetWeights(0.7, 0.3).
			SetTopN(5).
			SetLowScoreThreshold(40).
			SetBlacklistPenalty(3, 50).
			SetSmoothTransitionBonus(25)
		assert.InDelta(t, 0.7, cfg.VibeWeight, 0.001)
		assert.InDelta(t, 0.3, cfg.CompatWeight, 0.001)
		assert.Equal(t, 5, cfg.TopN)
		assert.InDelta(t, 40, cfg.LowScoreThreshold, 0.001)
		assert.InDelta(t, 50, cfg.Penalties.Blacklist[2], 0.001)
		assert.InDelta(t, 25, cfg.Penalties.SmoothTransitionBonus, 0.001)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("invalid values are ignored", func(t *testing.T) {
		t.Parallel()
		cfg := namegen.DefaultScoringConfig()
		cfg.SetWeights(0.5, 0.6).   // does not sum to 1
			SetWeights(-0.2, 1.2). // negative
			SetTopN(0).
			SetLowScoreThreshold(150).
			SetLowScoreThreshold(-1).
			SetBlacklistPenalty(0, 10).
			SetBlacklistPenalty(6, 10).
			SetBlacklistPenalty(2, -5).
			SetSmoothTransitionBonus(-1)
		assert.Equal(t, namegen.DefaultScoringConfig(), cfg)
	})
}

func TestScoringConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := namegen.DefaultScoringConfig()
	cfg.VibeWeight = 0.9
	assert.ErrorIs(t, cfg.Validate(), namegen.ErrInvalidWeights)

	cfg = namegen.DefaultScoringConfig()
	cfg.TopN = 0
	assert.ErrorIs(t, cfg.Validate(), namegen.ErrInvalidTopN)

	cfg = namegen.DefaultScoringConfig()
	cfg.LowScoreThreshold = 101
	assert.ErrorIs(t, cfg.Validate(), namegen.ErrInvalidThreshold)
}

func TestOptionsSetBlockCounts(t *testing.T) {
	t.Parallel()

	o := namegen.DefaultOptions()
	require.NoError(t, o.SetBlockCounts(2, 3, 3, 4))
	assert.Equal(t, []int{2, 3, 3, 4}, o.BlockCounts)

	err := o.SetBlockCounts(2, 5)
	assert.ErrorIs(t, err, namegen.ErrInvalidBlockCount)
	assert.Equal(t, []int{2, 3, 3, 4}, o.BlockCounts, "failed set must leave the list unchanged")
}

func TestDefaultOptionsValidate(t *testing.T) {
	t.Parallel()

	o := namegen.DefaultOptions()
	require.NoError(t, o.Validate())
	require.NotNil(t, o.VowelFirst)
	assert.InDelta(t, 0.2, *o.VowelFirst, 0.001)
	assert.True(t, o.AllowDiacritics)
	assert.False(t, o.AllowLigatures)
	assert.False(t, o.AllowApostrophes)
}
