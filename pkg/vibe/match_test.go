package vibe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nameforge/pkg/vibe"
)

func fullAttrs(v int8) vibe.Attributes {
	return vibe.Attributes{v, v, v, v, v}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("perfect score when every value is in range", func(t *testing.T) {
		t.Parallel()

		var target vibe.Target
		for _, ax := range vibe.Axes() {
			require.NoError(t, target.Set(ax, 3, 7))
		}

		assert.InDelta(t, 100.0, vibe.Match(fullAttrs(5), target), 1e-9)
		assert.InDelta(t, 100.0, vibe.Match(fullAttrs(3), target), 1e-9)
		assert.InDelta(t, 100.0, vibe.Match(fullAttrs(7), target), 1e-9)
	})

	t.Run("strictly below perfect when any value is out of range", func(t *testing.T) {
		t.Parallel()

		var target vibe.Target
		require.NoError(t, target.Set(vibe.Potency, 8, 10))

		attrs := fullAttrs(5)
		attrs[vibe.Potency] = 4 // distance 4 from the min bound

		score := vibe.Match(attrs, target)
		assert.Less(t, score, 100.0)
		// 4/45 of the worst case distance.
		assert.InDelta(t, 100*(1-4.0/45.0), score, 1e-9)
	})

	t.Run("distance is measured to the nearer bound", func(t *testing.T) {
		t.Parallel()

		var target vibe.Target
		require.NoError(t, target.Set(vibe.Elegance, 4, 6))

		low := fullAttrs(5)
		low[vibe.Elegance] = 1 // 3 below min
		high := fullAttrs(5)
		high[vibe.Elegance] = 8 // 2 above max

		assert.Greater(t, vibe.Match(high, target), vibe.Match(low, target))
	})

	t.Run("no preference scores against the midpoint", func(t *testing.T) {
		t.Parallel()

		var target vibe.Target
		assert.InDelta(t, 100.0, vibe.Match(fullAttrs(5), target), 1e-9)
		assert.InDelta(t, 100*(1-5.0/45.0), vibe.Match(fullAttrs(6), target), 1e-9)
	})

	t.Run("missing data scores worse than known off-target data", func(t *testing.T) {
		t.Parallel()

		var target vibe.Target
		require.NoError(t, target.Set(vibe.Benevolence, 1, 5))

		missing := fullAttrs(3)
		missing[vibe.Benevolence] = 0 // no data

		offTarget := fullAttrs(3)
		offTarget[vibe.Benevolence] = 10 // distance 5 from max

		assert.Less(t, vibe.Match(missing, target), vibe.Match(offTarget, target))
	})

	t.Run("score is clamped to zero", func(t *testing.T) {
		t.Parallel()

		var target vibe.Target
		score := vibe.Match(vibe.Attributes{}, target) // all axes missing
		assert.GreaterOrEqual(t, score, 0.0)
		assert.InDelta(t, 100*(1-27.0/45.0), score, 1e-9)
	})
}

func TestTargetSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		axis    vibe.Axis
		min     int
		max     int
		wantErr error
	}{
		{name: "valid range", axis: vibe.Exoticism, min: 1, max: 10},
		{name: "single value range", axis: vibe.Potency, min: 5, max: 5},
		{name: "min below scale", axis: vibe.Elegance, min: 0, max: 5, wantErr: vibe.ErrInvalidRange},
		{name: "max above scale", axis: vibe.Elegance, min: 5, max: 11, wantErr: vibe.ErrInvalidRange},
		{name: "inverted range", axis: vibe.Benevolence, min: 7, max: 3, wantErr: vibe.ErrInvalidRange},
		{name: "unknown axis", axis: vibe.Axis(9), min: 1, max: 10, wantErr: vibe.ErrInvalidAxis},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var target vibe.Target
			err := target.Set(tt.axis, tt.min, tt.max)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			r, ok := target.Range(tt.axis)
			require.True(t, ok)
			assert.Equal(t, vibe.Range{Min: tt.min, Max: tt.max}, r)
		})
	}
}

func TestParseAxis(t *testing.T) {
	t.Parallel()

	for _, ax := range vibe.Axes() {
		parsed, ok := vibe.ParseAxis(ax.String())
		require.True(t, ok)
		assert.Equal(t, ax, parsed)
	}

	_, ok := vibe.ParseAxis("sparkle")
	assert.False(t, ok)
}
