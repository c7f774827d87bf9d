package trend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/cryptosent/pkg/cryptosent/rng"
	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

func TestModifierShapes(t *testing.T) {
	tests := []struct {
		trend types.Trend
		day   int
		want  float64
	}{
		{types.Uptrend, 0, 0},
		{types.Uptrend, 10, 0.05},
		{types.Uptrend, 30, 0.15},
		{types.Uptrend, 40, 0.15},
		{types.Downtrend, 10, -0.05},
		{types.Downtrend, 30, -0.15},
		{types.Downtrend, 60, -0.15},
		{types.Volatile, 0, 0},
		{types.Volatile, 5, 0.15 * math.Sin(1)},
		{types.Recovery, 0, 0},
		{types.Recovery, 15, 0.15 * (1 - math.Exp(-1))},
		{types.Correction, 10, -0.10 * (1 - math.Exp(-1))},
		{types.Stable, 17, 0},
		{types.Trend("unknown"), 17, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Modifier(tt.trend, tt.day), 1e-12, "%s day %d", tt.trend, tt.day)
	}
}

func TestModifierBounds(t *testing.T) {
	for _, c := range Categories() {
		for day := 0; day < types.SeriesDays; day++ {
			m := Modifier(c, day)
			assert.LessOrEqual(t, m, 0.15+1e-12, "%s day %d", c, day)
			assert.GreaterOrEqual(t, m, -0.15-1e-12, "%s day %d", c, day)
		}
	}
}

func TestUptrendNonDecreasing(t *testing.T) {
	prev := Modifier(types.Uptrend, 0)
	for day := 1; day < types.SeriesDays; day++ {
		cur := Modifier(types.Uptrend, day)
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.GreaterOrEqual(t, Modifier(types.Uptrend, 30), Modifier(types.Uptrend, 0))
}

func TestPickCoversAllCategories(t *testing.T) {
	src := rng.New(42)
	seen := map[types.Trend]int{}
	for i := 0; i < 600; i++ {
		seen[Pick(src)]++
	}
	assert.Len(t, seen, len(Categories()))
}

func TestParse(t *testing.T) {
	got, err := Parse(" Recovery ")
	require.NoError(t, err)
	assert.Equal(t, types.Recovery, got)

	_, err = Parse("sideways")
	assert.Error(t, err)
}

func TestGroups(t *testing.T) {
	assert.True(t, IsPositive(types.Uptrend))
	assert.True(t, IsPositive(types.Recovery))
	assert.False(t, IsPositive(types.Volatile))
	assert.True(t, IsNegative(types.Downtrend))
	assert.True(t, IsNegative(types.Correction))
	assert.False(t, IsNegative(types.Stable))
}
