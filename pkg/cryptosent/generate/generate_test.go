package generate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/cryptosent/pkg/cryptosent/rng"
	"github.com/komsit37/cryptosent/pkg/cryptosent/trend"
	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

// fixedSource returns the same draw every time.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) IntN(n int) int   { return int(s.f * float64(n)) }

var (
	btc  = types.Asset{Name: "Bitcoin", Symbol: "BTC", Price: 76408.41}
	ada  = types.Asset{Name: "Cardano", Symbol: "ADA", Price: 0.46}
	end  = time.Date(2024, 11, 30, 15, 4, 5, 0, time.UTC)
	univ = types.Universe{
		Assets:        []types.Asset{btc, ada},
		PositiveWords: []string{"bullish", "growth", "rally"},
		NegativeWords: []string{"bearish", "crash", "dump"},
	}
)

func TestGenerateSentimentInvariants(t *testing.T) {
	cfg := NewConfig(univ, end)
	for seed := uint64(1); seed <= 50; seed++ {
		for _, a := range univ.Assets {
			s := Generate(cfg, a, rng.New(seed))
			require.Len(t, s.Days, types.SeriesDays)
			for _, d := range s.Days {
				assert.InDelta(t, 1.0, d.PositiveSentiment+d.NegativeSentiment, 1e-12)
				assert.GreaterOrEqual(t, d.PositiveSentiment, 0.1)
				assert.LessOrEqual(t, d.PositiveSentiment, 0.9)
				assert.GreaterOrEqual(t, d.Mentions, 0)
				assert.Greater(t, d.Price, 0.0)
				assert.Equal(t, s.Trend, d.Trend)
			}
		}
	}
}

func TestGenerateDates(t *testing.T) {
	s := Generate(NewConfig(univ, end), btc, rng.New(7))
	assert.Equal(t, "2024-10-31", s.Days[0].Date.Format(types.DateLayout))
	assert.Equal(t, "2024-11-30", s.Days[types.SeriesDays-1].Date.Format(types.DateLayout))
}

func TestGenerateFirstDayPriceAppliesOneChange(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		s := Generate(NewConfig(univ, end), btc, rng.New(seed))
		first := s.Days[0]
		want := btc.Price + btc.Price*first.PriceChangePct/100
		assert.InDelta(t, want, first.Price, 1e-6)

		for i := 1; i < len(s.Days); i++ {
			prev := s.Days[i-1].Price
			want := prev + prev*s.Days[i].PriceChangePct/100
			assert.InDelta(t, want, s.Days[i].Price, 1e-6)
		}
	}
}

func TestGenerateStableWithoutNoiseHoldsBias(t *testing.T) {
	zero := 0.0
	cfg := NewConfig(univ, end)
	cfg.Noise = &zero
	cfg.Trend = types.Stable

	s := Generate(cfg, btc, rng.New(99))
	lo, hi := BiasRange("BTC")
	require.GreaterOrEqual(t, s.Bias, lo)
	require.Less(t, s.Bias, hi)
	for _, d := range s.Days {
		assert.Equal(t, s.Bias, d.PositiveSentiment)
	}
}

func TestGenerateUptrendContribution(t *testing.T) {
	zero := 0.0
	cfg := NewConfig(univ, end)
	cfg.Noise = &zero
	cfg.Trend = types.Uptrend

	// bias 0.5 for ADA keeps every value away from the clamp bounds
	s := Generate(cfg, ada, fixedSource{f: 0.5})
	assert.Equal(t, types.Uptrend, s.Trend)
	assert.GreaterOrEqual(t, trend.Modifier(s.Trend, 30), trend.Modifier(s.Trend, 0))
	assert.GreaterOrEqual(t, s.Days[30].PositiveSentiment, s.Days[0].PositiveSentiment)
	assert.InDelta(t, 0.5, s.Days[0].PositiveSentiment, 1e-12)
	assert.InDelta(t, 0.65, s.Days[30].PositiveSentiment, 1e-12)
}

func TestGenerateFixedDraws(t *testing.T) {
	cfg := NewConfig(univ, end)
	cfg.Trend = types.Stable

	s := Generate(cfg, btc, fixedSource{f: 0.5})
	d := s.Days[0]
	assert.InDelta(t, 0.7, d.PositiveSentiment, 1e-12)
	// IntRange(5000, 50000) with f=0.5 -> 5000 + 22500, tripled for BTC
	assert.Equal(t, 82500, d.Mentions)
	assert.Equal(t, 24750, d.Posts)
	assert.Equal(t, 222750, d.Likes)
	// (0.7-0.5)*2*1.25, no contrarian flip since 0.5 >= 0.2
	assert.InDelta(t, 0.5, d.PriceChangePct, 1e-12)
	// positive words drawn at p=0.7 are all included, negative at p=0.3 none
	require.Len(t, d.PositiveWords, 3)
	assert.Empty(t, d.NegativeWords)
	assert.Equal(t, "bullish", d.PositiveWords[0].Word)
	// maxCount round(82500*0.01) = 825, IntRange(1, 825) = 1 + IntN(825)
	assert.Equal(t, 413, d.PositiveWords[0].Count)
}

func TestGenerateContrarianFlip(t *testing.T) {
	cfg := NewConfig(univ, end)
	cfg.Trend = types.Stable

	// every draw is 0.1: Chance(0.2) fires so the move is against sentiment
	s := Generate(cfg, btc, fixedSource{f: 0.1})
	for _, d := range s.Days {
		if d.PositiveSentiment > 0.5 {
			assert.Less(t, d.PriceChangePct, 0.0)
		}
	}
}

func TestGenerateWordCountsBounded(t *testing.T) {
	s := Generate(NewConfig(univ, end), ada, rng.New(3))
	for _, d := range s.Days {
		limit := max(1, int(float64(d.Mentions)*0.01+0.5))
		for _, wc := range append(append([]types.WordCount(nil), d.PositiveWords...), d.NegativeWords...) {
			assert.GreaterOrEqual(t, wc.Count, 1)
			assert.LessOrEqual(t, wc.Count, limit)
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	cfg := NewConfig(univ, end)
	a := Generate(cfg, btc, rng.New(11))
	b := Generate(cfg, btc, rng.New(11))
	assert.Equal(t, a, b)
}

func TestTiers(t *testing.T) {
	lo, hi := BiasRange("SOL")
	assert.Equal(t, [2]float64{0.6, 0.8}, [2]float64{lo, hi})
	lo, hi = BiasRange("DOGE")
	assert.Equal(t, [2]float64{0.45, 0.65}, [2]float64{lo, hi})
	lo, hi = BiasRange("AVAX")
	assert.Equal(t, [2]float64{0.4, 0.6}, [2]float64{lo, hi})

	assert.Equal(t, 3, VolumeMultiplier("ETH"))
	assert.Equal(t, 2, VolumeMultiplier("BNB"))
	assert.Equal(t, 1, VolumeMultiplier("DOGE"))
}
