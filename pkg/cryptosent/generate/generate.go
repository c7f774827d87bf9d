// Package generate synthesizes daily sentiment, engagement and price series for an asset.
package generate

import (
	"math"
	"time"

	"github.com/komsit37/cryptosent/pkg/cryptosent/rng"
	"github.com/komsit37/cryptosent/pkg/cryptosent/trend"
	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

const (
	// DefaultNoise is the half-width of the daily sentiment noise.
	DefaultNoise = 0.1

	minSentiment = 0.1
	maxSentiment = 0.9

	// contrarianChance is how often price moves against sentiment.
	contrarianChance = 0.2
)

// Config is the immutable input of a generation run.
type Config struct {
	PositiveWords []string
	NegativeWords []string
	// Start is the date of day 0.
	Start time.Time
	// Noise is the half-width of the daily noise; nil means DefaultNoise.
	Noise *float64
	// Trend forces the category when non-empty; otherwise one is picked at random.
	Trend types.Trend
}

// NewConfig builds a Config for a universe whose last day is end.
func NewConfig(u types.Universe, end time.Time) Config {
	y, m, d := end.Date()
	last := time.Date(y, m, d, 0, 0, 0, 0, end.Location())
	return Config{
		PositiveWords: u.PositiveWords,
		NegativeWords: u.NegativeWords,
		Start:         last.AddDate(0, 0, -(types.SeriesDays - 1)),
	}
}

func (c Config) noise() float64 {
	if c.Noise == nil {
		return DefaultNoise
	}
	return *c.Noise
}

// BiasRange returns the range the base positive bias is drawn from.
func BiasRange(symbol string) (lo, hi float64) {
	switch symbol {
	case "BTC", "ETH", "SOL":
		return 0.6, 0.8
	case "DOGE", "XRP":
		return 0.45, 0.65
	default:
		return 0.4, 0.6
	}
}

// VolumeMultiplier scales the base mention volume by popularity.
func VolumeMultiplier(symbol string) int {
	switch symbol {
	case "BTC", "ETH":
		return 3
	case "SOL", "BNB", "XRP":
		return 2
	default:
		return 1
	}
}

// Generate produces the full series for one asset. The running price starts at the
// asset's reference price and carries across days.
func Generate(cfg Config, asset types.Asset, src rng.Source) types.AssetSeries {
	lo, hi := BiasRange(asset.Symbol)
	bias := rng.Uniform(src, lo, hi)

	category := cfg.Trend
	if category == "" {
		category = trend.Pick(src)
	}

	noise := cfg.noise()
	price := asset.Price
	days := make([]types.DailyObservation, 0, types.SeriesDays)

	for i := 0; i < types.SeriesDays; i++ {
		mod := trend.Modifier(category, i)
		daily := rng.Uniform(src, -noise, noise)

		positive := clamp(bias+mod+daily, minSentiment, maxSentiment)
		negative := 1 - positive

		base := rng.IntRange(src, 5000, 50000) * VolumeMultiplier(asset.Symbol)
		mentions := int(math.Max(0, math.Round(float64(base)*(1+mod+daily))))
		posts := int(math.Round(float64(mentions) * rng.Uniform(src, 0.2, 0.4)))
		likes := int(math.Round(float64(posts) * rng.Uniform(src, 3, 15)))

		pct := (positive - 0.5) * 2 * rng.Uniform(src, 0.5, 2.0)
		if rng.Chance(src, contrarianChance) {
			pct = -pct
		}
		price += price * pct / 100

		maxCount := max(1, int(math.Round(float64(mentions)*0.01)))
		days = append(days, types.DailyObservation{
			Date:              cfg.Start.AddDate(0, 0, i),
			PositiveSentiment: positive,
			NegativeSentiment: negative,
			Mentions:          mentions,
			Posts:             posts,
			Likes:             likes,
			Price:             price,
			PriceChangePct:    pct,
			PositiveWords:     tally(src, cfg.PositiveWords, positive, maxCount),
			NegativeWords:     tally(src, cfg.NegativeWords, negative, maxCount),
			Trend:             category,
		})
	}

	return types.AssetSeries{Asset: asset, Trend: category, Bias: bias, Days: days}
}

// tally includes each word with probability p and gives it a count in [1, maxCount].
func tally(src rng.Source, vocab []string, p float64, maxCount int) []types.WordCount {
	out := make([]types.WordCount, 0, len(vocab))
	for _, w := range vocab {
		if rng.Chance(src, p) {
			out = append(out, types.WordCount{Word: w, Count: rng.IntRange(src, 1, maxCount)})
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
