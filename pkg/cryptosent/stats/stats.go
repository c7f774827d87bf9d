// Package stats reduces generated series into report-ready summary metrics.
package stats

import (
	"math"
	"sort"

	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

// TopK is the number of words kept per polarity.
const TopK = 5

// Polarity selects a word vocabulary.
type Polarity int

const (
	Positive Polarity = iota
	Negative
)

// Correlation returns the Pearson correlation coefficient of a and b.
// It returns 0 when the lengths differ, the input is empty, or either side has no variance.
func Correlation(a, b []float64) float64 {
	n := len(a)
	if n == 0 || n != len(b) {
		return 0
	}
	var sumA, sumB, sumAB, sumA2, sumB2 float64
	for i := range a {
		sumA += a[i]
		sumB += b[i]
		sumAB += a[i] * b[i]
		sumA2 += a[i] * a[i]
		sumB2 += b[i] * b[i]
	}
	fn := float64(n)
	num := fn*sumAB - sumA*sumB
	den := math.Sqrt((fn*sumA2 - sumA*sumA) * (fn*sumB2 - sumB*sumB))
	if den == 0 || math.IsNaN(den) {
		return 0
	}
	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// Sentiments returns the daily positive sentiment values.
func Sentiments(s types.AssetSeries) []float64 {
	out := make([]float64, len(s.Days))
	for i, d := range s.Days {
		out[i] = d.PositiveSentiment
	}
	return out
}

// PriceChanges returns the daily price change percentages.
func PriceChanges(s types.AssetSeries) []float64 {
	out := make([]float64, len(s.Days))
	for i, d := range s.Days {
		out[i] = d.PriceChangePct
	}
	return out
}

// SentimentPriceCorrelation correlates daily positive sentiment with daily price change.
func SentimentPriceCorrelation(s types.AssetSeries) float64 {
	return Correlation(Sentiments(s), PriceChanges(s))
}

// MeanMentions is the arithmetic mean of daily mentions.
func MeanMentions(s types.AssetSeries) float64 {
	if len(s.Days) == 0 {
		return 0
	}
	var sum float64
	for _, d := range s.Days {
		sum += float64(d.Mentions)
	}
	return sum / float64(len(s.Days))
}

// MeanSentiment is the arithmetic mean of daily positive sentiment.
func MeanSentiment(s types.AssetSeries) float64 {
	if len(s.Days) == 0 {
		return 0
	}
	var sum float64
	for _, d := range s.Days {
		sum += d.PositiveSentiment
	}
	return sum / float64(len(s.Days))
}

// TopWords sums word counts across all days and returns the k most frequent.
// Ties keep the order in which words were first seen.
func TopWords(s types.AssetSeries, p Polarity, k int) []types.WordCount {
	totals := map[string]int{}
	var order []string
	for _, d := range s.Days {
		words := d.PositiveWords
		if p == Negative {
			words = d.NegativeWords
		}
		for _, wc := range words {
			if _, ok := totals[wc.Word]; !ok {
				order = append(order, wc.Word)
			}
			totals[wc.Word] += wc.Count
		}
	}

	out := make([]types.WordCount, 0, len(order))
	for _, w := range order {
		out = append(out, types.WordCount{Word: w, Count: totals[w]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if k >= 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

// Summarize derives all summary metrics for a series.
func Summarize(s types.AssetSeries) types.AssetSummary {
	return types.AssetSummary{
		Correlation:  SentimentPriceCorrelation(s),
		AvgMentions:  MeanMentions(s),
		AvgSentiment: MeanSentiment(s),
		TopPositive:  TopWords(s, Positive, TopK),
		TopNegative:  TopWords(s, Negative, TopK),
	}
}

// Strength labels the magnitude of a correlation coefficient.
func Strength(r float64) string {
	a := math.Abs(r)
	switch {
	case a > 0.7:
		return "strong"
	case a > 0.3:
		return "moderate"
	default:
		return "weak"
	}
}

// Direction labels the sign of a correlation coefficient.
func Direction(r float64) string {
	if r > 0 {
		return "positive"
	}
	return "negative"
}
