package types

import "time"

// SeriesDays is the number of daily points in every generated series (30 days back plus today).
const SeriesDays = 31

// DateLayout is the key format used for per-day data.
const DateLayout = "2006-01-02"

// Trend names the shape applied to an asset's sentiment over its series.
type Trend string

const (
	Uptrend    Trend = "uptrend"
	Downtrend  Trend = "downtrend"
	Volatile   Trend = "volatile"
	Stable     Trend = "stable"
	Recovery   Trend = "recovery"
	Correction Trend = "correction"
)

// Asset is a tracked coin with its reference price.
type Asset struct {
	Name   string  `yaml:"name" json:"name"`
	Symbol string  `yaml:"symbol" json:"symbol"`
	Price  float64 `yaml:"price" json:"current_price"`
}

// Universe is the static configuration for a run: the assets and the word vocabularies.
type Universe struct {
	Assets        []Asset
	PositiveWords []string
	NegativeWords []string
}

// WordCount is a word with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// DailyObservation holds one day of generated metrics for one asset.
// PositiveSentiment + NegativeSentiment == 1.
type DailyObservation struct {
	Date              time.Time
	PositiveSentiment float64
	NegativeSentiment float64
	Mentions          int
	Posts             int
	Likes             int
	Price             float64
	PriceChangePct    float64
	// Word tallies keep vocabulary order; absent words are omitted.
	PositiveWords []WordCount
	NegativeWords []WordCount
	Trend         Trend
}

// AssetSeries is the full generated series for one asset, oldest day first.
type AssetSeries struct {
	Asset Asset
	Trend Trend
	Bias  float64
	Days  []DailyObservation
}

// AssetSummary holds statistics derived from an AssetSeries.
type AssetSummary struct {
	Correlation  float64
	AvgMentions  float64
	AvgSentiment float64
	TopPositive  []WordCount
	TopNegative  []WordCount
}

// Row bundles everything known about one asset after a run.
type Row struct {
	Asset   Asset
	Series  AssetSeries
	Summary AssetSummary
}

// Dataset is the result of one generation run.
type Dataset struct {
	RunID       string
	Seed        uint64
	GeneratedAt time.Time
	Rows        []Row
}

// Find returns the row for a ticker.
func (d Dataset) Find(symbol string) (Row, bool) {
	for _, r := range d.Rows {
		if r.Asset.Symbol == symbol {
			return r, true
		}
	}
	return Row{}, false
}
