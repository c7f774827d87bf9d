package render

import (
	"encoding/json"
	"io"

	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

// jsonAsset is the export shape for one ticker.
type jsonAsset struct {
	Name                      string             `json:"name"`
	Symbol                    string             `json:"symbol"`
	Data                      map[string]jsonDay `json:"data"`
	Trend                     string             `json:"trend"`
	SentimentPriceCorrelation float64            `json:"sentiment_price_correlation"`
	AvgDailyMentions          float64            `json:"avg_daily_mentions"`
	TopPositiveWords          []wordPair         `json:"top_positive_words"`
	TopNegativeWords          []wordPair         `json:"top_negative_words"`
}

type jsonDay struct {
	PositiveSentiment float64        `json:"positive_sentiment"`
	NegativeSentiment float64        `json:"negative_sentiment"`
	Mentions          int            `json:"mentions"`
	Posts             int            `json:"posts"`
	Likes             int            `json:"likes"`
	Price             float64        `json:"price"`
	PriceChangePct    float64        `json:"price_change_pct"`
	PositiveWords     map[string]int `json:"positive_words"`
	NegativeWords     map[string]int `json:"negative_words"`
	Trend             string         `json:"trend"`
}

// wordPair encodes as ["word", count].
type wordPair types.WordCount

func (p wordPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Word, p.Count})
}

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

// Render writes the full dataset keyed by ticker, with per-date metrics and summary fields.
func (r *JSONRenderer) Render(w io.Writer, ds types.Dataset, opts RenderOptions) error {
	out := make(map[string]jsonAsset, len(ds.Rows))
	for _, row := range ds.Rows {
		out[row.Asset.Symbol] = exportRow(row)
	}
	enc := json.NewEncoder(w)
	if opts.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func exportRow(row types.Row) jsonAsset {
	data := make(map[string]jsonDay, len(row.Series.Days))
	for _, d := range row.Series.Days {
		data[d.Date.Format(types.DateLayout)] = jsonDay{
			PositiveSentiment: d.PositiveSentiment,
			NegativeSentiment: d.NegativeSentiment,
			Mentions:          d.Mentions,
			Posts:             d.Posts,
			Likes:             d.Likes,
			Price:             d.Price,
			PriceChangePct:    d.PriceChangePct,
			PositiveWords:     wordMap(d.PositiveWords),
			NegativeWords:     wordMap(d.NegativeWords),
			Trend:             string(d.Trend),
		}
	}
	return jsonAsset{
		Name:                      row.Asset.Name,
		Symbol:                    row.Asset.Symbol,
		Data:                      data,
		Trend:                     string(row.Series.Trend),
		SentimentPriceCorrelation: row.Summary.Correlation,
		AvgDailyMentions:          row.Summary.AvgMentions,
		TopPositiveWords:          pairs(row.Summary.TopPositive),
		TopNegativeWords:          pairs(row.Summary.TopNegative),
	}
}

func wordMap(words []types.WordCount) map[string]int {
	m := make(map[string]int, len(words))
	for _, wc := range words {
		m[wc.Word] = wc.Count
	}
	return m
}

func pairs(words []types.WordCount) []wordPair {
	out := make([]wordPair, 0, len(words))
	for _, wc := range words {
		out = append(out, wordPair(wc))
	}
	return out
}
