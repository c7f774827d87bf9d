package columns

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

func sampleRow() types.Row {
	return types.Row{
		Asset: types.Asset{Name: "Bitcoin", Symbol: "BTC", Price: 100},
		Series: types.AssetSeries{
			Trend: types.Uptrend,
			Days: []types.DailyObservation{
				{PositiveSentiment: 0.6, Mentions: 1000, Posts: 300, Likes: 2000, Price: 101},
				{PositiveSentiment: 0.7, Mentions: 3000, Posts: 900, Likes: 9000, Price: 110},
			},
		},
		Summary: types.AssetSummary{
			Correlation:  0.456,
			AvgMentions:  2000,
			AvgSentiment: 0.65,
			TopPositive:  []types.WordCount{{Word: "rally", Count: 9}, {Word: "gain", Count: 3}},
		},
	}
}

func TestRenderValue(t *testing.T) {
	r := sampleRow()
	tests := map[string]string{
		"sym":            "BTC",
		"name":           "Bitcoin",
		"trend":          "uptrend",
		"sentiment":      "65.0%",
		"last_sentiment": "70.0%",
		"correlation":    "+0.46",
		"strength":       "moderate",
		"mentions":       "2,000",
		"posts":          "1,200",
		"likes":          "11,000",
		"ref_price":      "100.00",
		"price":          "110.00",
		"chg%":           "+10.00%",
		"top_positive":   "rally, gain",
		"top_negative":   "",
		"nope":           "",
	}
	for col, want := range tests {
		assert.Equal(t, want, RenderValue(col, r), col)
	}
}

func TestRenderValueEmptySeries(t *testing.T) {
	r := types.Row{Asset: types.Asset{Symbol: "X", Price: 1}}
	assert.Equal(t, "", RenderValue("price", r))
	assert.Equal(t, "", RenderValue("chg%", r))
	assert.Equal(t, "", RenderValue("last_sentiment", r))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "76,408.41", FormatPrice(76408.41))
	assert.Equal(t, "1.00", FormatPrice(1))
	assert.Equal(t, "0.1700", FormatPrice(0.17))
	assert.Equal(t, "1,234,567.89", FormatPrice(1234567.891))
}

func TestCompute(t *testing.T) {
	cols, err := Compute(nil)
	require.NoError(t, err)
	assert.Equal(t, Sets[DefaultSet], cols)

	cols, err = Compute([]string{"Ticker", "corr", "sym", "change"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sym", "correlation", "chg%"}, cols)

	_, err = Compute([]string{"volume"})
	assert.Error(t, err)
}

func TestExpandSets(t *testing.T) {
	cols, err := ExpandSets([]string{"engagement", "price", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"sym", "mentions", "posts", "likes", "ref_price", "price", "chg%"}, cols)

	_, err = ExpandSets([]string{"volume"})
	var use *UnknownSetError
	require.True(t, errors.As(err, &use))
	assert.Equal(t, "volume", use.Name)
	assert.Contains(t, use.Available, "summary")
}

func TestEverySetColumnIsRegistered(t *testing.T) {
	for name, cols := range Sets {
		for _, c := range cols {
			_, ok := Registry[c]
			assert.True(t, ok, "%s: %s", name, c)
		}
	}
}
