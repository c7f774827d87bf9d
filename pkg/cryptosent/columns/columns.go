package columns

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/komsit37/cryptosent/pkg/cryptosent/stats"
	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

// Resolver converts a dataset row into a display value for a column.
type Resolver func(r types.Row) string

// Registry maps column keys to resolvers.
var Registry = map[string]Resolver{}

// aliases maps alternative spellings to canonical keys.
var aliases = map[string]string{
	"ticker": "sym",
	"symbol": "sym",
	"corr":   "correlation",
	"chg":    "chg%",
	"change": "chg%",
}

// RightAligned lists numeric columns.
var RightAligned = map[string]bool{
	"sentiment": true, "last_sentiment": true, "correlation": true,
	"mentions": true, "posts": true, "likes": true,
	"ref_price": true, "price": true, "chg%": true,
}

func init() {
	Registry["sym"] = func(r types.Row) string { return r.Asset.Symbol }
	Registry["name"] = func(r types.Row) string { return r.Asset.Name }
	Registry["trend"] = func(r types.Row) string { return string(r.Series.Trend) }
	Registry["sentiment"] = func(r types.Row) string { return percent(r.Summary.AvgSentiment) }
	Registry["last_sentiment"] = func(r types.Row) string {
		d, ok := lastDay(r)
		if !ok {
			return ""
		}
		return percent(d.PositiveSentiment)
	}
	Registry["correlation"] = func(r types.Row) string { return fmt.Sprintf("%+.2f", r.Summary.Correlation) }
	Registry["strength"] = func(r types.Row) string { return stats.Strength(r.Summary.Correlation) }
	// mentions: average per day, comma separated
	Registry["mentions"] = func(r types.Row) string { return humanize.Comma(int64(r.Summary.AvgMentions)) }
	Registry["posts"] = func(r types.Row) string {
		total := 0
		for _, d := range r.Series.Days {
			total += d.Posts
		}
		return humanize.Comma(int64(total))
	}
	Registry["likes"] = func(r types.Row) string {
		total := 0
		for _, d := range r.Series.Days {
			total += d.Likes
		}
		return humanize.Comma(int64(total))
	}
	Registry["ref_price"] = func(r types.Row) string { return FormatPrice(r.Asset.Price) }
	Registry["price"] = func(r types.Row) string {
		d, ok := lastDay(r)
		if !ok {
			return ""
		}
		return FormatPrice(d.Price)
	}
	// chg%: change from reference price to last close
	Registry["chg%"] = func(r types.Row) string {
		if _, ok := lastDay(r); !ok || r.Asset.Price == 0 {
			return ""
		}
		return fmt.Sprintf("%+.2f%%", PeriodChangePct(r))
	}
	Registry["top_positive"] = func(r types.Row) string { return joinWords(r.Summary.TopPositive) }
	Registry["top_negative"] = func(r types.Row) string { return joinWords(r.Summary.TopNegative) }
}

// Canonical resolves an alias to its registry key.
func Canonical(col string) (string, bool) {
	col = strings.ToLower(strings.TrimSpace(col))
	if k, ok := aliases[col]; ok {
		col = k
	}
	_, ok := Registry[col]
	return col, ok
}

// Compute determines the final column order. Explicit columns are honored in order
// (de-duplicated); an empty list falls back to DefaultSet.
func Compute(explicit []string) ([]string, error) {
	if len(explicit) == 0 {
		return ExpandSets([]string{DefaultSet})
	}
	seen := map[string]struct{}{}
	out := make([]string, 0, len(explicit))
	for _, c := range explicit {
		key, ok := Canonical(c)
		if !ok {
			return nil, fmt.Errorf("unknown column %q; available: %s", c, strings.Join(Available(), ", "))
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out, nil
}

// Available lists all column keys, sorted.
func Available() []string {
	keys := make([]string, 0, len(Registry))
	for k := range Registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RenderValue calls the resolver for the given column.
func RenderValue(col string, r types.Row) string {
	if res, ok := Registry[col]; ok {
		return res(r)
	}
	return ""
}

// PeriodChangePct is the change from the reference price to the last close, in percent.
func PeriodChangePct(r types.Row) float64 {
	d, ok := lastDay(r)
	if !ok || r.Asset.Price == 0 {
		return 0
	}
	return (d.Price - r.Asset.Price) / r.Asset.Price * 100
}

// FormatPrice renders a price with comma separators; sub-dollar prices keep four decimals.
func FormatPrice(p float64) string {
	places := int32(2)
	if p < 1 {
		places = 4
	}
	d := decimal.NewFromFloat(p).Round(places)
	whole := d.Truncate(0)
	frac := d.Sub(whole).Abs().StringFixed(places)
	return humanize.Comma(whole.IntPart()) + strings.TrimPrefix(frac, "0")
}

func percent(v float64) string { return fmt.Sprintf("%.1f%%", v*100) }

func lastDay(r types.Row) (types.DailyObservation, bool) {
	if len(r.Series.Days) == 0 {
		return types.DailyObservation{}, false
	}
	return r.Series.Days[len(r.Series.Days)-1], true
}

func joinWords(words []types.WordCount) string {
	parts := make([]string, 0, len(words))
	for _, wc := range words {
		parts = append(parts, wc.Word)
	}
	return strings.Join(parts, ", ")
}
