package trend

import (
	"fmt"
	"math"
	"strings"

	"github.com/komsit37/cryptosent/pkg/cryptosent/rng"
	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

var categories = []types.Trend{
	types.Uptrend,
	types.Downtrend,
	types.Volatile,
	types.Stable,
	types.Recovery,
	types.Correction,
}

// Categories returns all trend categories in canonical order.
func Categories() []types.Trend {
	return append([]types.Trend(nil), categories...)
}

// Modifier returns the sentiment bias contributed by trend t on day i.
// Values stay within [-0.15, 0.15].
func Modifier(t types.Trend, day int) float64 {
	i := float64(day)
	switch t {
	case types.Uptrend:
		return math.Min(0.15, 0.005*i)
	case types.Downtrend:
		return math.Max(-0.15, -0.005*i)
	case types.Volatile:
		return 0.15 * math.Sin(i/5)
	case types.Recovery:
		return 0.15 * (1 - math.Exp(-i/15))
	case types.Correction:
		return -0.10 * (1 - math.Exp(-i/10))
	default:
		return 0
	}
}

// Pick chooses a category uniformly.
func Pick(src rng.Source) types.Trend {
	return categories[src.IntN(len(categories))]
}

// Parse validates a category name (case-insensitive).
func Parse(s string) (types.Trend, error) {
	want := types.Trend(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range categories {
		if c == want {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown trend %q", s)
}

// IsPositive reports whether t belongs to the improving group.
func IsPositive(t types.Trend) bool { return t == types.Uptrend || t == types.Recovery }

// IsNegative reports whether t belongs to the declining group.
func IsNegative(t types.Trend) bool { return t == types.Downtrend || t == types.Correction }

// Describe returns a one-line narrative for symbol following trend t.
func Describe(symbol string, t types.Trend) string {
	switch t {
	case types.Uptrend:
		return symbol + " shows an upward sentiment trend, indicating growing community optimism."
	case types.Downtrend:
		return symbol + " displays a declining sentiment trend, suggesting increasing community concern."
	case types.Volatile:
		return symbol + " exhibits volatile sentiment, reflecting market uncertainty and mixed opinions."
	case types.Recovery:
		return symbol + " demonstrates sentiment recovery, indicating improving community perception."
	case types.Correction:
		return symbol + " shows sentiment correction after previous highs, suggesting market normalization."
	default:
		return symbol + " maintains relatively stable sentiment throughout the period."
	}
}
