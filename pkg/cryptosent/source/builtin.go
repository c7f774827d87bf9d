package source

import (
	"context"

	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

var defaultAssets = []types.Asset{
	{Name: "Bitcoin", Symbol: "BTC", Price: 76408.41},
	{Name: "Ethereum", Symbol: "ETH", Price: 3345.88},
	{Name: "Tether", Symbol: "USDT", Price: 1.00},
	{Name: "XRP", Symbol: "XRP", Price: 0.57},
	{Name: "Binance Coin", Symbol: "BNB", Price: 541.40},
	{Name: "Solana", Symbol: "SOL", Price: 184.32},
	{Name: "USD Coin", Symbol: "USDC", Price: 1.00},
	{Name: "Cardano", Symbol: "ADA", Price: 0.46},
	{Name: "Dogecoin", Symbol: "DOGE", Price: 0.17},
	{Name: "Avalanche", Symbol: "AVAX", Price: 34.29},
}

var defaultPositiveWords = []string{
	"bullish", "growth", "opportunity", "potential", "innovation",
	"adoption", "profit", "gain", "partnership", "breakthrough",
	"rally", "surge", "milestone", "success", "revolution",
	"future", "confidence", "mainstream", "institutional", "whale",
}

var defaultNegativeWords = []string{
	"bearish", "crash", "risk", "regulation", "ban", "sell",
	"dump", "fraud", "scam", "bubble", "correction", "decline",
	"volatile", "uncertainty", "concern", "overvalued", "criticism",
	"warning", "hack", "competition",
}

// Default returns a fresh copy of the built-in universe.
func Default() types.Universe {
	return types.Universe{
		Assets:        append([]types.Asset(nil), defaultAssets...),
		PositiveWords: append([]string(nil), defaultPositiveWords...),
		NegativeWords: append([]string(nil), defaultNegativeWords...),
	}
}

// BuiltinSource serves the compiled-in top-10 universe.
type BuiltinSource struct{}

func (BuiltinSource) Load(ctx context.Context, spec any) (types.Universe, error) { //nolint:revive
	u := Default()
	return u, Validate(u)
}
