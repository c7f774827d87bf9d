package filter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

// Filter matches an asset by ticker or name.
type Filter interface {
	Match(a types.Asset) bool
}

// Parse builds an asset filter from an expression:
// - Comma-separated tickers: "BTC,ETH"
// - Glob on ticker: "US*"
// - Regex on ticker or name: "/^(BTC|ETH)$/"
// - Anything else: case-insensitive substring of ticker or name
func Parse(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Always(true), nil
	}
	if strings.HasPrefix(expr, "/") && strings.HasSuffix(expr, "/") && len(expr) > 2 {
		re, err := regexp.Compile(expr[1 : len(expr)-1])
		if err != nil {
			return nil, fmt.Errorf("asset filter %q: %w", expr, err)
		}
		return Regex{re: re}, nil
	}
	if strings.Contains(expr, ",") {
		set := map[string]struct{}{}
		for _, p := range strings.Split(expr, ",") {
			p = strings.ToUpper(strings.TrimSpace(p))
			if p == "" {
				continue
			}
			set[p] = struct{}{}
		}
		return TickerSet{set: set}, nil
	}
	if strings.ContainsAny(expr, "*?[") {
		if _, err := filepath.Match(expr, ""); err != nil {
			return nil, fmt.Errorf("asset filter %q: %w", expr, err)
		}
		return Glob{pattern: strings.ToUpper(expr)}, nil
	}
	return SubstrCI{needle: strings.ToLower(expr)}, nil
}

// Apply keeps the assets matched by f, preserving order.
func Apply(assets []types.Asset, f Filter) []types.Asset {
	if f == nil {
		return assets
	}
	out := make([]types.Asset, 0, len(assets))
	for _, a := range assets {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

type Always bool

func (a Always) Match(types.Asset) bool { return bool(a) }

type TickerSet struct{ set map[string]struct{} }

func (e TickerSet) Match(a types.Asset) bool {
	_, ok := e.set[strings.ToUpper(a.Symbol)]
	return ok
}

type Glob struct{ pattern string }

func (g Glob) Match(a types.Asset) bool {
	ok, _ := filepath.Match(g.pattern, strings.ToUpper(a.Symbol))
	return ok
}

type Regex struct{ re *regexp.Regexp }

func (r Regex) Match(a types.Asset) bool {
	return r.re.MatchString(a.Symbol) || r.re.MatchString(a.Name)
}

// SubstrCI matches if the ticker or name contains needle, case-insensitively.
type SubstrCI struct{ needle string }

func (s SubstrCI) Match(a types.Asset) bool {
	if s.needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Symbol), s.needle) ||
		strings.Contains(strings.ToLower(a.Name), s.needle)
}

// String provides a human-readable representation useful for logs/errors.
func (g Glob) String() string     { return fmt.Sprintf("glob:%s", g.pattern) }
func (r Regex) String() string    { return fmt.Sprintf("regex:%s", r.re) }
func (s SubstrCI) String() string { return fmt.Sprintf("substr-ci:%s", s.needle) }
