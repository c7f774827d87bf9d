package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

// ErrInvalidUniverse reports a universe that cannot drive a run.
var ErrInvalidUniverse = errors.New("invalid universe")

// Source loads the asset universe. The meaning of spec is up to the implementation (e.g., a filepath).
type Source interface {
	Load(ctx context.Context, spec any) (types.Universe, error)
}

// Validate checks that a universe is usable: at least one asset, unique non-empty
// tickers, positive reference prices and non-empty vocabularies.
func Validate(u types.Universe) error {
	if len(u.Assets) == 0 {
		return fmt.Errorf("%w: no assets", ErrInvalidUniverse)
	}
	seen := make(map[string]struct{}, len(u.Assets))
	for i, a := range u.Assets {
		sym := strings.TrimSpace(a.Symbol)
		if sym == "" {
			return fmt.Errorf("%w: asset %d has no symbol", ErrInvalidUniverse, i)
		}
		if _, ok := seen[sym]; ok {
			return fmt.Errorf("%w: duplicate symbol %s", ErrInvalidUniverse, sym)
		}
		seen[sym] = struct{}{}
		if a.Price <= 0 {
			return fmt.Errorf("%w: %s has non-positive price %v", ErrInvalidUniverse, sym, a.Price)
		}
	}
	if len(u.PositiveWords) == 0 {
		return fmt.Errorf("%w: empty positive vocabulary", ErrInvalidUniverse)
	}
	if len(u.NegativeWords) == 0 {
		return fmt.Errorf("%w: empty negative vocabulary", ErrInvalidUniverse)
	}
	return nil
}
