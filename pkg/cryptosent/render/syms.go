package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/komsit37/cryptosent/pkg/cryptosent/columns"
	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

// symsRenderer prints the tickers of a dataset on one comma-separated line.
// Requested columns are appended to each ticker, colon separated ("BTC:uptrend").
type symsRenderer struct{}

func NewSymsRenderer() Renderer {
	return symsRenderer{}
}

func (symsRenderer) Render(w io.Writer, ds types.Dataset, opts RenderOptions) error {
	var extra []string
	if len(opts.Columns) > 0 {
		cols, err := columns.Compute(opts.Columns)
		if err != nil {
			return err
		}
		for _, c := range cols {
			if c != "sym" {
				extra = append(extra, c)
			}
		}
	}

	entries := make([]string, 0, len(ds.Rows))
	for _, r := range ds.Rows {
		sym := strings.TrimSpace(r.Asset.Symbol)
		if sym == "" {
			continue
		}
		parts := []string{sym}
		for _, c := range extra {
			parts = append(parts, columns.RenderValue(c, r))
		}
		entries = append(entries, strings.Join(parts, ":"))
	}
	_, err := fmt.Fprintln(w, strings.Join(entries, ","))
	return err
}
