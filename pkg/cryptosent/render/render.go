package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

// Renderer renders a generated dataset to an output writer.
type Renderer interface {
	Render(w io.Writer, ds types.Dataset, opts RenderOptions) error
}

type RenderOptions struct {
	Columns     []string
	Color       bool
	PrettyJSON  bool
	MaxColWidth int
	// Width caps table rows; 0 means unlimited.
	Width int
	// ChartHeight is the number of rows in sentiment charts.
	ChartHeight int
}

// Formats lists the accepted output formats.
var Formats = []string{"report", "json", "table", "tickers"}

// ForFormat returns the renderer for an output format name.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "report":
		return NewReportRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "table":
		return NewTableRenderer(), nil
	case "tickers":
		return NewSymsRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown format %q; available: %s", format, strings.Join(Formats, ", "))
	}
}
