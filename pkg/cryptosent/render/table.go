package render

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/komsit37/cryptosent/pkg/cryptosent/columns"
	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

// TableRenderer prints one row per asset using the column registry.
type TableRenderer struct{}

func NewTableRenderer() *TableRenderer { return &TableRenderer{} }

func (r *TableRenderer) Render(w io.Writer, ds types.Dataset, opts RenderOptions) error {
	cols, err := columns.Compute(opts.Columns)
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if opts.Color {
		tw.SetStyle(table.StyleColoredDark)
	} else {
		tw.SetStyle(table.StyleLight)
	}
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false
	if opts.Width > 0 {
		tw.SetAllowedRowLength(opts.Width)
	}

	hdr := make(table.Row, len(cols))
	for i, c := range cols {
		hdr[i] = strings.ToUpper(c)
	}
	tw.AppendHeader(hdr)

	// Column configs: wrap text to MaxColWidth (default 40), numbers right-aligned
	maxWidth := opts.MaxColWidth
	if maxWidth <= 0 {
		maxWidth = 40
	}
	cfgs := make([]table.ColumnConfig, 0, len(cols))
	for i, c := range cols {
		cfg := table.ColumnConfig{Number: i + 1, WidthMax: maxWidth}
		if columns.RightAligned[c] {
			cfg.Align = text.AlignRight
			cfg.AlignHeader = text.AlignRight
		}
		cfgs = append(cfgs, cfg)
	}
	tw.SetColumnConfigs(cfgs)

	for _, rw := range ds.Rows {
		row := make(table.Row, len(cols))
		for i, c := range cols {
			val := columns.RenderValue(c, rw)
			if opts.Color {
				val = colorize(c, rw, val)
			}
			row[i] = val
		}
		tw.AppendRow(row)
	}

	tw.Render()
	return nil
}

// colorize paints signed columns green or red.
func colorize(col string, r types.Row, val string) string {
	var sign float64
	switch col {
	case "correlation":
		sign = r.Summary.Correlation
	case "chg%", "price":
		sign = columns.PeriodChangePct(r)
	case "trend":
		switch {
		case strings.HasPrefix(val, "up"), val == string(types.Recovery):
			sign = 1
		case strings.HasPrefix(val, "down"), val == string(types.Correction):
			sign = -1
		}
	default:
		return val
	}
	switch {
	case sign > 0:
		return text.Colors{text.FgGreen}.Sprint(val)
	case sign < 0:
		return text.Colors{text.FgRed}.Sprint(val)
	}
	return val
}
