package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// shades holds the nine quantization levels, blank to full block.
var shades = []rune(" ▁▂▃▄▅▆▇█")

const maxLevel = 8

// Quantize maps each value to a level in [0, 8] relative to the min and max of values.
// When all values are equal the range is taken as 1.
func Quantize(values []float64) []int {
	if len(values) == 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}
	out := make([]int, len(values))
	for i, v := range values {
		lvl := int(math.Floor((v - lo) / rng * maxLevel))
		out[i] = min(max(lvl, 0), maxLevel)
	}
	return out
}

// Sparkline renders one shade character per value.
func Sparkline(values []float64) string {
	var b strings.Builder
	for _, lvl := range Quantize(values) {
		b.WriteRune(shades[lvl])
	}
	return b.String()
}

// ChartOptions configures Chart.
type ChartOptions struct {
	Width  int // inner width of the box
	Height int // number of plot rows
	Title  string
	Labels []string
}

// Chart draws a boxed block-bar chart with one column per value.
func Chart(values []float64, opts ChartOptions) string {
	if len(values) == 0 {
		return "No data to display"
	}
	height := max(opts.Height, 1)
	colWidth := max(opts.Width/len(values), 1)
	width := max(opts.Width, colWidth*len(values))
	levels := Quantize(values)

	var lines []string
	lines = append(lines, "┌"+strings.Repeat("─", width)+"┐")
	lines = append(lines, "│"+text.Pad(" "+text.Trim(opts.Title, width-2), width, ' ')+"│")
	lines = append(lines, "├"+strings.Repeat("─", width)+"┤")

	for row := height; row >= 1; row-- {
		var b strings.Builder
		for _, lvl := range levels {
			cell := " "
			// the bottom row is always drawn so the series minimum stays visible
			if row == 1 || lvl*height >= row*maxLevel {
				cell = "█"
			}
			b.WriteString(strings.Repeat(cell, colWidth))
		}
		lines = append(lines, "│"+text.Pad(b.String(), width, ' ')+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", width)+"┘")

	if len(opts.Labels) > 0 {
		lines = append(lines, " "+labelRow(opts.Labels, colWidth, width))
	}
	return strings.Join(lines, "\n")
}

// labelRow places each label at its column start, skipping labels that would overlap.
// The last label is always shown, pulled left if needed to fit.
func labelRow(labels []string, colWidth, width int) string {
	buf := []rune(strings.Repeat(" ", width))
	last := []rune(labels[len(labels)-1])
	lastPos := max(min((len(labels)-1)*colWidth, width-len(last)), 0)
	next := 0
	for i, l := range labels[:len(labels)-1] {
		pos := i * colWidth
		r := []rune(l)
		if pos < next || pos+len(r) >= lastPos {
			continue
		}
		copy(buf[pos:], r)
		next = pos + len(r) + 1
	}
	copy(buf[lastPos:], last)
	return strings.TrimRight(string(buf), " ")
}

// Bar renders a labelled horizontal bar for a value in [0, 1].
func Bar(value float64, maxWidth int, label string, asPercent bool) string {
	n := int(value * float64(maxWidth))
	n = min(max(n, 0), maxWidth)
	display := fmt.Sprintf("%.2f", value)
	if asPercent {
		display = fmt.Sprintf("%.1f%%", value*100)
	}
	return fmt.Sprintf("%-15s │%s%s│ %s", label, strings.Repeat("█", n), strings.Repeat(" ", maxWidth-n), display)
}
