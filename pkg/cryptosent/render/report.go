package render

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/komsit37/cryptosent/pkg/cryptosent/stats"
	"github.com/komsit37/cryptosent/pkg/cryptosent/trend"
	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

const (
	pageWidth        = 80
	barWidth         = 40
	chartWidth       = 60
	chartDays        = 14
	defaultChartRows = 8
	weakCorrelation  = 0.2
	strongPositive   = 0.5
)

var (
	// trendSymbols get a sentiment chart; wordSymbols get a top-terms listing.
	trendSymbols = []string{"BTC", "ETH", "SOL", "DOGE", "XRP"}
	wordSymbols  = []string{"BTC", "ETH", "SOL", "DOGE"}
	majorCoins   = map[string]bool{"BTC": true, "ETH": true, "SOL": true}
	marketLeader = map[string]bool{"BTC": true, "ETH": true}
)

// Ranked is one asset's value in a ranking.
type Ranked struct {
	Symbol string
	Name   string
	Value  float64
}

// RankBySentiment orders rows by mean positive sentiment, highest first.
func RankBySentiment(rows []types.Row) []Ranked {
	return rank(rows, func(r types.Row) float64 { return r.Summary.AvgSentiment }, func(v float64) float64 { return v })
}

// RankByCorrelation orders rows by absolute correlation, strongest first. Values keep their sign.
func RankByCorrelation(rows []types.Row) []Ranked {
	return rank(rows, func(r types.Row) float64 { return r.Summary.Correlation }, math.Abs)
}

// RankByMentions orders rows by mean daily mentions, highest first.
func RankByMentions(rows []types.Row) []Ranked {
	return rank(rows, func(r types.Row) float64 { return r.Summary.AvgMentions }, func(v float64) float64 { return v })
}

func rank(rows []types.Row, value func(types.Row) float64, key func(float64) float64) []Ranked {
	out := make([]Ranked, 0, len(rows))
	for _, r := range rows {
		out = append(out, Ranked{Symbol: r.Asset.Symbol, Name: r.Asset.Name, Value: value(r)})
	}
	sort.SliceStable(out, func(i, j int) bool { return key(out[i].Value) > key(out[j].Value) })
	return out
}

// ReportRenderer writes the plain-text sentiment report.
type ReportRenderer struct {
	// Now stamps the report header; defaults to the dataset's GeneratedAt.
	Now func() time.Time
}

func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

type page struct{ lines []string }

func (p *page) add(lines ...string) { p.lines = append(p.lines, lines...) }

func (p *page) section(title string) {
	p.add(title, strings.Repeat("-", pageWidth))
}

// bullet wraps s to the page width with a hanging indent.
func (p *page) bullet(marker, s string) {
	wrapped := strings.Split(text.WrapSoft(s, pageWidth-len([]rune(marker))-1), "\n")
	for i, l := range wrapped {
		l = strings.TrimRight(l, " ")
		if i == 0 {
			p.add(marker + " " + l)
			continue
		}
		p.add(strings.Repeat(" ", len([]rune(marker))+1) + l)
	}
}

func (r *ReportRenderer) Render(w io.Writer, ds types.Dataset, opts RenderOptions) error {
	if len(ds.Rows) == 0 {
		return fmt.Errorf("report: dataset has no assets")
	}
	stamp := ds.GeneratedAt
	if r.Now != nil {
		stamp = r.Now()
	}
	height := opts.ChartHeight
	if height <= 0 {
		height = defaultChartRows
	}

	p := &page{}
	p.add(
		strings.Repeat("=", pageWidth),
		strings.TrimRight(text.AlignCenter.Apply("CRYPTOCURRENCY SOCIAL MEDIA SENTIMENT ANALYSIS REPORT", pageWidth), " "),
		strings.TrimRight(text.AlignCenter.Apply("Generated on: "+stamp.Format("2006-01-02 15:04:05"), pageWidth), " "),
		strings.Repeat("=", pageWidth),
		"",
	)

	p.section("INTRODUCTION")
	p.add(
		fmt.Sprintf("This report analyzes social media sentiment for the top %d cryptocurrencies over", len(ds.Rows)),
		"the past 30 days. The data includes positive and negative sentiment ratios,",
		"social media mentions, engagement, and correlation with price movements.",
		"",
	)

	writeSentimentComparison(p, ds)
	writeTrendCharts(p, ds, height)
	writeCorrelation(p, ds)
	writeEngagement(p, ds)
	writeTerms(p, ds)
	writeConclusion(p, ds)

	p.section("METHODOLOGY NOTE")
	p.add(
		"This report uses simulated data to demonstrate sentiment analysis techniques.",
		"In a real-world application, data would be sourced from social media platforms,",
		"news sources, and specialized crypto sentiment analysis services like LunarCrush,",
		"Santiment, or the Crypto Fear and Greed Index.",
		"",
	)

	_, err := io.WriteString(w, strings.Join(p.lines, "\n")+"\n")
	return err
}

func writeSentimentComparison(p *page, ds types.Dataset) {
	p.section("OVERALL SENTIMENT COMPARISON")
	p.add("Positive sentiment ratio across cryptocurrencies:", "")

	ranked := RankBySentiment(ds.Rows)
	for _, rk := range ranked {
		p.add(Bar(rk.Value, barWidth, rk.Symbol, true))
	}
	p.add("", "INSIGHTS:")
	top, bottom := ranked[0], ranked[len(ranked)-1]
	p.bullet("•", fmt.Sprintf("%s (%s) has the most positive sentiment overall.", top.Name, top.Symbol))
	p.bullet("•", fmt.Sprintf("%s (%s) has the least positive sentiment overall.", bottom.Name, bottom.Symbol))
	if majorCoins[top.Symbol] {
		p.bullet("•", fmt.Sprintf("Major cryptocurrencies like %s tend to have more positive sentiment due to their established market position and wider adoption.", top.Symbol))
	}
	p.add("")
}

func writeTrendCharts(p *page, ds types.Dataset, height int) {
	p.section("SENTIMENT TRENDS OVER TIME")
	p.add(
		"The following charts show how positive sentiment has changed over the past 30 days",
		"for selected cryptocurrencies:",
		"",
	)
	for _, sym := range trendSymbols {
		row, ok := ds.Find(sym)
		if !ok {
			continue
		}
		days := row.Series.Days
		if len(days) > chartDays {
			days = days[len(days)-chartDays:]
		}
		values := make([]float64, len(days))
		labels := make([]string, len(days))
		for i, d := range days {
			values[i] = d.PositiveSentiment
			labels[i] = d.Date.Format("01-02")
		}
		p.add(Chart(values, ChartOptions{
			Width:  chartWidth,
			Height: height,
			Title:  fmt.Sprintf("%s (%s) Positive Sentiment", row.Asset.Name, sym),
			Labels: labels,
		}))
		p.add(" " + Sparkline(values))
		p.add("")
		p.bullet("➤", trend.Describe(sym, row.Series.Trend))
		p.add("")
	}
}

func writeCorrelation(p *page, ds types.Dataset) {
	p.section("SENTIMENT-PRICE CORRELATION")
	p.add("Correlation between positive sentiment and price changes:", "")

	ranked := RankByCorrelation(ds.Rows)
	var weak []string
	for _, rk := range ranked {
		p.add(Bar(math.Abs(rk.Value), barWidth, rk.Symbol, false))
		p.add(fmt.Sprintf("   Direction: %s, Strength: %s", stats.Direction(rk.Value), stats.Strength(rk.Value)))
		p.add("")
		if math.Abs(rk.Value) < weakCorrelation {
			weak = append(weak, rk.Symbol)
		}
	}

	p.add("INSIGHTS:")
	top := ranked[0]
	p.bullet("•", fmt.Sprintf("%s (%s) shows the strongest %s correlation between sentiment and price movements.",
		top.Name, top.Symbol, stats.Direction(top.Value)))
	if len(weak) > 0 {
		p.bullet("•", fmt.Sprintf("%s show weak correlation between sentiment and price, suggesting other factors may be more influential for these assets.",
			strings.Join(weak, ", ")))
	}
	p.add("")
}

func writeEngagement(p *page, ds types.Dataset) {
	p.section("SOCIAL MEDIA ENGAGEMENT")
	p.add("Average daily mentions across social media platforms:", "")

	ranked := RankByMentions(ds.Rows)
	peak := ranked[0].Value
	for _, rk := range ranked {
		normalized := 0.0
		if peak > 0 {
			normalized = rk.Value / peak
		}
		p.add(Bar(normalized, barWidth, rk.Symbol, false) + fmt.Sprintf(" (%s mentions)", humanize.Comma(int64(rk.Value))))
	}

	p.add("", "INSIGHTS:")
	most, least := ranked[0], ranked[len(ranked)-1]
	p.bullet("•", fmt.Sprintf("%s (%s) dominates social media conversations with approximately %s daily mentions.",
		most.Name, most.Symbol, humanize.Comma(int64(most.Value))))
	p.bullet("•", fmt.Sprintf("Despite having lower mentions, %s still generates significant engagement with %s daily mentions.",
		least.Symbol, humanize.Comma(int64(least.Value))))
	if marketLeader[most.Symbol] {
		p.bullet("•", "Market leaders typically dominate social media conversations, reflecting their larger community size and broader market influence.")
	}
	p.add("")
}

func writeTerms(p *page, ds types.Dataset) {
	p.section("POPULAR TERMS IN SOCIAL MEDIA DISCUSSIONS")
	for _, sym := range wordSymbols {
		row, ok := ds.Find(sym)
		if !ok {
			continue
		}
		p.add(fmt.Sprintf("%s (%s):", row.Asset.Name, sym))
		p.add("  Positive terms:")
		for _, wc := range row.Summary.TopPositive {
			p.add(fmt.Sprintf("    • %s: %s mentions", wc.Word, humanize.Comma(int64(wc.Count))))
		}
		p.add("  Negative terms:")
		for _, wc := range row.Summary.TopNegative {
			p.add(fmt.Sprintf("    • %s: %s mentions", wc.Word, humanize.Comma(int64(wc.Count))))
		}
		p.add("")
	}
}

// Findings groups the assets named in the conclusion.
type Findings struct {
	Improving  []string
	Declining  []string
	Correlated []string
}

// Conclude classifies assets by trend group and strong positive correlation, in dataset order.
func Conclude(rows []types.Row) Findings {
	var f Findings
	for _, r := range rows {
		sym := r.Asset.Symbol
		switch {
		case trend.IsPositive(r.Series.Trend):
			f.Improving = append(f.Improving, sym)
		case trend.IsNegative(r.Series.Trend):
			f.Declining = append(f.Declining, sym)
		}
		if r.Summary.Correlation > strongPositive {
			f.Correlated = append(f.Correlated, sym)
		}
	}
	return f
}

func writeConclusion(p *page, ds types.Dataset) {
	p.section("CONCLUSION AND INSIGHTS")
	p.add("Key findings from the sentiment analysis:", "")

	f := Conclude(ds.Rows)
	if len(f.Improving) > 0 {
		p.bullet("•", "Positive sentiment trends: "+strings.Join(f.Improving, ", "))
		p.add(
			"  These cryptocurrencies show improving sentiment, potentially indicating",
			"  growing community support and positive market perception.",
		)
	}
	if len(f.Declining) > 0 {
		p.bullet("•", "Negative sentiment trends: "+strings.Join(f.Declining, ", "))
		p.add(
			"  These cryptocurrencies show declining sentiment, which might suggest",
			"  decreasing confidence or emerging concerns in the community.",
		)
	}
	if len(f.Correlated) > 0 {
		p.bullet("•", "Strong positive sentiment-price correlation: "+strings.Join(f.Correlated, ", "))
		p.add(
			"  For these assets, social media sentiment appears to be a leading indicator",
			"  of price movements, suggesting potential predictive value.",
		)
	}
	p.add("")
}
