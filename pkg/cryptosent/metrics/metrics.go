// Package metrics exposes run statistics as Prometheus gauges for textfile collection.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/komsit37/cryptosent/pkg/cryptosent/output"
	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
)

const namespace = "cryptosent"

// Recorder holds the gauges of one run on a private registry.
type Recorder struct {
	reg         *prometheus.Registry
	sentiment   *prometheus.GaugeVec
	correlation *prometheus.GaugeVec
	mentions    *prometheus.GaugeVec
	price       *prometheus.GaugeVec
	assets      prometheus.Gauge
	duration    prometheus.Gauge
	lastRun     prometheus.Gauge
}

func NewRecorder() *Recorder {
	byTicker := []string{"ticker", "trend"}
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		sentiment: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "positive_sentiment_mean",
			Help: "Mean daily positive sentiment ratio over the series.",
		}, byTicker),
		correlation: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "sentiment_price_correlation",
			Help: "Pearson correlation between daily positive sentiment and price change.",
		}, byTicker),
		mentions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "mentions_daily_mean",
			Help: "Mean daily social media mentions.",
		}, byTicker),
		price: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "price_last",
			Help: "Closing price on the last day of the series.",
		}, byTicker),
		assets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "assets",
			Help: "Number of assets generated in the run.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "generation_duration_seconds",
			Help: "Wall time spent generating and summarizing series.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "last_run_timestamp_seconds",
			Help: "Unix time of the run.",
		}),
	}
	r.reg.MustRegister(r.sentiment, r.correlation, r.mentions, r.price, r.assets, r.duration, r.lastRun)
	return r
}

// Observe records a finished dataset.
func (r *Recorder) Observe(ds types.Dataset, took time.Duration) {
	for _, row := range ds.Rows {
		labels := prometheus.Labels{"ticker": row.Asset.Symbol, "trend": string(row.Series.Trend)}
		r.sentiment.With(labels).Set(row.Summary.AvgSentiment)
		r.correlation.With(labels).Set(row.Summary.Correlation)
		r.mentions.With(labels).Set(row.Summary.AvgMentions)
		if n := len(row.Series.Days); n > 0 {
			r.price.With(labels).Set(row.Series.Days[n-1].Price)
		}
	}
	r.assets.Set(float64(len(ds.Rows)))
	r.duration.Set(took.Seconds())
	r.lastRun.Set(float64(ds.GeneratedAt.Unix()))
}

// WriteTextfile writes the registry in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return &output.WriteError{Op: "metrics", Path: path, Err: err}
	}
	return nil
}
