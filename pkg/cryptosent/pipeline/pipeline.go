package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/komsit37/cryptosent/pkg/cryptosent/filter"
	"github.com/komsit37/cryptosent/pkg/cryptosent/generate"
	"github.com/komsit37/cryptosent/pkg/cryptosent/render"
	"github.com/komsit37/cryptosent/pkg/cryptosent/rng"
	"github.com/komsit37/cryptosent/pkg/cryptosent/source"
	"github.com/komsit37/cryptosent/pkg/cryptosent/stats"
	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
	"github.com/komsit37/cryptosent/pkg/logger"
)

type Runner struct {
	Source   source.Source
	Renderer render.Renderer
	Writer   io.Writer
	Log      *logger.Logger
}

type ExecuteOptions struct {
	Filter filter.Filter
	// Seed drives every random draw; 0 picks a random seed.
	Seed uint64
	End  time.Time
	// Trend forces every asset onto one category; empty picks one per asset.
	Trend   types.Trend
	Workers int
	// Now stamps the dataset; defaults to time.Now.
	Now    func() time.Time
	Render render.RenderOptions
}

func (r *Runner) log() *logger.Logger {
	if r.Log == nil {
		return logger.Get()
	}
	return r.Log
}

// Generate loads the universe, synthesizes a series per asset and summarizes it.
// Assets are generated concurrently; each owns a stream derived from the seed, so the
// result for a given seed does not depend on the worker count.
func (r *Runner) Generate(ctx context.Context, spec any, opts ExecuteOptions) (types.Dataset, error) {
	universe, err := r.Source.Load(ctx, spec)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("load universe: %w", err)
	}

	universe.Assets = filter.Apply(universe.Assets, opts.Filter)
	if len(universe.Assets) == 0 {
		return types.Dataset{}, fmt.Errorf("%w: no assets match filter", source.ErrInvalidUniverse)
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	end := opts.End
	if end.IsZero() {
		end = now()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rng.RandomSeed()
	}
	ds := types.Dataset{
		RunID:       uuid.NewString(),
		Seed:        seed,
		GeneratedAt: now(),
		Rows:        make([]types.Row, len(universe.Assets)),
	}
	log := r.log().With("run", ds.RunID, "seed", seed)
	log.Infow("generating series", "assets", len(universe.Assets), "end", end.Format(types.DateLayout))

	cfg := generate.NewConfig(universe, end)
	cfg.Trend = opts.Trend
	seeds := rng.Split(seed, len(universe.Assets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, asset := range universe.Assets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			series := generate.Generate(cfg, asset, rng.New(seeds[i]))
			summary := stats.Summarize(series)
			ds.Rows[i] = types.Row{Asset: asset, Series: series, Summary: summary}
			log.Debugw("asset generated", "ticker", asset.Symbol, "trend", series.Trend,
				"correlation", summary.Correlation, "avg_mentions", summary.AvgMentions)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return types.Dataset{}, err
	}
	return ds, nil
}

// Execute generates a dataset and renders it to the runner's writer. Rendering happens
// in memory first so a render failure never leaves partial output.
func (r *Runner) Execute(ctx context.Context, spec any, opts ExecuteOptions) (types.Dataset, error) {
	ds, err := r.Generate(ctx, spec, opts)
	if err != nil {
		return types.Dataset{}, err
	}
	var buf bytes.Buffer
	if err := r.Renderer.Render(&buf, ds, opts.Render); err != nil {
		return ds, fmt.Errorf("render: %w", err)
	}
	if _, err := r.Writer.Write(buf.Bytes()); err != nil {
		return ds, err
	}
	return ds, nil
}
