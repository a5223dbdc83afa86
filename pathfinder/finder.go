// Package pathfinder runs the bfs and dfs searches over one graph with
// structured logging, OpenTelemetry spans and search metrics attached.
package pathfinder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazesolver/bfs"
	"github.com/katalvlaran/mazesolver/core"
	"github.com/katalvlaran/mazesolver/dfs"
)

// Options configures a Finder. Unset providers fall back to the otel globals
// and an unset logger to slog.Default().
type Options struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider sets the provider that creates search spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}

// WithMeterProvider sets the provider that creates the search metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		o.MeterProvider = mp
	}
}

// Finder searches a single graph. It is safe for concurrent use as long as
// the graph is not mutated while searches run.
type Finder struct {
	g      *core.Graph
	logger *slog.Logger
	tracer trace.Tracer
	ins    *instruments
}

// Comparison holds the BFS and DFS results for the same endpoints.
type Comparison struct {
	BFS core.Result
	DFS core.Result
}

// Agree reports whether both searches returned the same path, or both
// found none.
func (c Comparison) Agree() bool {
	if c.BFS.Found() != c.DFS.Found() {
		return false
	}

	return c.BFS.String() == c.DFS.String()
}

// New binds a Finder to g.
func New(g *core.Graph, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.TracerProvider == nil {
		o.TracerProvider = otel.GetTracerProvider()
	}
	if o.MeterProvider == nil {
		o.MeterProvider = otel.GetMeterProvider()
	}

	ins, err := newInstruments(o.MeterProvider.Meter(instrumentationName))
	if err != nil {
		return nil, fmt.Errorf("pathfinder: creating instruments: %w", err)
	}

	return &Finder{
		g:      g,
		logger: o.Logger,
		tracer: o.TracerProvider.Tracer(instrumentationName),
		ins:    ins,
	}, nil
}

// Find runs algo from source to destination. A search that completes
// without reaching the destination returns NotFound and a nil error.
// ctx cancels the search between vertex visits.
func (f *Finder) Find(ctx context.Context, algo Algorithm, source, destination int) (core.Result, error) {
	ctx, span := startSearchSpan(ctx, f.tracer, algo, source, destination)

	visited := 0
	countVisit := func(int, int) error {
		visited++
		return nil
	}

	start := time.Now()
	var (
		res core.Result
		err error
	)
	switch algo {
	case BFS:
		res, err = bfs.BFS(f.g, source, destination, bfs.WithContext(ctx), bfs.WithOnVisit(countVisit))
	case DFS:
		res, err = dfs.DFS(f.g, source, destination, dfs.WithContext(ctx), dfs.WithOnVisit(countVisit))
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
	elapsed := time.Since(start)

	f.ins.record(ctx, algo, elapsed, visited, res, err)
	endSearchSpan(span, visited, res, err)

	if err != nil {
		f.logger.Error("search failed",
			slog.String("algorithm", algo.String()),
			slog.Int("source", source),
			slog.Int("destination", destination),
			slog.String("error", err.Error()),
		)
		return core.NotFound(), err
	}
	f.logger.Debug("search finished",
		slog.String("algorithm", algo.String()),
		slog.Int("source", source),
		slog.Int("destination", destination),
		slog.Bool("found", res.Found()),
		slog.Int("hops", res.Hops()),
		slog.Int("visited", visited),
		slog.Duration("duration", elapsed),
	)

	return res, nil
}

// Compare runs BFS and DFS concurrently over the shared graph. The first
// error cancels the other search and is returned.
func (f *Finder) Compare(ctx context.Context, source, destination int) (Comparison, error) {
	var cmp Comparison
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := f.Find(gctx, BFS, source, destination)
		cmp.BFS = res
		return err
	})
	g.Go(func() error {
		res, err := f.Find(gctx, DFS, source, destination)
		cmp.DFS = res
		return err
	})

	if err := g.Wait(); err != nil {
		return Comparison{}, err
	}
	f.logger.Info("comparison finished",
		slog.Int("source", source),
		slog.Int("destination", destination),
		slog.Int("bfs_hops", cmp.BFS.Hops()),
		slog.Int("dfs_hops", cmp.DFS.Hops()),
		slog.Bool("agree", cmp.Agree()),
	)

	return cmp, nil
}
