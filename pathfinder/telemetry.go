package pathfinder

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/mazesolver/core"
)

const instrumentationName = "github.com/katalvlaran/mazesolver/pathfinder"

// Metric names exported by a Finder.
const (
	MetricSearchDuration = "mazesolver_search_duration_seconds"
	MetricSearchTotal    = "mazesolver_search_total"
	MetricSearchVisited  = "mazesolver_search_visited_vertices"
)

// instruments holds the per-Finder metric instruments.
type instruments struct {
	latency metric.Float64Histogram
	total   metric.Int64Counter
	visited metric.Int64Histogram
}

func newInstruments(meter metric.Meter) (*instruments, error) {
	var (
		ins instruments
		err error
	)

	ins.latency, err = meter.Float64Histogram(
		MetricSearchDuration,
		metric.WithDescription("Duration of path searches"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	ins.total, err = meter.Int64Counter(
		MetricSearchTotal,
		metric.WithDescription("Total number of path searches"),
	)
	if err != nil {
		return nil, err
	}

	ins.visited, err = meter.Int64Histogram(
		MetricSearchVisited,
		metric.WithDescription("Number of vertices visited per search"),
	)
	if err != nil {
		return nil, err
	}

	return &ins, nil
}

// record stores one search outcome. Failed searches only count.
func (ins *instruments) record(ctx context.Context, algo Algorithm, duration time.Duration, visited int, res core.Result, err error) {
	attrs := metric.WithAttributes(
		attribute.String("algorithm", algo.String()),
		attribute.Bool("found", res.Found()),
		attribute.Bool("success", err == nil),
	)

	ins.total.Add(ctx, 1, attrs)
	if err != nil {
		return
	}
	ins.latency.Record(ctx, duration.Seconds(), attrs)
	ins.visited.Record(ctx, int64(visited), attrs)
}

// startSearchSpan creates a span for a single search.
func startSearchSpan(ctx context.Context, tracer trace.Tracer, algo Algorithm, source, destination int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Finder."+algo.String(),
		trace.WithAttributes(
			attribute.String("search.algorithm", algo.String()),
			attribute.Int("search.source", source),
			attribute.Int("search.destination", destination),
		),
	)
}

// endSearchSpan sets the result attributes on a search span and ends it.
func endSearchSpan(span trace.Span, visited int, res core.Result, err error) {
	span.SetAttributes(
		attribute.Bool("search.found", res.Found()),
		attribute.Int("search.hops", res.Hops()),
		attribute.Int("search.visited", visited),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
