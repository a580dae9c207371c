// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package discover

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mxrtinss/equipe403/internal/metrics"
	"github.com/mxrtinss/equipe403/internal/model"
	"github.com/mxrtinss/equipe403/internal/source"
)

// Result is one discovery response. All records come from exactly one
// source so that distance and category semantics stay consistent.
type Result struct {
	Events     []*model.Event `json:"events"`
	Source     string         `json:"source"`
	Degraded   bool           `json:"degraded"`
	Dropped    int            `json:"dropped"`
	NoLocation int            `json:"no_location"`
}

// Finder reconciles the preferred catalog with a fallback. A failed
// primary fetch degrades the response to the secondary source instead
// of failing the request.
type Finder struct {
	primary   source.Source
	secondary source.Source
	logger    *slog.Logger
}

func NewFinder(primary, secondary source.Source) *Finder {
	return &Finder{
		primary:   primary,
		secondary: secondary,
		logger:    slog.Default().WithGroup("discover"),
	}
}

// Find fetches from one source, radius-filters against origin and ranks
// by distance. A nil origin skips distance computation entirely and
// returns the set unranked. An empty result is not an error; both
// sources failing is.
func (f *Finder) Find(ctx context.Context, origin *model.Origin, radiusKm float64) (*Result, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Find")
	defer span.End()

	fetched, src, degraded, err := f.fetch(ctx, origin)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	metrics.RecordsDropped.WithLabelValues(src).Add(float64(fetched.Dropped))

	res := &Result{
		Source:   src,
		Degraded: degraded,
		Dropped:  fetched.Dropped,
	}
	if origin == nil {
		span.AddEvent("no origin, skipping radius filter")
		res.Events = fetched.Events
		return res, nil
	}

	filtered := FilterByRadius(fetched.Events, *origin, radiusKm)
	metrics.NoLocationExcluded.Add(float64(filtered.NoLocation))
	res.Events = Rank(filtered.Events)
	res.NoLocation = filtered.NoLocation
	return res, nil
}

// fetch tries the preferred source first and falls back on failure.
// Partial results are never mixed across sources.
func (f *Finder) fetch(ctx context.Context, origin *model.Origin) (*source.FetchResult, string, bool, error) {
	fetched, errPrimary := f.primary.Fetch(ctx, origin)
	if errPrimary == nil {
		return fetched, f.primary.Name(), false, nil
	}
	metrics.SourceFailures.WithLabelValues(f.primary.Name()).Inc()
	f.logger.Warn("primary source failed, falling back",
		"source", f.primary.Name(), "fallback", f.secondary.Name(), "error", errPrimary)

	fetched, errSecondary := f.secondary.Fetch(ctx, origin)
	if errSecondary != nil {
		metrics.SourceFailures.WithLabelValues(f.secondary.Name()).Inc()
		return nil, "", false, fmt.Errorf("%w: %s: %v, %s: %v",
			model.ErrBothSourcesFailed, f.primary.Name(), errPrimary, f.secondary.Name(), errSecondary)
	}
	metrics.DegradedResponses.Inc()
	return fetched, f.secondary.Name(), true, nil
}
