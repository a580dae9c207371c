// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsDropped counts upstream records that could not be
	// minimally parsed (neither id nor title) and were removed from
	// the batch.
	RecordsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discovery_records_dropped_total",
		Help: "Upstream records dropped during normalization.",
	}, []string{"source"})

	// NoLocationExcluded counts records excluded from radius
	// filtering because they carry no coordinates.
	NoLocationExcluded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "discovery_no_location_excluded_total",
		Help: "Records excluded from radius filtering for lack of coordinates.",
	})

	SourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discovery_source_failures_total",
		Help: "Failed fetches per event source.",
	}, []string{"source"})

	DegradedResponses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "discovery_degraded_responses_total",
		Help: "Discovery responses served from the fallback source.",
	})
)
