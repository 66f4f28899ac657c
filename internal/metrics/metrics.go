// Package metrics holds the Prometheus collectors for level generation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sokoban_generation_attempts_total",
		Help: "Generation rounds run, including regenerations",
	})

	GenerationRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sokoban_generation_rejections_total",
		Help: "Candidates rejected by the feasibility filter, by reason",
	}, []string{"reason"})

	GenerationExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sokoban_generation_exhausted_total",
		Help: "Generations that ran out of regeneration budget and returned an unaccepted layout",
	})

	PlacementSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sokoban_placement_skipped_total",
		Help: "Boxes or targets left unplaced after the attempt budget ran out",
	}, []string{"kind"})

	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sokoban_generation_duration_seconds",
		Help:    "Wall time of one Generate call including regenerations",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})

	LevelRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sokoban_level_requests_total",
		Help: "Level lookups by source",
	}, []string{"source"})
)
