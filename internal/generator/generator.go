package generator

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/metrics"
	"svw.info/sokoban/internal/ports"
)

const (
	DefaultMaxRegenerations  = 10
	DefaultPlacementAttempts = 50
)

// RandomGenerator creates layouts from a seed. With a Filter set it
// regenerates rejected candidates, and once MaxRegenerations is spent it
// returns the last candidate anyway: the filter is advisory.
//
// The zero value is usable: it makes a single attempt per Generate call and
// uses DefaultPlacementAttempts when PlacementAttempts is not positive.
type RandomGenerator struct {
	Filter            ports.Filter
	MaxRegenerations  int
	PlacementAttempts int
	Logger            *slog.Logger
}

// NewRandomGenerator wires a generator that retries against f.
func NewRandomGenerator(f ports.Filter) *RandomGenerator {
	return &RandomGenerator{
		Filter:            f,
		MaxRegenerations:  DefaultMaxRegenerations,
		PlacementAttempts: DefaultPlacementAttempts,
		Logger:            slog.Default(),
	}
}

// Generate builds a layout for level at difficulty d. The same seed
// always yields the same layout. Width and height are drawn once and kept
// across regenerations.
func (g *RandomGenerator) Generate(ctx context.Context, seed int64, level int, d domain.Difficulty) (*domain.Layout, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	logger := g.logger().With("level", level, "difficulty", int(d), "seed", seed)
	w, h := dimensions(rng, d)

	var (
		st     ports.Stats
		layout *domain.Layout
	)
	for round := 0; round <= max(0, g.MaxRegenerations); round++ {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		cells, placed := g.build(rng, w, h, d)
		st.Attempts++
		st.Placement = placed
		metrics.GenerationAttempts.Inc()
		recordSkips(placed)

		layout = &domain.Layout{
			ID:         level,
			Width:      w,
			Height:     h,
			Map:        cells.rows(),
			Difficulty: d,
			Seed:       seed,
		}
		if g.Filter == nil {
			st.Accepted = true
			break
		}
		v, err := g.Filter.Validate(ctx, layout)
		if err != nil {
			return nil, st, err
		}
		if v.OK {
			st.Accepted = true
			break
		}
		metrics.GenerationRejections.WithLabelValues(string(v.Reason)).Inc()
		logger.Debug("layout rejected", "attempt", st.Attempts, "reason", v.Reason,
			"boxes", v.Boxes, "targets", v.Targets)
	}

	if !st.Accepted {
		metrics.GenerationExhausted.Inc()
		logger.Warn("regeneration budget exhausted, returning unaccepted layout", "attempts", st.Attempts)
	}
	st.Duration = time.Since(start)
	metrics.GenerationDuration.Observe(st.Duration.Seconds())
	return layout, st, nil
}

func (g *RandomGenerator) placementAttempts() int {
	if g.PlacementAttempts <= 0 {
		return DefaultPlacementAttempts
	}
	return g.PlacementAttempts
}

func (g *RandomGenerator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func recordSkips(r domain.PlacementResult) {
	if n := r.SkippedBoxes(); n > 0 {
		metrics.PlacementSkipped.WithLabelValues("box").Add(float64(n))
	}
	if n := r.SkippedTargets(); n > 0 {
		metrics.PlacementSkipped.WithLabelValues("target").Add(float64(n))
	}
}
