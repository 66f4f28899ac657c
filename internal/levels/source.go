// Package levels maps level numbers to layouts: hand-authored ones first,
// procedurally generated ones after that.
package levels

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/metrics"
	"svw.info/sokoban/internal/ports"
)

// DifficultyFor derives the difficulty of level n. Curated levels keep
// their authored difficulty; later levels step up by one every two levels
// starting from 3, capped at 10.
func DifficultyFor(n int) domain.Difficulty {
	k := CuratedCount()
	if n >= 1 && n <= k {
		return curated[n-1].Difficulty
	}
	return min(domain.MaxDifficulty, domain.Difficulty(3+floorDiv(n-k, 2)))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Source is the level façade. It is safe for concurrent use as long as
// the Generator is; RandomGenerator builds a fresh rng per call.
type Source struct {
	Generator ports.Generator
	Logger    *slog.Logger
	seeds     func() int64
}

// NewSource returns a Source drawing time-based seeds. A non-zero seed
// makes the sequence of generated levels reproducible.
func NewSource(g ports.Generator, seed int64, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{Generator: g, Logger: logger, seeds: seedSource(seed)}
}

// seedSource hands out distinct seeds. With base 0 the clock is used.
func seedSource(base int64) func() int64 {
	var n atomic.Int64
	if base == 0 {
		base = time.Now().UnixNano()
	}
	return func() int64 { return base + n.Add(1) - 1 }
}

func (s *Source) nextSeed() int64 {
	if s.seeds == nil {
		return time.Now().UnixNano()
	}
	return s.seeds()
}

func (s *Source) Level(ctx context.Context, n int) (*domain.Layout, ports.Stats, error) {
	if n < 1 {
		return nil, ports.Stats{}, domain.ErrInvalidLevel
	}
	if n <= CuratedCount() {
		metrics.LevelRequests.WithLabelValues("curated").Inc()
		return curated[n-1].Clone(), ports.Stats{Accepted: true}, nil
	}

	metrics.LevelRequests.WithLabelValues("generated").Inc()
	d := DifficultyFor(n)
	seed := s.nextSeed()
	l, st, err := s.Generator.Generate(ctx, seed, n, d)
	if err != nil {
		return nil, st, err
	}
	s.logger().Debug("level generated", "level", n, "difficulty", int(d), "seed", seed,
		"attempts", st.Attempts, "accepted", st.Accepted, "dur", st.Duration)
	return l, st, nil
}

func (s *Source) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
