package ports

import (
	"context"
	"time"

	"svw.info/sokoban/internal/domain"
)

// Stats captures how a layout was produced.
type Stats struct {
	// Attempts counts generation rounds, including the first. Zero for
	// curated layouts.
	Attempts  int
	Accepted  bool
	Placement domain.PlacementResult
	Duration  time.Duration
}

// Generator builds a random layout for a level at a given difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, level int, d domain.Difficulty) (*domain.Layout, Stats, error)
}

// Filter is the fast structural feasibility check.
type Filter interface {
	Validate(ctx context.Context, l *domain.Layout) (domain.Verdict, error)
}

// LevelSource returns the layout for a level number.
type LevelSource interface {
	Level(ctx context.Context, n int) (*domain.Layout, Stats, error)
}

// Storage persists and retrieves layouts as records.
type Storage interface {
	Save(ctx context.Context, r *domain.Record) error
	Load(ctx context.Context, key string) (*domain.Record, error)
	List(ctx context.Context) ([]domain.RecordMeta, error)
}
