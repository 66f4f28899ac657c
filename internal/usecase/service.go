package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/game"
	"svw.info/sokoban/internal/ports"
)

type Service struct {
	Levels    ports.LevelSource
	Generator ports.Generator
	Filter    ports.Filter
	Storage   ports.Storage
}

func NewService(l ports.LevelSource, g ports.Generator, f ports.Filter, st ports.Storage) *Service {
	return &Service{Levels: l, Generator: g, Filter: f, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Level(ctx context.Context, n int) (*domain.Layout, ports.Stats, error) {
	if u.Levels == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Levels.Level(ctx, n)
}

// Start returns the initial game state for level n.
func (u *Service) Start(ctx context.Context, n int) (*game.State, error) {
	l, _, err := u.Level(ctx, n)
	if err != nil {
		return nil, err
	}
	return game.NewState(l), nil
}

func (u *Service) Generate(ctx context.Context, seed int64, level int, d domain.Difficulty) (*domain.Layout, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, level, d)
}

func (u *Service) Check(ctx context.Context, l *domain.Layout) (domain.Verdict, error) {
	if u.Filter == nil {
		return domain.Verdict{}, errNotConfigured
	}
	return u.Filter.Validate(ctx, l)
}

// Batch resolves levels from..to concurrently, at most limit at a time,
// and returns them in level order.
func (u *Service) Batch(ctx context.Context, from, to, limit int) ([]*domain.Layout, error) {
	if u.Levels == nil {
		return nil, errNotConfigured
	}
	if from < 1 || to < from {
		return nil, fmt.Errorf("%w: range %d..%d", domain.ErrInvalidLevel, from, to)
	}
	out := make([]*domain.Layout, to-from+1)
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for n := from; n <= to; n++ {
		g.Go(func() error {
			l, _, err := u.Levels.Level(gctx, n)
			if err != nil {
				return fmt.Errorf("level %d: %w", n, err)
			}
			out[n-from] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Persistence

// Save stores l under a fresh key and returns the record.
func (u *Service) Save(ctx context.Context, l *domain.Layout, name string) (*domain.Record, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	r := &domain.Record{
		Key:       uuid.NewString(),
		Name:      name,
		Layout:    *l.Clone(),
		CreatedAt: time.Now().UnixNano(),
	}
	if err := u.Storage.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
func (u *Service) Load(ctx context.Context, key string) (*domain.Record, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, key)
}
func (u *Service) List(ctx context.Context) ([]domain.RecordMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
