package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/generator"
	"svw.info/sokoban/internal/infrastructure/storage"
	"svw.info/sokoban/internal/levels"
	"svw.info/sokoban/internal/validator"
)

func newService(t *testing.T) *Service {
	t.Helper()
	f := validator.New()
	g := generator.NewRandomGenerator(f)
	st, err := storage.OpenBadger(storage.BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewService(levels.NewSource(g, 31, nil), g, f, st)
}

func TestNotConfigured(t *testing.T) {
	u := &Service{}
	ctx := context.Background()

	_, _, err := u.Level(ctx, 1)
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Generate(ctx, 1, 4, 3)
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = u.Check(ctx, &domain.Layout{})
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = u.Save(ctx, &domain.Layout{}, "")
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = u.Load(ctx, "k")
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = u.List(ctx)
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = u.Batch(ctx, 1, 2, 0)
	assert.ErrorIs(t, err, errNotConfigured)
}

func TestStartBuildsFreshState(t *testing.T) {
	u := newService(t)
	s, err := u.Start(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Level)
	assert.Len(t, s.Boxes, 3)
	assert.Len(t, s.Targets, 3)
	assert.Equal(t, domain.Position{X: 4, Y: 4}, s.Player)
	assert.False(t, s.Completed)
}

func TestBatchReturnsLevelsInOrder(t *testing.T) {
	u := newService(t)
	out, err := u.Batch(context.Background(), 2, 12, 4)
	require.NoError(t, err)
	require.Len(t, out, 11)
	for i, l := range out {
		assert.Equal(t, 2+i, l.ID)
		assert.Equal(t, levels.DifficultyFor(2+i), l.Difficulty)
	}
}

func TestBatchRejectsBadRange(t *testing.T) {
	u := newService(t)
	_, err := u.Batch(context.Background(), 0, 3, 0)
	require.ErrorIs(t, err, domain.ErrInvalidLevel)
	_, err = u.Batch(context.Background(), 5, 4, 0)
	require.ErrorIs(t, err, domain.ErrInvalidLevel)
}

func TestSaveLoadList(t *testing.T) {
	u := newService(t)
	ctx := context.Background()

	l, _, err := u.Generate(ctx, 99, 7, 5)
	require.NoError(t, err)

	r, err := u.Save(ctx, l, "seven")
	require.NoError(t, err)
	_, err = uuid.Parse(r.Key)
	require.NoError(t, err)

	got, err := u.Load(ctx, r.Key)
	require.NoError(t, err)
	assert.Equal(t, *l, got.Layout)
	assert.Equal(t, "seven", got.Name)

	metas, err := u.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, 7, metas[0].Level)
}

func TestCheckUsesFilter(t *testing.T) {
	u := newService(t)
	l, err := domain.ParseLayout(1, 1, []string{"#####", "#$@.#", "#####"})
	require.NoError(t, err)

	v, err := u.Check(context.Background(), l)
	require.NoError(t, err)
	assert.False(t, v.OK)
	assert.Equal(t, domain.ReasonCornerTrap, v.Reason)
}
