package generator

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/validator"
)

type stubFilter struct {
	ok    bool
	calls int
}

func (f *stubFilter) Validate(ctx context.Context, l *domain.Layout) (domain.Verdict, error) {
	f.calls++
	if f.ok {
		return domain.Verdict{OK: true}, nil
	}
	return domain.Verdict{Reason: domain.ReasonCountMismatch}, nil
}

func countCells(l *domain.Layout) (players, boxes, targets int) {
	l.Each(func(_ domain.Position, c domain.Cell) {
		if c.IsPlayer() {
			players++
		}
		if c.IsBox() {
			boxes++
		}
		if c.IsTarget() {
			targets++
		}
	})
	return
}

func TestGenerateInvariantsAllDifficulties(t *testing.T) {
	g := NewRandomGenerator(validator.New())
	for d := domain.MinDifficulty; d <= domain.MaxDifficulty; d++ {
		t.Run(fmt.Sprintf("difficulty_%d", d), func(t *testing.T) {
			for seed := int64(1); seed <= 25; seed++ {
				l, st, err := g.Generate(context.Background(), seed, 9, d)
				require.NoError(t, err)
				require.NotNil(t, l)

				assert.Equal(t, 9, l.ID)
				assert.Equal(t, d, l.Difficulty)
				assert.GreaterOrEqual(t, l.Width, MinSide)
				assert.LessOrEqual(t, l.Width, MaxSide(d))
				assert.GreaterOrEqual(t, l.Height, MinSide)
				assert.LessOrEqual(t, l.Height, MaxSide(d))
				require.Len(t, l.Map, l.Height)

				for y, row := range l.Map {
					require.Len(t, row, l.Width)
					for x := 0; x < l.Width; x++ {
						if x == 0 || y == 0 || x == l.Width-1 || y == l.Height-1 {
							assert.Equal(t, byte(domain.Wall), row[x], "border cell (%d,%d)", x, y)
						}
					}
				}

				players, boxes, targets := countCells(l)
				assert.Equal(t, 1, players)
				assert.Equal(t, len(st.Placement.Boxes), boxes)
				assert.Equal(t, len(st.Placement.Targets), targets)
				assert.LessOrEqual(t, boxes, BoxCount(d))
				assert.Equal(t, domain.Position{X: l.Width / 2, Y: l.Height / 2}, st.Placement.Player)
				if st.Accepted {
					assert.True(t, validator.IsSolvable(l))
				}
			}
		})
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	g := NewRandomGenerator(validator.New())
	a, _, err := g.Generate(context.Background(), 4242, 12, 6)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), 4242, 12, 6)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateReturnsLastCandidateWhenBudgetExhausted(t *testing.T) {
	f := &stubFilter{ok: false}
	g := NewRandomGenerator(f)

	l, st, err := g.Generate(context.Background(), 7, 5, 3)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.False(t, st.Accepted)
	assert.Equal(t, DefaultMaxRegenerations+1, st.Attempts)
	assert.Equal(t, DefaultMaxRegenerations+1, f.calls)
}

func TestGenerateStopsOnFirstAcceptance(t *testing.T) {
	f := &stubFilter{ok: true}
	g := NewRandomGenerator(f)

	_, st, err := g.Generate(context.Background(), 7, 5, 3)
	require.NoError(t, err)
	assert.True(t, st.Accepted)
	assert.Equal(t, 1, st.Attempts)
	assert.Equal(t, 1, f.calls)
}

func TestGenerateWithoutFilterAcceptsFirstCandidate(t *testing.T) {
	g := NewRandomGenerator(nil)
	_, st, err := g.Generate(context.Background(), 1, 1, 1)
	require.NoError(t, err)
	assert.True(t, st.Accepted)
	assert.Equal(t, 1, st.Attempts)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewRandomGenerator(validator.New()).Generate(ctx, 1, 4, 3)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBoxCount(t *testing.T) {
	cases := []struct {
		d    domain.Difficulty
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{10, 6},
		{20, 8},
		{0, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BoxCount(tc.d), "difficulty %d", tc.d)
	}
}

func TestSizingAndDensity(t *testing.T) {
	assert.Equal(t, 6, MaxSide(1))
	assert.Equal(t, 8, MaxSide(5))
	assert.Equal(t, 11, MaxSide(10))
	assert.Equal(t, SideCap, MaxSide(40))
	assert.InDelta(t, 0.12, WallDensity(1), 1e-9)
	assert.InDelta(t, 0.30, WallDensity(10), 1e-9)
}

func TestCarveSpawnClearsCentreOnSolidGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range [][2]int{{6, 6}, {7, 9}, {11, 11}, {15, 15}} {
		w, h := size[0], size[1]
		cells := fillWalls(rng, w, h, 1.0)
		centre := carveSpawn(cells)
		require.Equal(t, domain.Position{X: w / 2, Y: h / 2}, centre)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				p := domain.Position{X: centre.X + dx, Y: centre.Y + dy}
				assert.Equal(t, domain.Floor, cells.at(p), "%dx%d cell %v", w, h, p)
			}
		}
		for dx := -2; dx <= 2; dx++ {
			p := domain.Position{X: centre.X + dx, Y: centre.Y}
			if p.X >= 1 && p.X <= w-2 {
				assert.Equal(t, domain.Floor, cells.at(p))
			}
		}
		for x := 0; x < w; x++ {
			assert.Equal(t, domain.Wall, cells.at(domain.Position{X: x, Y: 0}))
			assert.Equal(t, domain.Wall, cells.at(domain.Position{X: x, Y: h - 1}))
		}
	}
}

func TestPlaceSkipsWhenNoFloorLeft(t *testing.T) {
	g := NewRandomGenerator(nil)
	rng := rand.New(rand.NewSource(3))
	// a 3x3 grid has a single interior cell, which holds the player
	cells := fillWalls(rng, 3, 3, 1.0)
	player := domain.Position{X: 1, Y: 1}
	cells.set(player, domain.Player)

	res := g.place(rng, cells, player, 2)
	assert.Empty(t, res.Boxes)
	assert.Equal(t, 2, res.SkippedBoxes())
	require.Len(t, res.Targets, 1)
	assert.Equal(t, player, res.Targets[0])
	assert.Equal(t, domain.PlayerOnTarget, cells.at(player))
	assert.False(t, res.Complete())
}

func TestZeroValueGenerator(t *testing.T) {
	var g RandomGenerator
	rng := rand.New(rand.NewSource(3))
	cells := fillWalls(rng, 3, 3, 1.0)
	player := domain.Position{X: 1, Y: 1}
	cells.set(player, domain.Player)

	res := g.place(rng, cells, player, 1)
	require.Len(t, res.Targets, 1)
	assert.Equal(t, domain.PlayerOnTarget, cells.at(player))

	f := &stubFilter{}
	g.Filter = f
	l, st, err := g.Generate(context.Background(), 5, 4, 3)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, 1, st.Attempts)
	assert.Equal(t, 1, f.calls)
	assert.False(t, st.Accepted)
}
