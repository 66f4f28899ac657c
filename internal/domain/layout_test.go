package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	cases := []struct {
		name    string
		rows    []string
		wantErr bool
	}{
		{"ok", []string{"#####", "#@$.#", "#####"}, false},
		{"empty", nil, true},
		{"ragged", []string{"#####", "#@$.", "#####"}, true},
		{"unknown symbol", []string{"#####", "#@x.#", "#####"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := ParseLayout(7, 2, tc.rows)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrMalformedLayout)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, l.Width)
			assert.Equal(t, 3, l.Height)
			assert.Equal(t, 7, l.ID)
			assert.Equal(t, Difficulty(2), l.Difficulty)
		})
	}
}

func TestLayoutAtOutOfBoundsIsWall(t *testing.T) {
	l, err := ParseLayout(1, 1, []string{"###", "#@#", "###"})
	require.NoError(t, err)

	assert.Equal(t, Player, l.At(Position{X: 1, Y: 1}))
	assert.Equal(t, Wall, l.At(Position{X: -1, Y: 1}))
	assert.Equal(t, Wall, l.At(Position{X: 1, Y: 3}))
}

func TestCloneDoesNotAlias(t *testing.T) {
	l, err := ParseLayout(1, 1, []string{"###", "#@#", "###"})
	require.NoError(t, err)

	c := l.Clone()
	c.Map[1] = "# #"
	assert.Equal(t, "#@#", l.Map[1])
}

func TestPlacementResultSkips(t *testing.T) {
	r := PlacementResult{
		BoxesWanted: 3,
		Boxes:       []Position{{1, 1}, {2, 2}, {3, 3}},
		Targets:     []Position{{1, 2}},
	}
	assert.Equal(t, 0, r.SkippedBoxes())
	assert.Equal(t, 2, r.SkippedTargets())
	assert.False(t, r.Complete())
}

func TestDifficultyClamp(t *testing.T) {
	assert.Equal(t, MinDifficulty, Difficulty(-4).Clamp())
	assert.Equal(t, Difficulty(5), Difficulty(5).Clamp())
	assert.Equal(t, MaxDifficulty, Difficulty(99).Clamp())
}
