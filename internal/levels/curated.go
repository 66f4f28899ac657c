package levels

import "svw.info/sokoban/internal/domain"

// curated holds the hand-authored opening levels, in play order.
var curated = []domain.Layout{
	{
		ID:     1,
		Width:  7,
		Height: 7,
		Map: []string{
			"#######",
			"#     #",
			"# .$. #",
			"#  $  #",
			"# .$@ #",
			"#     #",
			"#######",
		},
		Difficulty: 1,
	},
	{
		ID:     2,
		Width:  8,
		Height: 8,
		Map: []string{
			"########",
			"#      #",
			"# .##  #",
			"#  $   #",
			"#   $. #",
			"# ## @ #",
			"#      #",
			"########",
		},
		Difficulty: 2,
	},
	{
		ID:     3,
		Width:  9,
		Height: 9,
		Map: []string{
			"#########",
			"#       #",
			"# . $   #",
			"#   #   #",
			"# $ @ $ #",
			"#   #   #",
			"#   . . #",
			"#       #",
			"#########",
		},
		Difficulty: 3,
	},
}

// CuratedCount returns the number of hand-authored levels.
func CuratedCount() int { return len(curated) }

// Curated returns copies of the hand-authored levels.
func Curated() []domain.Layout {
	out := make([]domain.Layout, len(curated))
	for i := range curated {
		out[i] = *curated[i].Clone()
	}
	return out
}
