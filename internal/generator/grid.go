package generator

import (
	"math/rand"

	"svw.info/sokoban/internal/domain"
)

// grid is the mutable working copy for a single generation attempt.
// It is never shared and is replaced wholesale on each regeneration.
type grid [][]domain.Cell

// fillWalls emits a closed wall border and samples each interior cell
// as wall with probability density.
func fillWalls(rng *rand.Rand, w, h int, density float64) grid {
	g := make(grid, h)
	for y := 0; y < h; y++ {
		row := make([]domain.Cell, w)
		for x := 0; x < w; x++ {
			switch {
			case y == 0 || y == h-1 || x == 0 || x == w-1:
				row[x] = domain.Wall
			case rng.Float64() < density:
				row[x] = domain.Wall
			default:
				row[x] = domain.Floor
			}
		}
		g[y] = row
	}
	return g
}

func (g grid) width() int  { return len(g[0]) }
func (g grid) height() int { return len(g) }

func (g grid) at(p domain.Position) domain.Cell     { return g[p.Y][p.X] }
func (g grid) set(p domain.Position, c domain.Cell) { g[p.Y][p.X] = c }

// clearRow turns cells x0..x1 of row y to floor, clipped to the interior.
func (g grid) clearRow(y, x0, x1 int) {
	for x := max(1, x0); x <= min(g.width()-2, x1); x++ {
		g[y][x] = domain.Floor
	}
}

// randomInterior draws y before x.
func (g grid) randomInterior(rng *rand.Rand) domain.Position {
	y := rng.Intn(g.height()-2) + 1
	x := rng.Intn(g.width()-2) + 1
	return domain.Position{X: x, Y: y}
}

func (g grid) rows() []string {
	out := make([]string, len(g))
	for y, row := range g {
		b := make([]byte, len(row))
		for x, c := range row {
			b[x] = byte(c)
		}
		out[y] = string(b)
	}
	return out
}
