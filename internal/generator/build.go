package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"svw.info/sokoban/internal/domain"
)

const (
	MinSide  = 6
	SideCap  = 15
	MaxBoxes = 8
)

// MaxSide is the largest width or height drawn for d.
func MaxSide(d domain.Difficulty) int {
	return min(SideCap, MinSide+int(d)/2)
}

// WallDensity is the per-cell wall probability for interior cells.
func WallDensity(d domain.Difficulty) float64 {
	return 0.1 + 0.02*float64(d)
}

func BoxCount(d domain.Difficulty) int {
	return max(1, min(MaxBoxes, int(d)/2+1))
}

func dimensions(rng *rand.Rand, d domain.Difficulty) (w, h int) {
	side := func() int {
		return max(MinSide, min(MaxSide(d), MinSide+randBelow(rng, int(d))))
	}
	w = side()
	h = side()
	return w, h
}

func randBelow(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n)
}

// carveSpawn clears five cells on the centre row and three on the rows
// directly above and below, then returns the centre.
func carveSpawn(g grid) domain.Position {
	cx, cy := g.width()/2, g.height()/2
	g.clearRow(cy, cx-2, cx+2)
	if cy > 1 {
		g.clearRow(cy-1, cx-1, cx+1)
	}
	if cy < g.height()-2 {
		g.clearRow(cy+1, cx-1, cx+1)
	}
	return domain.Position{X: cx, Y: cy}
}

// build runs one full attempt: walls, spawn clearance, player, then
// alternating box and target placement.
func (g *RandomGenerator) build(rng *rand.Rand, w, h int, d domain.Difficulty) (grid, domain.PlacementResult) {
	cells := fillWalls(rng, w, h, WallDensity(d))
	player := carveSpawn(cells)
	cells.set(player, domain.Player)
	return cells, g.place(rng, cells, player, BoxCount(d))
}

func (g *RandomGenerator) place(rng *rand.Rand, cells grid, player domain.Position, n int) domain.PlacementResult {
	res := domain.PlacementResult{BoxesWanted: n, Player: player}
	boxes := mapset.New[domain.Position]()
	targets := mapset.New[domain.Position]()
	budget := g.placementAttempts()

	for i := 0; i < n; i++ {
		for try := 0; try < budget; try++ {
			p := cells.randomInterior(rng)
			if cells.at(p) == domain.Floor && p != player && !boxes.Has(p) {
				cells.set(p, domain.Box)
				boxes.Put(p)
				res.Boxes = append(res.Boxes, p)
				break
			}
		}

		for try := 0; try < budget; try++ {
			p := cells.randomInterior(rng)
			c := cells.at(p)
			if (c != domain.Floor && c != domain.Player) || boxes.Has(p) || targets.Has(p) {
				continue
			}
			if c == domain.Player {
				cells.set(p, domain.PlayerOnTarget)
			} else {
				cells.set(p, domain.Target)
			}
			targets.Put(p)
			res.Targets = append(res.Targets, p)
			break
		}
	}
	return res
}
