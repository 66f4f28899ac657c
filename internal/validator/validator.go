package validator

import (
	"context"

	"svw.info/sokoban/internal/domain"
)

// FastValidator is a necessary-but-not-sufficient feasibility check. It
// does not flood-fill from the player, so unreachable boxes or push sides
// still pass.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, l *domain.Layout) (domain.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return domain.Verdict{}, err
	}
	return Check(l), nil
}

// IsSolvable reports whether l passes the count and corner checks.
func IsSolvable(l *domain.Layout) bool { return Check(l).OK }

// corners lists the four L-shaped wall pairs as (horizontal, vertical)
// neighbour offsets.
var corners = [4][2]domain.Position{
	{{X: -1}, {Y: -1}}, // left + top
	{{X: 1}, {Y: -1}},  // right + top
	{{X: -1}, {Y: 1}},  // left + bottom
	{{X: 1}, {Y: 1}},   // right + bottom
}

// Check runs the count-parity check, then the corner-trap check,
// stopping at the first failure.
func Check(l *domain.Layout) domain.Verdict {
	var boxes []domain.Position
	targets := 0
	l.Each(func(p domain.Position, c domain.Cell) {
		if c.IsBox() {
			boxes = append(boxes, p)
		}
		if c.IsTarget() {
			targets++
		}
	})
	v := domain.Verdict{Boxes: len(boxes), Targets: targets}
	if len(boxes) != targets {
		v.Reason = domain.ReasonCountMismatch
		return v
	}
	for _, b := range boxes {
		if cornered(l, b) && l.At(b) != domain.BoxOnTarget {
			trapped := b
			v.Reason = domain.ReasonCornerTrap
			v.Trapped = &trapped
			return v
		}
	}
	v.OK = true
	return v
}

func cornered(l *domain.Layout, p domain.Position) bool {
	for _, c := range corners {
		h := domain.Position{X: p.X + c[0].X, Y: p.Y}
		vert := domain.Position{X: p.X, Y: p.Y + c[1].Y}
		if isWall(l, h) && isWall(l, vert) {
			return true
		}
	}
	return false
}

// isWall treats anything outside the grid as wall.
func isWall(l *domain.Layout, p domain.Position) bool {
	return l.At(p) == domain.Wall
}
