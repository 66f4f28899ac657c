package domain

import (
	"fmt"
	"strings"
)

// ParseLayout builds a Layout from rows in the symbol encoding. Every row
// must have the same length and contain only known symbols.
func ParseLayout(id int, d Difficulty, rows []string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedLayout)
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedLayout, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			if !Cell(row[x]).Valid() {
				return nil, fmt.Errorf("%w: unknown symbol %q at (%d,%d)", ErrMalformedLayout, row[x], x, y)
			}
		}
	}
	l := &Layout{
		ID:         id,
		Width:      width,
		Height:     len(rows),
		Map:        append([]string(nil), rows...),
		Difficulty: d,
	}
	return l, nil
}

// InBounds uses the actual row lengths so hand-built layouts with ragged
// rows are handled without panicking.
func (l *Layout) InBounds(p Position) bool {
	return p.Y >= 0 && p.Y < len(l.Map) && p.X >= 0 && p.X < len(l.Map[p.Y])
}

// At returns the symbol at p. Out-of-bounds positions read as Wall.
func (l *Layout) At(p Position) Cell {
	if !l.InBounds(p) {
		return Wall
	}
	return Cell(l.Map[p.Y][p.X])
}

// Each calls fn for every cell in row-major order.
func (l *Layout) Each(fn func(p Position, c Cell)) {
	for y, row := range l.Map {
		for x := 0; x < len(row); x++ {
			fn(Position{X: x, Y: y}, Cell(row[x]))
		}
	}
}

// Clone returns a copy whose Map can be handed out without aliasing.
func (l *Layout) Clone() *Layout {
	out := *l
	out.Map = append([]string(nil), l.Map...)
	return &out
}

func (l *Layout) String() string { return strings.Join(l.Map, "\n") }
