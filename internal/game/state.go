// Package game converts a Layout into the mutable representation the move
// engine works on. Move application, undo and rendering live elsewhere.
package game

import "svw.info/sokoban/internal/domain"

// Tile is a static grid cell once entities are stripped out.
type Tile uint8

const (
	TileFloor Tile = iota
	TileWall
	TileTarget
)

// HistoryItem is one undo frame.
type HistoryItem struct {
	Player domain.Position   `json:"player"`
	Boxes  []domain.Position `json:"boxes"`
	Action string            `json:"action"`
}

// State is the starting game state derived from a layout. It owns its
// slices; the source layout is never touched.
type State struct {
	Level     int               `json:"level"`
	Tiles     [][]Tile          `json:"tiles"`
	Player    domain.Position   `json:"player"`
	Boxes     []domain.Position `json:"boxes"`
	Targets   []domain.Position `json:"targets"`
	Moves     int               `json:"moves"`
	History   []HistoryItem     `json:"history"`
	Completed bool              `json:"completed"`
}

// NewState parses l. Unknown symbols become floor.
func NewState(l *domain.Layout) *State {
	s := &State{
		Level:   l.ID,
		Tiles:   make([][]Tile, l.Height),
		History: []HistoryItem{},
	}
	for y := range s.Tiles {
		s.Tiles[y] = make([]Tile, l.Width)
	}
	l.Each(func(p domain.Position, c domain.Cell) {
		if p.Y >= l.Height || p.X >= l.Width {
			return
		}
		tile := TileFloor
		switch c {
		case domain.Wall:
			tile = TileWall
		case domain.Player:
			s.Player = p
		case domain.PlayerOnTarget:
			s.Player = p
			s.Targets = append(s.Targets, p)
			tile = TileTarget
		case domain.Box:
			s.Boxes = append(s.Boxes, p)
		case domain.BoxOnTarget:
			s.Boxes = append(s.Boxes, p)
			s.Targets = append(s.Targets, p)
			tile = TileTarget
		case domain.Target:
			s.Targets = append(s.Targets, p)
			tile = TileTarget
		}
		s.Tiles[p.Y][p.X] = tile
	})
	return s
}

// IsComplete reports whether every box sits on a target and the counts
// match.
func (s *State) IsComplete() bool {
	if len(s.Boxes) != len(s.Targets) {
		return false
	}
	targets := make(map[domain.Position]struct{}, len(s.Targets))
	for _, t := range s.Targets {
		targets[t] = struct{}{}
	}
	for _, b := range s.Boxes {
		if _, ok := targets[b]; !ok {
			return false
		}
	}
	return true
}
