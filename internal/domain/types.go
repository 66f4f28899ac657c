package domain

import "errors"

var (
	ErrInvalidLevel    = errors.New("level number must be >= 1")
	ErrMalformedLayout = errors.New("malformed layout")
)

// Position identifies a cell on a layout. Compared by value.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Layout is a complete static puzzle definition. Rows hold the textual
// encoding, one byte per cell; a Layout is never mutated once built.
type Layout struct {
	ID         int        `json:"id"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Map        []string   `json:"map"`
	Difficulty Difficulty `json:"difficulty"`
	Seed       int64      `json:"seed,omitempty"`
}

// PlacementResult records which boxes and targets one generation attempt
// managed to place. Budget exhaustion skips an element silently, so
// Boxes and Targets can come up short of BoxesWanted.
type PlacementResult struct {
	BoxesWanted int        `json:"boxesWanted"`
	Player      Position   `json:"player"`
	Boxes       []Position `json:"boxes"`
	Targets     []Position `json:"targets"`
}

func (r PlacementResult) SkippedBoxes() int   { return r.BoxesWanted - len(r.Boxes) }
func (r PlacementResult) SkippedTargets() int { return r.BoxesWanted - len(r.Targets) }

// Complete reports whether every requested box and target was placed.
func (r PlacementResult) Complete() bool {
	return r.SkippedBoxes() == 0 && r.SkippedTargets() == 0
}

// Verdict is the outcome of the feasibility filter.
type Verdict struct {
	OK      bool         `json:"ok"`
	Reason  RejectReason `json:"reason,omitempty"`
	Boxes   int          `json:"boxes"`
	Targets int          `json:"targets"`
	// Trapped is the box that failed the corner test, if any.
	Trapped *Position `json:"trapped,omitempty"`
}

// Record is a persisted layout with metadata.
type Record struct {
	Key       string `json:"key"`
	Name      string `json:"name,omitempty"`
	Layout    Layout `json:"layout"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// RecordMeta is a lightweight listing entry.
type RecordMeta struct {
	Key        string     `json:"key"`
	Name       string     `json:"name,omitempty"`
	Level      int        `json:"level"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

func (r *Record) Meta() RecordMeta {
	return RecordMeta{
		Key:        r.Key,
		Name:       r.Name,
		Level:      r.Layout.ID,
		Difficulty: r.Layout.Difficulty,
		CreatedAt:  r.CreatedAt,
	}
}
