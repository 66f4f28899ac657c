package domain

// Cell is one grid symbol in the textual level encoding.
type Cell byte

const (
	Wall           Cell = '#'
	Floor          Cell = ' '
	Player         Cell = '@'
	PlayerOnTarget Cell = '+'
	Box            Cell = '$'
	BoxOnTarget    Cell = '*'
	Target         Cell = '.'
)

// Valid reports whether c is one of the seven known symbols.
func (c Cell) Valid() bool {
	switch c {
	case Wall, Floor, Player, PlayerOnTarget, Box, BoxOnTarget, Target:
		return true
	}
	return false
}

func (c Cell) IsBox() bool    { return c == Box || c == BoxOnTarget }
func (c Cell) IsPlayer() bool { return c == Player || c == PlayerOnTarget }

// IsTarget includes the combined box/player-on-target symbols.
func (c Cell) IsTarget() bool {
	return c == Target || c == PlayerOnTarget || c == BoxOnTarget
}

// Difficulty scales generated grid size, wall density and box count.
type Difficulty int

const (
	MinDifficulty Difficulty = 1
	MaxDifficulty Difficulty = 10
)

// Clamp limits d to [MinDifficulty, MaxDifficulty].
func (d Difficulty) Clamp() Difficulty {
	return min(max(d, MinDifficulty), MaxDifficulty)
}

// RejectReason explains a negative feasibility verdict.
type RejectReason string

const (
	ReasonNone          RejectReason = ""
	ReasonCountMismatch RejectReason = "count_mismatch" // boxes != targets
	ReasonCornerTrap    RejectReason = "corner_trap"    // box wedged in a wall corner off-target
)
